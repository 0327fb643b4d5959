//go:build !debug
// +build !debug

package bench

import (
	"io"

	"github.com/hismailbulut/geometry/pkg/logger"
)

const BUILD_TYPE = logger.ReleaseBuild

func IsDebugBuild() bool { return false }

func Begin() func(name ...string) { return func(name ...string) {} }

func Reset() {}

func PrintResults(out io.Writer) {}
