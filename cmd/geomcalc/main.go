package main

import (
	"os"

	"github.com/hismailbulut/geometry/pkg/bench"
	"github.com/hismailbulut/geometry/pkg/logger"
	"github.com/spf13/viper"
)

const (
	NAME    = "geomcalc"
	WEBPAGE = "github.com/hismailbulut/geometry"
	LICENSE = "GPLv3"
)

var VERSION = logger.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Config is only loaded inside the command, so this identifies the
	// program for errors and panics that happen before that. The color
	// setting is applied when the command re-inits with the loaded config.
	logger.Init(NAME, VERSION, bench.BUILD_TYPE, false)
	defer logger.Shutdown()

	root := newRootCmd(viper.New())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger.Log(logger.ERROR, err)
		return 1
	}
	return 0
}
