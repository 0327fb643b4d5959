package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, buildtype BuildType) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init("geomtest", Version{Major: 1, Minor: 2, Patch: 3}, buildtype, false)
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetExitFunc(nil)
		SetCrashDir("")
	})
	return &buf
}

func TestLog(t *testing.T) {
	buf := capture(t, DebugBuild)
	Log(DEBUG, "box", 1, 2)
	LogF(WARN, "epsilon %.2f", 0.5)
	assert.Equal(t, "[DEBUG] box 1 2\n[WARNING] epsilon 0.50\n", buf.String())
}

func TestLog_ReleaseDropsDebug(t *testing.T) {
	buf := capture(t, ReleaseBuild)
	Log(DEBUG, "hidden")
	Log(TRACE, "shown")
	assert.Equal(t, "[TRACE] shown\n", buf.String())
}

func TestLog_Color(t *testing.T) {
	var buf bytes.Buffer
	Init("geomtest", Version{}, DebugBuild, true)
	SetOutput(&buf)
	t.Cleanup(func() {
		Init("geomtest", Version{}, DebugBuild, false)
		SetOutput(nil)
	})
	Log(ERROR, "failed")
	assert.Equal(t, string(AnsiRed)+"[ERROR] failed"+string(AnsiReset)+"\n", buf.String())
}

func TestLog_File(t *testing.T) {
	capture(t, DebugBuild)
	path := filepath.Join(t.TempDir(), "geom.log")
	require.NoError(t, InitFile(path))
	Log(TRACE, "written to file")
	cleanup()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "geomtest v1.2.3 Debug LOG")
	assert.Contains(t, string(content), "[TRACE] written to file")
	assert.Contains(t, string(content), "END OF LOG")
}

func TestInitFile_Error(t *testing.T) {
	capture(t, DebugBuild)
	err := InitFile(filepath.Join(t.TempDir(), "missing", "geom.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestLog_Fatal(t *testing.T) {
	capture(t, ReleaseBuild)
	dir := t.TempDir()
	SetCrashDir(dir)
	code := -1
	SetExitFunc(func(c int) { code = c })

	Log(FATAL, "unrecoverable")

	assert.Equal(t, 1, code)
	content, err := os.ReadFile(filepath.Join(dir, "geomtest_crash.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[FATAL] unrecoverable")
	assert.Contains(t, string(content), "Build Type: Release")
	assert.Contains(t, string(content), "goroutine")
}

func TestShutdown_RecoversPanic(t *testing.T) {
	buf := capture(t, DebugBuild)
	SetCrashDir(t.TempDir())
	code := -1
	SetExitFunc(func(c int) { code = c })

	func() {
		defer Shutdown()
		panic("boom")
	}()

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[FATAL] boom")
}

func TestTypes_String(t *testing.T) {
	assert.Equal(t, "v0.1.0", Version{Minor: 1}.String())
	assert.Equal(t, "Debug", DebugBuild.String())
	assert.Equal(t, "Release", ReleaseBuild.String())
	assert.Equal(t, UNKNOWN, BuildType(9).String())
	assert.Equal(t, "[WARNING]", WARN.String())
	assert.Equal(t, AnsiYellow, WARN.Color())
}
