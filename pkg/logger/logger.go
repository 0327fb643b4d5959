package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05.000"

var guard sync.Mutex
var state = struct {
	started   time.Time
	name      string
	version   Version
	buildtype BuildType
	color     bool
	out       io.Writer      // stderr by default
	file      *os.File       // set by InitFile
	crashDir  string         // working directory when empty
	exit      func(code int) // called after a fatal message
}{
	out:  os.Stderr,
	exit: os.Exit,
}

// Init sets the program identity used in the log file header and the crash
// report. Calling it again only replaces these values.
func Init(name string, version Version, buildtype BuildType, color bool) {
	guard.Lock()
	defer guard.Unlock()
	state.started = time.Now()
	state.name = name
	state.version = version
	state.buildtype = buildtype
	state.color = color
}

// SetOutput changes where the log lines are printed. Nil restores stderr.
func SetOutput(w io.Writer) {
	guard.Lock()
	defer guard.Unlock()
	if w == nil {
		w = os.Stderr
	}
	state.out = w
}

// SetExitFunc replaces the function called after a fatal message. Nil
// restores os.Exit.
func SetExitFunc(exit func(code int)) {
	guard.Lock()
	defer guard.Unlock()
	if exit == nil {
		exit = os.Exit
	}
	state.exit = exit
}

func SetCrashDir(dir string) {
	guard.Lock()
	defer guard.Unlock()
	state.crashDir = dir
}

// InitFile appends every following log line to filename. Only the first
// call opens a file.
func InitFile(filename string) error {
	guard.Lock()
	defer guard.Unlock()
	if state.file != nil {
		return nil
	}
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	state.file = f
	fmt.Fprintf(f, "%s %s %s LOG %s\n", state.name, state.version, state.buildtype, time.Now().Format(timeLayout))
	return nil
}

// Shutdown must be deferred right after Init. A panic is turned into a
// fatal message, otherwise the log file is closed.
func Shutdown() {
	if pmsg := recover(); pmsg != nil {
		Log(FATAL, pmsg)
	} else {
		cleanup()
	}
}

func cleanup() {
	guard.Lock()
	defer guard.Unlock()
	if state.file != nil {
		fmt.Fprintf(state.file, "END OF LOG %s\n", time.Now().Format(timeLayout))
		state.file.Close()
		state.file = nil
	}
	if state.color {
		fmt.Fprint(state.out, AnsiReset)
	}
}

func writeCrashReport(msg string) {
	guard.Lock()
	defer guard.Unlock()
	name := state.name
	if name == "" {
		name = "program"
	}
	f, err := os.Create(filepath.Join(state.crashDir, name+"_crash.log"))
	if err != nil {
		return
	}
	defer f.Close()
	stack := make([]byte, 1<<15)
	stack = stack[:runtime.Stack(stack, false)]
	fmt.Fprintf(f, "%s %s Crash Report\nBuild Type: %s\nRunning Since: %s\n\n%s\n\n%s",
		state.name, state.version, state.buildtype, state.started.Format(timeLayout), msg, stack)
}

func Log(level LogLevel, message ...any) {
	guard.Lock()
	if state.buildtype == ReleaseBuild && level < TRACE {
		guard.Unlock()
		return
	}
	line := level.String() + " " + strings.TrimRight(fmt.Sprintln(message...), "\n\t ")
	if state.color {
		fmt.Fprintf(state.out, "%s%s%s\n", level.Color(), line, AnsiReset)
	} else {
		fmt.Fprintln(state.out, line)
	}
	if state.file != nil {
		fmt.Fprintln(state.file, line)
	}
	exit := state.exit
	guard.Unlock()

	if level == FATAL {
		writeCrashReport(line)
		cleanup()
		exit(1)
	}
}

func LogF(level LogLevel, format string, args ...any) {
	Log(level, fmt.Sprintf(format, args...))
}
