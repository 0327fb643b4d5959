//go:build debug
// +build debug

package bench

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/hismailbulut/geometry/pkg/logger"
	"github.com/olekukonko/tablewriter"
)

const BUILD_TYPE = logger.DebugBuild

func IsDebugBuild() bool { return true }

type opStats struct {
	calls     int
	totalTime time.Duration
	maxTime   time.Duration
}

var (
	mutex    sync.Mutex
	stats map[string]opStats
	initTime time.Time
)

func init() {
	Reset()
}

// Reset drops every measurement taken so far.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	stats = make(map[string]opStats)
	initTime = time.Now()
}

// Begin starts timing an operation, call the returned function when it is
// done. Without a name the caller function name is used.
func Begin() func(name ...string) {
	before := time.Now()
	return func(name ...string) {
		elapsed := time.Since(before)
		mutex.Lock()
		defer mutex.Unlock()
		opName := "unknown"
		if len(name) > 0 {
			opName = name[0]
		} else {
			// get caller function name
			pc, _, _, ok := runtime.Caller(1)
			if ok {
				opName = runtime.FuncForPC(pc).Name()
			}
		}
		val, ok := stats[opName]
		if ok {
			val.calls++
			val.totalTime += elapsed
			if elapsed > val.maxTime {
				val.maxTime = elapsed
			}
			stats[opName] = val
		} else {
			stats[opName] = opStats{
				calls:     1,
				totalTime: elapsed,
				maxTime:   elapsed,
			}
		}
	}
}

// PrintResults writes a table with the measurements of every operation.
func PrintResults(out io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()

	if len(stats) == 0 {
		return
	}

	type opSummary struct {
		name    string
		calls   int
		time    time.Duration
		average time.Duration
		max     time.Duration
		percent float64
	}

	elapsedSeconds := time.Since(initTime).Seconds()

	list := []opSummary{}
	for key, val := range stats {
		sum := opSummary{}
		sum.name = key
		sum.calls = val.calls
		sum.time = val.totalTime
		sum.average = val.totalTime / time.Duration(val.calls)
		sum.max = val.maxTime
		sum.percent = sum.time.Seconds() / elapsedSeconds
		list = append(list, sum)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].time > list[j].time
	})

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader([]string{
		"OPERATION", "CALLS", "PERCENT",
		"TOTAL", "AVERAGE", "MAX",
	})
	for _, r := range list {
		table.Append([]string{
			r.name,
			fmt.Sprintf("%d", r.calls),
			fmt.Sprintf("%.4f", r.percent),
			r.time.String(),
			r.average.String(),
			r.max.String(),
		})
	}
	table.Render()
	io.Copy(out, &buf)
}
