// benchmark.go
// A reusable benchmarking module for the tools
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report holds what one benchmarked run consumed.
type Report struct {
	Label           string
	Elapsed         time.Duration
	AllocDeltaMB    float64
	TotalAllocMB    float64
	HeapMB          float64
	GCCycles        uint32
	NumCPU          int
	StartGoroutines int
	EndGoroutines   int
}

// Run wraps f to measure its runtime and memory usage, writes the report to w
// and returns f's error. The report is written even when f fails.
func Run(w io.Writer, label string, f func() error) error {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	rep, err := Measure(label, f)
	rep.Print(w)
	return err
}

// Measure runs f and collects a Report without printing anything.
func Measure(label string, f func() error) (Report, error) {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	return Report{
		Label:           label,
		Elapsed:         elapsed,
		AllocDeltaMB:    (float64(memEnd.Alloc) - float64(memStart.Alloc)) / 1024.0 / 1024.0,
		TotalAllocMB:    float64(memEnd.TotalAlloc-memStart.TotalAlloc) / 1024.0 / 1024.0,
		HeapMB:          float64(memEnd.HeapAlloc) / 1024.0 / 1024.0,
		GCCycles:        memEnd.NumGC - memStart.NumGC,
		NumCPU:          runtime.NumCPU(),
		StartGoroutines: startGoroutines,
		EndGoroutines:   runtime.NumGoroutine(),
	}, err
}

// Print writes the resource usage lines.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", r.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", r.AllocDeltaMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", r.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %.2f MB\n", r.HeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", r.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", r.NumCPU)
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d → %d\n", r.StartGoroutines, r.EndGoroutines)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}
