package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
)

// ResolveWorkerCount maps the configured worker count to an actual pool
// size: positive values pass through, zero or less means use every
// logical CPU. CPU detection falls back to the Go runtime when the OS
// probe fails.
func ResolveWorkerCount(maxWorkers int) int {
	if maxWorkers > 0 {
		return maxWorkers
	}
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}
