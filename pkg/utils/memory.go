package utils

import (
	"log/slog"
	"runtime"
	"runtime/debug"
)

// MemoryUsage reports the current, total and OS memory usage as slog
// attributes, ready to pass to a logging call
func MemoryUsage() []any {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return []any{
		slog.Uint64("alloc_mib", m.Alloc/1024/1024),
		slog.Uint64("total_alloc_mib", m.TotalAlloc/1024/1024),
		slog.Uint64("sys_mib", m.Sys/1024/1024),
		slog.Uint64("heap_inuse_mib", m.HeapInuse/1024/1024),
		slog.Uint64("heap_released_mib", m.HeapReleased/1024/1024),
		slog.Uint64("heap_objects", m.HeapObjects),
		slog.Uint64("num_gc", uint64(m.NumGC)),
	}
}

// FreeMemory forces garbage collection and returns memory to OS
func FreeMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}
