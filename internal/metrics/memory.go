package metrics

import "runtime"

// MemorySnapshot is a point-in-time heap reading. The benchmark display
// prints one after a timing sweep to show how the memo caches weigh on the
// heap; only the fields that display reads are captured.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by live objects
	HeapObjects uint64 // number of allocated heap objects
	NumGC       uint32 // completed GC cycles
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current heap statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
	}
}
