package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes in use by the application
	Sys        uint64 // total bytes obtained from the OS
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	NumGC      uint32 // completed GC cycles
}

// MemoryDelta is the allocation cost between two snapshots.
type MemoryDelta struct {
	Allocated uint64
	Mallocs   uint64
	GCCycles  uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
	}
}

// Delta returns what was allocated between before and s. Counters that
// went backwards yield zero.
func (s MemorySnapshot) Delta(before MemorySnapshot) MemoryDelta {
	var d MemoryDelta
	if s.TotalAlloc > before.TotalAlloc {
		d.Allocated = s.TotalAlloc - before.TotalAlloc
	}
	if s.Mallocs > before.Mallocs {
		d.Mallocs = s.Mallocs - before.Mallocs
	}
	if s.NumGC > before.NumGC {
		d.GCCycles = s.NumGC - before.NumGC
	}
	return d
}
