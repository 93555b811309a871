package color

import (
	"sync"
	"sync/atomic"
)

// Tables holds the byte decode tables shared by every renderer.
type Tables struct {
	// Linear maps an sRGB byte to linear light.
	Linear [256]float32

	// Normalized maps a byte to byte/255 (used for alpha).
	Normalized [256]float32
}

var (
	tablesMu sync.Mutex
	tables   atomic.Pointer[Tables]
)

// LookupTables returns the process-wide tables, building them on first use.
// Concurrent first calls build the tables once.
func LookupTables() *Tables {
	if t := tables.Load(); t != nil {
		return t
	}
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if t := tables.Load(); t != nil {
		return t
	}
	t := buildTables()
	tables.Store(t)
	return t
}

// FreeLookupTables drops the process-wide tables. The next LookupTables
// call rebuilds them. Tables already handed out stay valid.
func FreeLookupTables() {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	tables.Store(nil)
}

// tablesBuilt reports whether the tables are currently resident.
func tablesBuilt() bool {
	return tables.Load() != nil
}

func buildTables() *Tables {
	t := new(Tables)
	for i := range 256 {
		n := float32(i) / 255
		t.Normalized[i] = n
		t.Linear[i] = SRGBToLinear(n)
	}
	return t
}
