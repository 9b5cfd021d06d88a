// Package plotprep prepares tabular data for interactive visualization and
// persists it, together with descriptive per-column metadata, into a single
// self-describing container file.
//
// The model is a set of named data groups. Each group is a table indexed by
// one or more key columns fixed at creation, holding any number of value
// columns, and every column (key and value alike) carries a validated
// metadata record with a display label and an optional unit.
//
// # Core Features
//
//   - Strict validation before mutation: a rejected call never changes state
//   - Outer-union column merges and accumulating row appends per group
//   - Write-time compaction: duplicate index rows are summed into one
//   - Self-describing container format with per-group xxHash64 checksums
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - Metadata embedded per group as a JSON attribute block
//
// # Basic Usage
//
//	preparer := plotprep.NewPreparer()
//
//	keyMeta, _ := plotprep.ColumnMetadata("Time Step", "s")
//	_ = preparer.InitDataGroup("simulation", []prep.KeyColumn{
//	    {Name: "step", Metadata: keyMeta},
//	})
//
//	valMeta, _ := plotprep.ColumnMetadata("Velocity", "m/s")
//	col, _ := frame.Series("velocity", "step", []int64{0, 1, 2}, []float64{0, 9.8, 19.6})
//	_ = preparer.AddValueColumn("simulation", col, valMeta)
//
//	path, _ := preparer.SaveToFile("run01") // writes run01.pdc
//
// Reading back:
//
//	file, _ := plotprep.ReadFile(path)
//	group, _ := file.Group("simulation")
//	fmt.Println(group.Data.Values("velocity"))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the prep and
// container packages, simplifying the most common use cases. For fine-grained
// control (byte order, compression codec), use those packages directly.
package plotprep

import (
	"github.com/plotprep/plotprep/container"
	"github.com/plotprep/plotprep/meta"
	"github.com/plotprep/plotprep/prep"
)

// NewPreparer creates a new, empty data preparer.
func NewPreparer() *prep.Preparer {
	return prep.New()
}

// ColumnMetadata builds a validated metadata record for a column. Pass an
// empty unit when the column has none.
func ColumnMetadata(label, unit string) (meta.Metadata, error) {
	return meta.ColumnMetadata(label, unit)
}

// ReadFile reads and decodes a previously written container file.
func ReadFile(path string) (*container.File, error) {
	return container.ReadFile(path)
}
