// Package frame implements the mutable keyed table behind a data group.
//
// A Frame is indexed by a fixed set of key columns chosen at creation and
// holds zero or more named value columns. Key cells are int64, value cells
// float64. Rows may repeat key tuples (repeated row appends accumulate) and
// may leave cells unset (outer-join merges fill only what they know); both are
// reconciled by Compacted, which groups rows by their full key tuple and sums
// duplicate cells. Compaction happens at persistence time, never on insert.
//
// Note: the Frame is NOT thread-safe. Callers requiring concurrent access
// must serialize it externally.
package frame

import (
	"fmt"
	"slices"

	"github.com/plotprep/plotprep/errs"
)

// Frame is one data group's table.
type Frame struct {
	keyColumns   []string
	valueColumns []string
	rows         []row
}

type row struct {
	key   []int64
	cells map[string]float64
}

// New creates an empty frame indexed by the given key columns. The key column
// set is fixed for the frame's lifetime.
func New(keyColumns []string) *Frame {
	return &Frame{keyColumns: slices.Clone(keyColumns)}
}

// KeyColumns returns the names of the frame's key columns, in index order.
func (f *Frame) KeyColumns() []string {
	return slices.Clone(f.keyColumns)
}

// ValueColumns returns the names of the frame's value columns, in the order
// they were first added.
func (f *Frame) ValueColumns() []string {
	return slices.Clone(f.valueColumns)
}

// NumRows returns the number of rows currently held, duplicates included.
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// HasColumn reports whether the named value column exists in the frame.
func (f *Frame) HasColumn(name string) bool {
	return slices.Contains(f.valueColumns, name)
}

// MatchIndex checks that the column's key columns agree with the frame's:
// same count and same names. Order may differ; tuples are realigned to the
// frame's order when the column is adopted.
//
// Returns:
//   - error: ErrIndexLengthMismatch or ErrIndexNameMismatch, nil on match.
func (f *Frame) MatchIndex(col Column) error {
	if len(col.keyColumns) != len(f.keyColumns) {
		return fmt.Errorf("%w: data has %d key columns, group has %d",
			errs.ErrIndexLengthMismatch, len(col.keyColumns), len(f.keyColumns))
	}
	for _, name := range f.keyColumns {
		if !slices.Contains(col.keyColumns, name) {
			return fmt.Errorf("%w: %q", errs.ErrIndexNameMismatch, name)
		}
	}

	return nil
}

// MergeColumn joins the column into the frame on its index (outer union).
// Rows whose key tuple is already present receive the cell; unseen key tuples
// become new rows with all other cells left unset. The column name is
// registered as a value column.
func (f *Frame) MergeColumn(col Column) error {
	if err := f.MatchIndex(col); err != nil {
		return err
	}

	perm := f.permutation(col)
	f.registerColumn(col.name)
	for i, key := range col.keys {
		aligned := alignKey(key, perm)
		if r := f.findRow(aligned); r != nil {
			r.cells[col.name] = col.values[i]
			continue
		}
		f.rows = append(f.rows, row{key: aligned, cells: map[string]float64{col.name: col.values[i]}})
	}

	return nil
}

// AppendRows appends the column's rows along the index axis. Key tuples that
// repeat earlier rows are kept as separate rows until Compacted sums them.
// The column name is registered as a value column if not yet present.
func (f *Frame) AppendRows(col Column) error {
	if err := f.MatchIndex(col); err != nil {
		return err
	}

	perm := f.permutation(col)
	f.registerColumn(col.name)
	for i, key := range col.keys {
		f.rows = append(f.rows, row{
			key:   alignKey(key, perm),
			cells: map[string]float64{col.name: col.values[i]},
		})
	}

	return nil
}

// Compacted returns a new frame grouped by the full key tuple: rows sharing a
// key are summed cell-wise, cells never set contribute zero, and the result is
// sorted by key tuple. The receiver is left untouched, so a frame stays usable
// and may keep accumulating rows after being written out.
func (f *Frame) Compacted() *Frame {
	out := New(f.keyColumns)
	out.valueColumns = slices.Clone(f.valueColumns)
	for _, r := range f.rows {
		if dst := out.findRow(r.key); dst != nil {
			for name, val := range r.cells {
				dst.cells[name] += val
			}
			continue
		}

		cells := make(map[string]float64, len(out.valueColumns))
		for name, val := range r.cells {
			cells[name] = val
		}
		out.rows = append(out.rows, row{key: slices.Clone(r.key), cells: cells})
	}

	slices.SortFunc(out.rows, func(a, b row) int {
		return slices.Compare(a.key, b.key)
	})

	return out
}

// Key returns the key tuple of row i, in key column order.
func (f *Frame) Key(i int) []int64 {
	return slices.Clone(f.rows[i].key)
}

// Cell returns the value at row i for the named column, or zero when the cell
// was never set.
func (f *Frame) Cell(i int, column string) float64 {
	return f.rows[i].cells[column]
}

// CellOK returns the value at row i for the named column and whether the cell
// has been set.
func (f *Frame) CellOK(i int, column string) (float64, bool) {
	val, ok := f.rows[i].cells[column]
	return val, ok
}

// KeyColumn returns the j-th key column as a dense slice, one entry per row.
func (f *Frame) KeyColumn(j int) []int64 {
	out := make([]int64, len(f.rows))
	for i := range f.rows {
		out[i] = f.rows[i].key[j]
	}

	return out
}

// Values returns the named value column as a dense slice, one entry per row,
// with unset cells reported as zero.
func (f *Frame) Values(column string) []float64 {
	out := make([]float64, len(f.rows))
	for i := range f.rows {
		out[i] = f.rows[i].cells[column]
	}

	return out
}

// FromDense rebuilds a frame from dense column data, as decoded from a
// container file. keys holds one tuple per row, aligned with keyColumns;
// values holds one dense slice per value column.
func FromDense(keyColumns []string, keys [][]int64, valueColumns []string, values map[string][]float64) (*Frame, error) {
	f := New(keyColumns)
	f.valueColumns = slices.Clone(valueColumns)
	for i, key := range keys {
		if len(key) != len(keyColumns) {
			return nil, errs.ErrColumnShape
		}
		cells := make(map[string]float64, len(valueColumns))
		for _, name := range valueColumns {
			col, ok := values[name]
			if !ok || len(col) != len(keys) {
				return nil, errs.ErrColumnShape
			}
			cells[name] = col[i]
		}
		f.rows = append(f.rows, row{key: slices.Clone(key), cells: cells})
	}

	return f, nil
}

// permutation maps frame key positions to column key positions. MatchIndex
// must have passed before calling.
func (f *Frame) permutation(col Column) []int {
	perm := make([]int, len(f.keyColumns))
	for i, name := range f.keyColumns {
		perm[i] = slices.Index(col.keyColumns, name)
	}

	return perm
}

func alignKey(key []int64, perm []int) []int64 {
	aligned := make([]int64, len(perm))
	for i, p := range perm {
		aligned[i] = key[p]
	}

	return aligned
}

func (f *Frame) registerColumn(name string) {
	if !slices.Contains(f.valueColumns, name) {
		f.valueColumns = append(f.valueColumns, name)
	}
}

func (f *Frame) findRow(key []int64) *row {
	for i := range f.rows {
		if slices.Equal(f.rows[i].key, key) {
			return &f.rows[i]
		}
	}

	return nil
}
