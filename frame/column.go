package frame

import (
	"slices"

	"github.com/plotprep/plotprep/errs"
)

// Column is a single named series of float64 values addressed by key tuples
// over a declared set of key columns. It is the unit of data handed to a
// frame; the frame copies what it adopts, so the caller may reuse the slices
// afterwards.
type Column struct {
	name       string
	keyColumns []string
	keys       [][]int64
	values     []float64
}

// NewColumn builds a column from key tuples and values.
//
// Parameters:
//   - name: Column name, used to address the column inside a data group.
//   - keyColumns: Names of the key columns the tuples are expressed in.
//   - keys: One key tuple per value, each of len(keyColumns).
//   - values: The column's data, same length as keys.
//
// Returns:
//   - Column: The assembled column.
//   - error: ErrColumnShape when keys and values disagree in length or a key
//     tuple does not match the key column count.
func NewColumn(name string, keyColumns []string, keys [][]int64, values []float64) (Column, error) {
	if len(keys) != len(values) {
		return Column{}, errs.ErrColumnShape
	}
	for _, key := range keys {
		if len(key) != len(keyColumns) {
			return Column{}, errs.ErrColumnShape
		}
	}

	return Column{name: name, keyColumns: keyColumns, keys: keys, values: values}, nil
}

// Series builds a column over a single key column, the common case.
func Series(name, keyColumn string, keys []int64, values []float64) (Column, error) {
	tuples := make([][]int64, len(keys))
	for i, key := range keys {
		tuples[i] = []int64{key}
	}

	return NewColumn(name, []string{keyColumn}, tuples, values)
}

// Name returns the column name.
func (c Column) Name() string {
	return c.name
}

// KeyColumns returns the names of the key columns the tuples are expressed in.
func (c Column) KeyColumns() []string {
	return slices.Clone(c.keyColumns)
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	return len(c.keys)
}

// Table is an ordered set of columns sharing one key structure. It exists for
// callers that produce table-shaped data where a single column is expected;
// Squeeze coerces it.
type Table struct {
	columns []Column
}

// NewTable builds a table from the given columns.
func NewTable(columns ...Column) Table {
	return Table{columns: columns}
}

// NumColumns returns the number of columns in the table.
func (t Table) NumColumns() int {
	return len(t.columns)
}

// Squeeze coerces the table to its single column. A table with any other
// number of columns is rejected with ErrMultiColumnData.
func (t Table) Squeeze() (Column, error) {
	if len(t.columns) != 1 {
		return Column{}, errs.ErrMultiColumnData
	}

	return t.columns[0], nil
}
