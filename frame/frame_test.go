package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotprep/plotprep/errs"
)

func mustSeries(t *testing.T, name, keyColumn string, keys []int64, values []float64) Column {
	t.Helper()
	col, err := Series(name, keyColumn, keys, values)
	require.NoError(t, err)

	return col
}

func TestNewColumn_ShapeMismatch(t *testing.T) {
	_, err := NewColumn("col", []string{"ColA"}, [][]int64{{1}, {2}}, []float64{1.0})
	require.ErrorIs(t, err, errs.ErrColumnShape)

	_, err = NewColumn("col", []string{"ColA", "ColB"}, [][]int64{{1}}, []float64{1.0})
	require.ErrorIs(t, err, errs.ErrColumnShape)
}

func TestTable_Squeeze(t *testing.T) {
	single := NewTable(mustSeries(t, "col1", "ColA", []int64{0, 1}, []float64{3, 4}))
	col, err := single.Squeeze()
	require.NoError(t, err)
	require.Equal(t, "col1", col.Name())
	require.Equal(t, 2, col.Len())

	multi := NewTable(
		mustSeries(t, "col1", "ColA", []int64{0, 1}, []float64{1, 2}),
		mustSeries(t, "col2", "ColA", []int64{0, 1}, []float64{3, 4}),
	)
	_, err = multi.Squeeze()
	require.ErrorIs(t, err, errs.ErrMultiColumnData)

	_, err = NewTable().Squeeze()
	require.ErrorIs(t, err, errs.ErrMultiColumnData)
}

func TestFrame_MatchIndex_LengthMismatch(t *testing.T) {
	f := New([]string{"ColA", "ColB"})
	col := mustSeries(t, "val", "ColA", []int64{0}, []float64{0})
	require.ErrorIs(t, f.MatchIndex(col), errs.ErrIndexLengthMismatch)
}

func TestFrame_MatchIndex_NameMismatch(t *testing.T) {
	f := New([]string{"ColA"})
	col := mustSeries(t, "val", "ColB", []int64{0}, []float64{0})
	require.ErrorIs(t, f.MatchIndex(col), errs.ErrIndexNameMismatch)
}

func TestFrame_MatchIndex_OrderInsensitive(t *testing.T) {
	f := New([]string{"ColA", "ColB"})
	col, err := NewColumn("val", []string{"ColB", "ColA"}, [][]int64{{10, 1}}, []float64{2.5})
	require.NoError(t, err)
	require.NoError(t, f.MatchIndex(col))

	// Tuples are realigned to the frame's key order on adoption.
	require.NoError(t, f.AppendRows(col))
	require.Equal(t, []int64{1, 10}, f.Key(0))
}

func TestFrame_MergeColumn_OuterUnion(t *testing.T) {
	f := New([]string{"ColA"})
	require.NoError(t, f.MergeColumn(mustSeries(t, "first", "ColA", []int64{0, 1}, []float64{1, 2})))
	require.NoError(t, f.MergeColumn(mustSeries(t, "second", "ColA", []int64{1, 2}, []float64{20, 30})))

	require.Equal(t, []string{"first", "second"}, f.ValueColumns())
	require.Equal(t, 3, f.NumRows())

	compacted := f.Compacted()
	require.Equal(t, []int64{0, 1, 2}, compacted.KeyColumn(0))
	require.Equal(t, []float64{1, 2, 0}, compacted.Values("first"))
	require.Equal(t, []float64{0, 20, 30}, compacted.Values("second"))

	// Row 0 never received a "second" cell.
	_, ok := compacted.CellOK(0, "second")
	require.False(t, ok)
}

func TestFrame_MergeColumn_OverwritesCell(t *testing.T) {
	f := New([]string{"ColA"})
	require.NoError(t, f.MergeColumn(mustSeries(t, "col", "ColA", []int64{0}, []float64{1})))
	require.NoError(t, f.MergeColumn(mustSeries(t, "col", "ColA", []int64{0}, []float64{5})))

	require.Equal(t, 1, f.NumRows())
	require.Equal(t, 5.0, f.Cell(0, "col"))
}

func TestFrame_AppendRows_DuplicatesAccumulateAtCompaction(t *testing.T) {
	f := New([]string{"ColA"})
	require.NoError(t, f.AppendRows(mustSeries(t, "val", "ColA", []int64{7}, []float64{1.5})))
	require.NoError(t, f.AppendRows(mustSeries(t, "val", "ColA", []int64{7}, []float64{2.5})))

	// Duplicate index rows are kept separate until compaction.
	require.Equal(t, 2, f.NumRows())

	compacted := f.Compacted()
	require.Equal(t, 1, compacted.NumRows())
	require.Equal(t, 4.0, compacted.Cell(0, "val"))
}

func TestFrame_Compacted_SortsByKeyTuple(t *testing.T) {
	f := New([]string{"ColA", "ColB"})
	col, err := NewColumn("val", []string{"ColA", "ColB"},
		[][]int64{{2, 0}, {1, 5}, {1, 3}}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.AppendRows(col))

	compacted := f.Compacted()
	require.Equal(t, []int64{1, 3}, compacted.Key(0))
	require.Equal(t, []int64{1, 5}, compacted.Key(1))
	require.Equal(t, []int64{2, 0}, compacted.Key(2))
}

func TestFrame_Compacted_LeavesReceiverUsable(t *testing.T) {
	f := New([]string{"ColA"})
	require.NoError(t, f.AppendRows(mustSeries(t, "val", "ColA", []int64{1, 1}, []float64{1, 2})))

	compacted := f.Compacted()
	require.Equal(t, 1, compacted.NumRows())
	require.Equal(t, 2, f.NumRows())

	// The receiver keeps accepting rows after compaction.
	require.NoError(t, f.AppendRows(mustSeries(t, "val", "ColA", []int64{1}, []float64{4})))
	require.Equal(t, 7.0, f.Compacted().Cell(0, "val"))
	require.Equal(t, 3.0, compacted.Cell(0, "val"))
}

func TestFrame_FromDense_RoundTrip(t *testing.T) {
	f := New([]string{"ColA"})
	require.NoError(t, f.AppendRows(mustSeries(t, "val", "ColA", []int64{1, 2}, []float64{10, 20})))
	compacted := f.Compacted()

	rebuilt, err := FromDense(
		compacted.KeyColumns(),
		[][]int64{compacted.Key(0), compacted.Key(1)},
		compacted.ValueColumns(),
		map[string][]float64{"val": compacted.Values("val")},
	)
	require.NoError(t, err)
	require.Equal(t, compacted.KeyColumn(0), rebuilt.KeyColumn(0))
	require.Equal(t, compacted.Values("val"), rebuilt.Values("val"))
}

func TestFrame_FromDense_ShapeMismatch(t *testing.T) {
	_, err := FromDense([]string{"ColA"}, [][]int64{{1, 2}}, nil, nil)
	require.ErrorIs(t, err, errs.ErrColumnShape)

	_, err = FromDense([]string{"ColA"}, [][]int64{{1}}, []string{"val"},
		map[string][]float64{"val": {1, 2}})
	require.ErrorIs(t, err, errs.ErrColumnShape)
}
