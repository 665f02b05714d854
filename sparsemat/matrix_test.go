package sparsemat_test

import (
	"testing"

	"github.com/clusterr/parabel/sparsemat"
	"github.com/stretchr/testify/require"
)

func fixtureMatrix(t *testing.T) *sparsemat.Matrix {
	t.Helper()
	rows := []sparsemat.Vector{
		{{Index: 0, Value: 1}, {Index: 2, Value: 2}},
		{{Index: 1, Value: 1}, {Index: 3, Value: 2}},
		{{Index: 0, Value: 1}, {Index: 3, Value: 2}},
	}
	m, err := sparsemat.NewFromRows(rows, 4)
	require.NoError(t, err)
	return m
}

// TestNewFromRowsRejectsUnsorted ensures an unsorted row is rejected.
func TestNewFromRowsRejectsUnsorted(t *testing.T) {
	_, err := sparsemat.NewFromRows([]sparsemat.Vector{
		{{Index: 2, Value: 1}, {Index: 1, Value: 2}},
	}, 4)
	require.ErrorIs(t, err, sparsemat.ErrUnsortedVector)
}

// TestNewFromRowsRejectsOutOfRangeColumn.
func TestNewFromRowsRejectsOutOfRangeColumn(t *testing.T) {
	_, err := sparsemat.NewFromRows([]sparsemat.Vector{
		{{Index: 9, Value: 1}},
	}, 4)
	require.ErrorIs(t, err, sparsemat.ErrColOutOfRange)
}

// TestCopyOuterDimsPreservesPattern verifies row selection preserves the
// exact non-zero pattern.
func TestCopyOuterDimsPreservesPattern(t *testing.T) {
	m := fixtureMatrix(t)
	sub, err := m.CopyOuterDims([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 4, sub.Cols())

	row0, _ := sub.Row(0)
	orig2, _ := m.Row(2)
	require.Equal(t, orig2, row0)

	row1, _ := sub.Row(1)
	orig0, _ := m.Row(0)
	require.Equal(t, orig0, row1)
}

// TestCopyOuterDimsOutOfRange.
func TestCopyOuterDimsOutOfRange(t *testing.T) {
	m := fixtureMatrix(t)
	_, err := m.CopyOuterDims([]int{5})
	require.ErrorIs(t, err, sparsemat.ErrRowOutOfRange)
}

// TestShrinkColumnIndices verifies that all-zero columns are dropped and
// retained columns keep their relative order.
func TestShrinkColumnIndices(t *testing.T) {
	m := fixtureMatrix(t)
	sub, err := m.CopyOuterDims([]int{0, 2}) // rows use cols {0,2} and {0,3}; col 1 never appears
	require.NoError(t, err)

	shrunk, oldColOf := sub.ShrinkColumnIndices()
	require.Equal(t, 3, shrunk.Cols()) // {0,2,3}
	require.Equal(t, []sparsemat.Index{0, 2, 3}, oldColOf)

	row0, _ := shrunk.Row(0)
	require.Equal(t, sparsemat.Vector{{Index: 0, Value: 1}, {Index: 1, Value: 2}}, row0)
}

// TestL2NormalizeRows checks every row independently has sum of squares 1.
func TestL2NormalizeRows(t *testing.T) {
	m := fixtureMatrix(t)
	norm := m.L2NormalizeRows()
	for i := 0; i < norm.Rows(); i++ {
		row, _ := norm.Row(i)
		require.InDelta(t, 1.0, sparsemat.SumSquares(row), 1e-5)
	}
}

// TestRowOutOfRange.
func TestRowOutOfRange(t *testing.T) {
	m := fixtureMatrix(t)
	_, err := m.Row(-1)
	require.ErrorIs(t, err, sparsemat.ErrRowOutOfRange)
	_, err = m.Row(99)
	require.ErrorIs(t, err, sparsemat.ErrRowOutOfRange)
}
