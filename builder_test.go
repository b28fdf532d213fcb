package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverColumnsIsDenseAndSorted(t *testing.T) {
	input := rows([]uint16{40, 10}, []uint16{10, 25}, []uint16{40})

	denseToSparse, sparseToDense := discoverColumns(input)

	assert.Equal(t, []uint16{10, 25, 40}, denseToSparse)
	assert.Equal(t, columnID(1), sparseToDense[10])
	assert.Equal(t, columnID(2), sparseToDense[25])
	assert.Equal(t, columnID(3), sparseToDense[40])
}

func TestNewReportsColumnCount(t *testing.T) {
	solver := New(knuthRows())
	assert.Equal(t, 7, solver.ColumnCount())
}

func TestNewWithNoRowsHasNoColumns(t *testing.T) {
	solver := New([]rowSet{})
	assert.Equal(t, 0, solver.ColumnCount())
	assert.Equal(t, 1, solver.CountSolutions(), "an empty matrix is trivially solved by the empty row set")
}

func TestNewPreservesRowOrderAsRowID(t *testing.T) {
	input := rows([]uint16{1}, []uint16{2}, []uint16{3})
	solver := New(input)

	var seen []RowID
	Solve(solver, func(solution []RowID) ControlFlow[struct{}] {
		seen = append(seen, solution...)
		return Continue[struct{}]()
	})

	require.Len(t, seen, 3)
	assert.ElementsMatch(t, []RowID{0, 1, 2}, seen)
}

func TestEachColumnCycleIncludesEveryMatchingRow(t *testing.T) {
	input := rows([]uint16{5, 9}, []uint16{5}, []uint16{9})
	solver := New(input)
	a := solver.arena

	col5 := columnID(1)
	col9 := columnID(2)

	assert.Equal(t, uint32(2), a.size(col5))
	assert.Equal(t, uint32(2), a.size(col9))

	var rowsInCol5 []RowID
	for i := range a.walkDown(col5.index()) {
		rowsInCol5 = append(rowsInCol5, a.lookup(i).row)
	}
	assert.ElementsMatch(t, []RowID{0, 1}, rowsInCol5)
}
