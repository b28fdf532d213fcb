package dlx

import "math"

// Solver runs Algorithm X over a matrix built by New, delivering each
// complete exact cover to a caller-supplied callback. A Solver mutates its
// arena throughout the search but allocates no nodes once built (the only
// allocation during a search is the growth of the solution slice); it is
// not safe to use from more than one goroutine at a time.
type Solver struct {
	arena *arena

	// columns recovers the caller's sparse 16-bit identifier for a dense
	// column, for callers that want to report on the matrix shape.
	columns []uint16
}

// ColumnCount reports the number of distinct constraints spanned by the
// rows this Solver was built from.
func (s *Solver) ColumnCount() int {
	return len(s.columns)
}

// ControlFlow is the verdict a solution callback hands back to Solve:
// either keep enumerating, or stop and carry a value out.
type ControlFlow[T any] struct {
	stop  bool
	value T
}

// Continue tells Solve to keep enumerating solutions.
func Continue[T any]() ControlFlow[T] {
	return ControlFlow[T]{}
}

// Break stops the search immediately; value comes back out of Solve.
func Break[T any](value T) ControlFlow[T] {
	return ControlFlow[T]{stop: true, value: value}
}

// CountSolutions runs the full search to completion and returns the number
// of complete covers found.
func (s *Solver) CountSolutions() int {
	count := 0
	Solve(s, func(_ []RowID) ControlFlow[struct{}] {
		count++
		return Continue[struct{}]()
	})
	return count
}

// Solve enumerates every exact cover of s's matrix in a deterministic order
// (minimum-size column choice, ColumnId tiebreak, input row order),
// invoking inspect with each one. The solution slice inspect receives is
// borrowed and reused on the next call; callers that need to keep it must
// copy it. If inspect ever returns Break, the search stops immediately and
// Solve returns that value with ok true; if the search exhausts without a
// break, it returns the zero value with ok false.
func Solve[T any](s *Solver, inspect func(solution []RowID) ControlFlow[T]) (result T, ok bool) {
	var solution []RowID
	return solveInner(s.arena, &solution, inspect)
}

func solveInner[T any](a *arena, solution *[]RowID, inspect func([]RowID) ControlFlow[T]) (T, bool) {
	col, found := chooseColumn(a)
	if !found {
		verdict := inspect(*solution)
		if verdict.stop {
			return verdict.value, true
		}
		var zero T
		return zero, false
	}

	cover(a, col)

	for i := range a.walkDown(col.index()) {
		*solution = append(*solution, a.lookup(i).row)

		for j := range a.walkRight(i) {
			cover(a, a.columnOf(j))
		}

		if result, stop := solveInner(a, solution, inspect); stop {
			return result, true
		}

		for j := range a.walkLeft(i) {
			uncover(a, a.columnOf(j))
		}

		*solution = (*solution)[:len(*solution)-1]
	}

	uncover(a, col)

	var zero T
	return zero, false
}

// chooseColumn picks the live column with the fewest remaining rows,
// breaking ties toward the smallest ColumnId by walking rightward from the
// root. It reports found=false once every column has been covered.
func chooseColumn(a *arena) (col columnID, found bool) {
	minSize := uint32(math.MaxUint32)

	for i := range a.walkRight(globalIndex) {
		candidate := a.columnOf(i)
		if size := a.size(candidate); !found || size < minSize {
			col, minSize, found = candidate, size, true
		}
	}

	return col, found
}

// cover detaches col's header from the header row, then for every row
// under it, detaches every other node in that row from its column and
// shrinks that column's size. Down-then-right order is load-bearing: it is
// what lets uncover restore everything by walking up-then-left.
func cover(a *arena, col columnID) {
	a.detachHorizontal(col.index())

	for i := range a.walkDown(col.index()) {
		for j := range a.walkRight(i) {
			a.detachVertical(j)
			a.updateSize(a.columnOf(j), -1)
		}
	}
}

// uncover is cover's exact mirror: up-then-left reattachment, then the
// header itself.
func uncover(a *arena, col columnID) {
	for i := range a.walkUp(col.index()) {
		for j := range a.walkLeft(i) {
			a.reattachVertical(j)
			a.updateSize(a.columnOf(j), 1)
		}
	}

	a.reattachHorizontal(col.index())
}
