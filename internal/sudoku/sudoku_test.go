package sudoku

import (
	"testing"

	"github.com/kpitt/dlx/internal/puzzle"
)

func givens(rows [][]int) *puzzle.Puzzle {
	p := puzzle.NewPuzzle()
	for r := range 9 {
		for c := range 9 {
			if rows[r][c] != 0 {
				p.GivenValue(r, c, rows[r][c])
			}
		}
	}
	return p
}

var easyPuzzle = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solvedGrid = [][]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestNewBuildsOneRowPerSolvedCell(t *testing.T) {
	p := givens(solvedGrid)
	s := New(p)

	if len(s.candidates) != 81 {
		t.Errorf("expected 81 candidate rows for a fully solved puzzle, got %d", len(s.candidates))
	}
}

func TestNewBuildsAllCandidatesForEmptyPuzzle(t *testing.T) {
	p := puzzle.NewPuzzle()
	s := New(p)

	if want := 9 * 9 * 9; len(s.candidates) != want {
		t.Errorf("expected %d candidate rows for an empty puzzle, got %d", want, len(s.candidates))
	}
	if got := s.engine.ColumnCount(); got != 324 {
		t.Errorf("expected 324 columns, got %d", got)
	}
}

func TestSolveFillsAnEasyPuzzle(t *testing.T) {
	p := givens(easyPuzzle)
	s := New(p)

	if !s.Solve() {
		t.Fatal("Solve reported no solution for a solvable puzzle")
	}
	if !p.IsSolved() {
		t.Fatal("puzzle not marked solved after Solve")
	}
	if err := s.ValidateSolution(); err != nil {
		t.Fatalf("solution failed validation: %v", err)
	}
}

func TestSolveLeavesGivensUntouched(t *testing.T) {
	p := givens(easyPuzzle)
	s := New(p)
	s.Solve()

	for r := range 9 {
		for c := range 9 {
			if easyPuzzle[r][c] != 0 {
				if got := int(p.Grid[r][c].Value()); got != easyPuzzle[r][c] {
					t.Errorf("given at (%d,%d) changed: got %d, want %d", r, c, got, easyPuzzle[r][c])
				}
			}
		}
	}
}

func TestCountSolutionsIsUniqueForAProperPuzzle(t *testing.T) {
	p := givens(easyPuzzle)
	s := New(p)

	if got := s.CountSolutions(2); got != 1 {
		t.Errorf("expected a unique solution, got %d", got)
	}
}

func TestSolveWithStatsReportsMatrixShape(t *testing.T) {
	p := givens(easyPuzzle)
	s := New(p)

	solved, stats := s.SolveWithStats(DefaultOptions())
	if !solved {
		t.Fatal("expected puzzle to solve")
	}
	if stats.Matrix.Columns != 324 {
		t.Errorf("expected 324 columns, got %d", stats.Matrix.Columns)
	}
	if stats.SolutionsFound != 1 {
		t.Errorf("expected 1 solution found, got %d", stats.SolutionsFound)
	}
}

func TestValidateSolutionRejectsAnIncompletePuzzle(t *testing.T) {
	p := givens(easyPuzzle)
	s := New(p)

	if err := s.ValidateSolution(); err == nil {
		t.Fatal("expected validation error on an unsolved puzzle")
	}
}

func TestSolveWithDancingLinksEndToEnd(t *testing.T) {
	p := givens(easyPuzzle)

	solved, stats, err := SolveWithDancingLinks(p, nil)
	if !solved {
		t.Fatal("expected puzzle to solve")
	}
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if stats.TimeElapsed <= 0 {
		t.Error("expected a nonzero elapsed time")
	}
}
