// Package sudoku adapts a 9x9 Sudoku puzzle.Puzzle onto the dlx exact cover
// engine: it is the Row implementation, matrix construction, and solution
// application that the engine deliberately leaves to callers.
package sudoku

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/kpitt/dlx"
	"github.com/kpitt/dlx/internal/puzzle"
)

// Candidate records the (row, col, value) placement a dlx.RowID stands for.
type Candidate struct {
	Row, Col int
	Value    int
}

// candidateRow is one (cell, value) placement's dlx.Row: the classic four
// Sudoku constraints encoded as this engine's 16-bit column identifiers.
//   - cell:  r*9+c                 (0..80)
//   - row:   81 + r*9 + (val-1)    (81..161)
//   - col:   162 + c*9 + (val-1)   (162..242)
//   - box:   243 + box*9 + (val-1) (243..323)
type candidateRow struct {
	cell, row, col, box uint16
}

func newCandidateRow(r, c, val int) candidateRow {
	box := (r/3)*3 + c/3
	return candidateRow{
		cell: uint16(r*9 + c),
		row:  uint16(81 + r*9 + (val - 1)),
		col:  uint16(162 + c*9 + (val - 1)),
		box:  uint16(243 + box*9 + (val - 1)),
	}
}

func (c candidateRow) Columns(yield func(uint16) bool) {
	for _, col := range [4]uint16{c.cell, c.row, c.col, c.box} {
		if !yield(col) {
			return
		}
	}
}

// Solver wraps a puzzle.Puzzle together with the dlx.Solver built from its
// remaining candidates. Rebuild a Solver after placing values outside of
// Solve; it does not observe puzzle mutations made behind its back.
type Solver struct {
	puzzle     *puzzle.Puzzle
	engine     *dlx.Solver
	candidates []Candidate
}

// New builds the exact cover matrix for p's current state: one row per
// (cell, value) combination still consistent with p. An already-solved cell
// contributes a single row for its fixed value, so Solve can never overwrite
// it with something else.
func New(p *puzzle.Puzzle) *Solver {
	var rows []candidateRow
	var candidates []Candidate

	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]

			if cell.IsSolved() {
				val := int(cell.Value())
				rows = append(rows, newCandidateRow(r, c, val))
				candidates = append(candidates, Candidate{Row: r, Col: c, Value: val})
				continue
			}

			for _, val := range cell.CandidateValues() {
				rows = append(rows, newCandidateRow(r, c, int(val)))
				candidates = append(candidates, Candidate{Row: r, Col: c, Value: int(val)})
			}
		}
	}

	return &Solver{puzzle: p, engine: dlx.New(rows), candidates: candidates}
}

// Solve finds the first exact cover and applies it to the puzzle, reporting
// false if the puzzle (as currently constrained) has no solution.
func (s *Solver) Solve() bool {
	solution, found := dlx.Solve(s.engine, func(solution []dlx.RowID) dlx.ControlFlow[[]dlx.RowID] {
		return dlx.Break(append([]dlx.RowID(nil), solution...))
	})
	if !found {
		return false
	}
	return s.apply(solution)
}

func (s *Solver) apply(solution []dlx.RowID) bool {
	for _, rowID := range solution {
		candidate := s.candidates[rowID]
		cell := s.puzzle.Grid[candidate.Row][candidate.Col]
		if !cell.IsSolved() {
			if !s.puzzle.PlaceValue(candidate.Row, candidate.Col, candidate.Value) {
				return false
			}
		}
	}
	return true
}

// CountSolutions reports how many distinct ways remain to complete the
// puzzle, stopping as soon as max is reached. max <= 0 means unlimited.
func (s *Solver) CountSolutions(max int) int {
	count := 0
	dlx.Solve(s.engine, func(_ []dlx.RowID) dlx.ControlFlow[struct{}] {
		count++
		if max > 0 && count >= max {
			return dlx.Break(struct{}{})
		}
		return dlx.Continue[struct{}]()
	})
	return count
}

// Options configures a SolveWithStats run.
type Options struct {
	EnableDebugging bool
	TimeLimit       time.Duration
	MaxSolutions    int
}

// DefaultOptions returns sensible defaults: a 10-second budget and a single
// solution.
func DefaultOptions() *Options {
	return &Options{TimeLimit: 10 * time.Second, MaxSolutions: 1}
}

// MatrixInfo summarizes the exact cover matrix built for a puzzle.
type MatrixInfo struct {
	Columns int
	Rows    int
	Density float64 // percentage of matrix cells occupied by a node
}

func (s *Solver) matrixInfo() MatrixInfo {
	info := MatrixInfo{Columns: s.engine.ColumnCount(), Rows: len(s.candidates)}
	if info.Columns > 0 && info.Rows > 0 {
		// Every row has exactly 4 nodes: one per Sudoku constraint kind.
		info.Density = float64(info.Rows*4) / float64(info.Columns*info.Rows) * 100
	}
	return info
}

// Stats reports the outcome of a SolveWithStats call. Unlike the
// pointer-based solver this package replaces, it has no NodesVisited or
// BacktrackCount: dlx.Solver takes no configuration and exposes no per-node
// hook to instrument (see dlx's design notes), so the only numbers
// observable from outside the engine are matrix shape, solutions found, and
// wall-clock time.
type Stats struct {
	SolutionsFound int
	TimeElapsed    time.Duration
	Matrix         MatrixInfo
}

// SolveWithStats solves the puzzle and returns timing/shape statistics
// alongside the usual bool. TimeLimit is not enforced mid-search — there is
// no hook into the engine's recursion to check a deadline against — so a
// pathological puzzle can still run past it; MaxSolutions bounds how many
// complete covers are found before giving up on uniqueness.
func (s *Solver) SolveWithStats(options *Options) (bool, *Stats) {
	if options == nil {
		options = DefaultOptions()
	}

	stats := &Stats{Matrix: s.matrixInfo()}
	if options.EnableDebugging {
		fmt.Printf("matrix: %d columns, %d candidate rows, %.2f%% density\n",
			stats.Matrix.Columns, stats.Matrix.Rows, stats.Matrix.Density)
	}

	start := time.Now()
	var solution []dlx.RowID
	dlx.Solve(s.engine, func(sol []dlx.RowID) dlx.ControlFlow[struct{}] {
		stats.SolutionsFound++
		if solution == nil {
			solution = append([]dlx.RowID(nil), sol...)
		}
		if stats.SolutionsFound >= options.MaxSolutions {
			return dlx.Break(struct{}{})
		}
		return dlx.Continue[struct{}]()
	})
	stats.TimeElapsed = time.Since(start)

	if solution == nil {
		return false, stats
	}
	return s.apply(solution), stats
}

// Print writes stats in the same box-and-color style puzzle.Puzzle.Print
// uses for the grid itself.
func (stats *Stats) Print() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Printf("Matrix Info:\n")
	fmt.Printf("  Columns: %s\n", color.HiYellowString("%d", stats.Matrix.Columns))
	fmt.Printf("  Rows:    %s\n", color.HiYellowString("%d", stats.Matrix.Rows))
	fmt.Printf("  Density: %s\n", color.HiYellowString("%.2f%%", stats.Matrix.Density))

	fmt.Printf("\nSearch Statistics:\n")
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", stats.TimeElapsed))
}

// ValidateSolution checks that the puzzle is completely and correctly
// filled: every cell solved, every row/column/box containing each digit
// exactly once.
func (s *Solver) ValidateSolution() error {
	p := s.puzzle

	for r := range 9 {
		for c := range 9 {
			if !p.Grid[r][c].IsSolved() {
				return fmt.Errorf("cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for r := range 9 {
		seen := make(map[int8]bool)
		for c := range 9 {
			val := p.Grid[r][c].Value()
			if val < 1 || val > 9 {
				return fmt.Errorf("invalid value %d in cell (%d,%d)", val, r, c)
			}
			if seen[val] {
				return fmt.Errorf("duplicate value %d in row %d", val, r)
			}
			seen[val] = true
		}
	}

	for c := range 9 {
		seen := make(map[int8]bool)
		for r := range 9 {
			val := p.Grid[r][c].Value()
			if seen[val] {
				return fmt.Errorf("duplicate value %d in column %d", val, c)
			}
			seen[val] = true
		}
	}

	for box := range 9 {
		seen := make(map[int8]bool)
		boxRow, boxCol := box/3, box%3
		for i := range 9 {
			r, c := boxRow*3+i/3, boxCol*3+i%3
			val := p.Grid[r][c].Value()
			if seen[val] {
				return fmt.Errorf("duplicate value %d in box %d", val, box)
			}
			seen[val] = true
		}
	}

	return nil
}

// SolveWithDancingLinks is a high-level one-shot entry point: build the
// matrix, solve with stats, and validate the result.
func SolveWithDancingLinks(p *puzzle.Puzzle, options *Options) (bool, *Stats, error) {
	if options == nil {
		options = DefaultOptions()
	}

	s := New(p)
	solved, stats := s.SolveWithStats(options)

	var err error
	if solved {
		err = s.ValidateSolution()
	}
	return solved, stats, err
}
