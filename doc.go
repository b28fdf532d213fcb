// Package dlx solves the exact cover problem with Knuth's Algorithm X,
// implemented on top of a toroidal doubly-linked sparse matrix ("dancing
// links"). Callers describe a universe of constraints implicitly: each Row
// yields the 16-bit constraint identifiers it satisfies, and New compacts
// whatever identifiers appear across all rows into a dense column matrix.
// Solve (or the CountSolutions shortcut) then enumerates every selection of
// rows whose union covers each constraint exactly once.
//
// The search is single-threaded and synchronous. cover and uncover only
// rewrite neighbor pointers and column sizes already present in the arena,
// so backtracking never touches the heap; the search is not entirely
// allocation-free, since the solution slice Solve hands to its callback
// grows by append as the search deepens. A Solver is not safe to share
// across goroutines.
package dlx
