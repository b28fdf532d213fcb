package dlx

import "sort"

// Row is implemented by callers to describe one candidate subset of the
// exact-cover universe. Columns yields the 16-bit constraint identifiers
// this row satisfies, in any order the caller likes. A row must not yield
// the same identifier twice; New does not check for this, and a row that
// does produces a structurally corrupt matrix.
type Row interface {
	Columns(yield func(uint16) bool)
}

// New discovers the dense column space spanned by rows, builds the
// toroidal matrix, and returns a Solver ready to search it. Row i of rows
// becomes RowID(i) in any solution the Solver reports; a row with no
// columns is built but can never be selected.
func New[R Row](rows []R) *Solver {
	denseToSparse, sparseToDense := discoverColumns(rows)

	a := newArena(uint16(len(denseToSparse)))
	tail := newColumnMap[nodeIndex](a)
	for col := 1; col < len(a.headers); col++ {
		tail[col] = nodeIndex(col)
	}

	for i, row := range rows {
		var head, last nodeIndex
		started := false

		row.Columns(func(sparse uint16) bool {
			col := sparseToDense[sparse]

			a.updateSize(col, 1)
			idx := a.push(node{
				row: RowID(i), col: col,
				u: danglingIndex, d: danglingIndex, l: danglingIndex, r: danglingIndex,
			})

			a.attachVertical(tail[col], idx)
			if started {
				a.attachHorizontal(last, idx)
			} else {
				head, started = idx, true
			}
			tail[col] = idx
			last = idx

			return true
		})

		if started {
			a.attachHorizontal(last, head)
		}
	}

	for col := 1; col < len(a.headers); col++ {
		a.attachVertical(tail[col], columnID(col).index())
	}

	return &Solver{arena: a, columns: denseToSparse}
}

// discoverColumns collects every sparse identifier yielded by any row,
// sorts and dedupes it into dense 1-based column indices, and returns both
// the dense-to-sparse table and its inverse.
func discoverColumns[R Row](rows []R) ([]uint16, map[uint16]columnID) {
	seen := make(map[uint16]struct{})
	for _, row := range rows {
		row.Columns(func(sparse uint16) bool {
			seen[sparse] = struct{}{}
			return true
		})
	}

	denseToSparse := make([]uint16, 0, len(seen))
	for sparse := range seen {
		denseToSparse = append(denseToSparse, sparse)
	}
	sort.Slice(denseToSparse, func(i, j int) bool { return denseToSparse[i] < denseToSparse[j] })

	sparseToDense := make(map[uint16]columnID, len(denseToSparse))
	for dense, sparse := range denseToSparse {
		sparseToDense[sparse] = columnID(dense + 1)
	}

	return denseToSparse, sparseToDense
}
