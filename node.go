package dlx

// nodeIndex is an opaque handle into the arena's combined header-and-data
// node space. Index 0 (globalIndex) is the root header; danglingIndex marks
// a neighbor that has not been stitched in yet.
type nodeIndex uint32

const (
	globalIndex   nodeIndex = 0
	danglingIndex nodeIndex = nodeIndex(^uint32(0))
)

// columnID is a dense column index in [0, columnCount]; 0 is the root
// header's own column and is never assigned to a data node. A columnID
// doubles as the nodeIndex of its header, since headers occupy the first
// 1+columnCount slots of the arena in column order.
type columnID uint16

func (c columnID) index() nodeIndex {
	return nodeIndex(c)
}

// RowID is the caller-supplied ordinal of a Row, preserved from input
// order. Solutions are reported as slices of RowID.
type RowID uint32

// node is one element of the toroidal doubly-linked matrix: either a column
// header or a data cell. row and col are fixed at creation; u, d, l, and r
// are the only fields the solver ever rewrites, and it does so through a
// shared, non-exclusive reference to the owning arena. Nothing outside this
// package may hold a *node past a single lookup, since the backing slice can
// reallocate on arena.push.
type node struct {
	row RowID
	col columnID

	u, d, l, r nodeIndex
}

// header augments a column's node with its live element count.
type header struct {
	node node
	size uint32
}
