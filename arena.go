package dlx

import "iter"

// arena is a flat, index-addressed pool holding every header and data node
// of one exact-cover matrix. NodeIndex values are stable for the arena's
// entire lifetime: nothing is ever freed, only unlinked and relinked. The
// header region (length 1+columnCount) is allocated up front by newArena;
// data nodes are appended one at a time while the Builder runs, and none are
// appended once a Solver starts searching.
type arena struct {
	headers []header
	nodes   []node
}

// newArena builds the header row: root at index 0, columns 1..=columnCount
// threaded into a circular list root <-> col1 <-> ... <-> colN <-> root.
// Every column header's u/d dangle until the Builder closes the column
// cycles (the root's u/d are left at globalIndex);
// an empty arena (columnCount == 0) leaves the root pointing at itself.
func newArena(columnCount uint16) *arena {
	a := &arena{headers: make([]header, int(columnCount)+1)}

	for col := 1; col <= int(columnCount); col++ {
		a.headers[col].node = node{col: columnID(col), u: danglingIndex, d: danglingIndex}
	}

	prev := globalIndex
	for col := 1; col <= int(columnCount); col++ {
		idx := nodeIndex(col)
		a.headers[prev].node.r = idx
		a.headers[col].node.l = prev
		prev = idx
	}
	a.headers[prev].node.r = globalIndex
	a.headers[globalIndex].node.l = prev

	return a
}

// push appends a dangling data node and returns its fresh index. The
// Builder is responsible for stitching its neighbor fields in.
func (a *arena) push(n node) nodeIndex {
	idx := nodeIndex(len(a.headers) + len(a.nodes))
	a.nodes = append(a.nodes, n)
	return idx
}

func (a *arena) lookup(i nodeIndex) *node {
	if int(i) < len(a.headers) {
		return &a.headers[i].node
	}
	return &a.nodes[int(i)-len(a.headers)]
}

func (a *arena) size(col columnID) uint32 {
	return a.headers[col].size
}

// updateSize adjusts a column's live-element counter. delta is typically
// +1/-1; the addition wraps on underflow, which correct cover/uncover
// pairing never triggers.
func (a *arena) updateSize(col columnID, delta int32) {
	a.headers[col].size += uint32(delta)
}

func (a *arena) attachVertical(up, down nodeIndex) {
	a.lookup(up).d = down
	a.lookup(down).u = up
}

func (a *arena) attachHorizontal(left, right nodeIndex) {
	a.lookup(left).r = right
	a.lookup(right).l = left
}

// detachVertical unlinks i from its column by splicing its neighbors
// together. i's own u/d fields are left untouched, which is what makes
// reattachVertical possible later.
func (a *arena) detachVertical(i nodeIndex) {
	n := a.lookup(i)
	up, down := n.u, n.d
	a.lookup(up).d = down
	a.lookup(down).u = up
}

func (a *arena) detachHorizontal(i nodeIndex) {
	n := a.lookup(i)
	left, right := n.l, n.r
	a.lookup(left).r = right
	a.lookup(right).l = left
}

// reattachVertical restores i between the neighbors recorded in its own u/d
// fields. Correct only if those fields still hold their pre-detach values,
// i.e. if the matching detachVertical is undone in LIFO order.
func (a *arena) reattachVertical(i nodeIndex) {
	n := a.lookup(i)
	up, down := n.u, n.d
	a.lookup(up).d = i
	a.lookup(down).u = i
}

func (a *arena) reattachHorizontal(i nodeIndex) {
	n := a.lookup(i)
	left, right := n.l, n.r
	a.lookup(left).r = i
	a.lookup(right).l = i
}

func (a *arena) columnOf(i nodeIndex) columnID {
	return a.lookup(i).col
}

// walk follows next from start, yielding each visited node and stopping
// (without yielding) the moment it would return to start. It recomputes
// next on every step, so it stays correct even when the solver unlinks
// nodes further along the walk in between yields.
func (a *arena) walk(start nodeIndex, next func(*node) nodeIndex) iter.Seq[nodeIndex] {
	return func(yield func(nodeIndex) bool) {
		cur := start
		for {
			cur = next(a.lookup(cur))
			if cur == start {
				return
			}
			if !yield(cur) {
				return
			}
		}
	}
}

func (a *arena) walkUp(start nodeIndex) iter.Seq[nodeIndex] {
	return a.walk(start, func(n *node) nodeIndex { return n.u })
}

func (a *arena) walkDown(start nodeIndex) iter.Seq[nodeIndex] {
	return a.walk(start, func(n *node) nodeIndex { return n.d })
}

func (a *arena) walkLeft(start nodeIndex) iter.Seq[nodeIndex] {
	return a.walk(start, func(n *node) nodeIndex { return n.l })
}

func (a *arena) walkRight(start nodeIndex) iter.Seq[nodeIndex] {
	return a.walk(start, func(n *node) nodeIndex { return n.r })
}
