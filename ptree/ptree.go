package ptree

import (
	"github.com/katalvlaran/isogrid/partid"
	"github.com/katalvlaran/isogrid/pcoord"
)

const rootID = partid.RootID

type kind uint8

const (
	kindEmpty kind = iota
	kindInterior
	kindLeaf
)

// node is one Empty/Interior/Leaf(T) cell of the tree.
type node[T any] struct {
	kind     kind
	children []*node[T]
	value    T
}

// Tree is a sparse N-ary PartitionTree<T,N>; dim fixes the dimension
// (N in {1,2,3}) and therefore the arity (1<<dim) of every Interior node.
type Tree[T any] struct {
	dim  int
	root *node[T]
}

// New returns an empty Tree of the given dimension.
func New[T any](dim int) *Tree[T] {
	return &Tree[T]{dim: dim, root: &node[T]{kind: kindEmpty}}
}

// Dim returns the tree's fixed dimension.
func (t *Tree[T]) Dim() int {
	return t.dim
}

func (t *Tree[T]) arity() int {
	return 1 << uint(t.dim)
}

// InsertLeaf writes v at coord, splitting any shallower Leaf it descends
// through and dropping the write if it lands on an existing Interior.
// coord must have length t.Dim().
func (t *Tree[T]) InsertLeaf(coord pcoord.Coord, v T) {
	t.insert(t.root, coord.Clone(), v)
}

func (t *Tree[T]) insert(n *node[T], cur pcoord.Coord, v T) {
	if cur.IsRoot() {
		switch n.kind {
		case kindEmpty, kindLeaf:
			n.kind = kindLeaf
			n.value = v
			n.children = nil
		case kindInterior:
			// Interior wins; finer structure already exists below this
			// coarser write, so the write is silently dropped.
		}

		return
	}

	if n.kind != kindInterior {
		// Empty becomes Interior; an existing Leaf is split, discarding
		// its value, so the path can continue below it.
		n.kind = kindInterior
		n.children = make([]*node[T], t.arity())
		for i := range n.children {
			n.children[i] = &node[T]{kind: kindEmpty}
		}
		var zero T
		n.value = zero
	}

	idx := cur.TreeIndex()
	t.insert(n.children[idx], cur.IDAtChild(), v)
}

// Get returns the leaf value stored at coord and true, or the zero value
// and false if no leaf exists there.
func (t *Tree[T]) Get(coord pcoord.Coord) (T, bool) {
	var zero T
	n := t.root
	cur := coord.Clone()
	for {
		if cur.IsRoot() {
			if n.kind == kindLeaf {
				return n.value, true
			}

			return zero, false
		}
		if n.kind != kindInterior {
			return zero, false
		}
		idx := cur.TreeIndex()
		n = n.children[idx]
		cur = cur.IDAtChild()
	}
}

// Prune collapses every Interior node whose children are all Empty back to
// Empty. Idempotent: a second Prune call leaves the tree unchanged.
func (t *Tree[T]) Prune() {
	pruneNode(t.root)
}

func pruneNode[T any](n *node[T]) bool {
	if n.kind != kindInterior {
		return n.kind == kindEmpty
	}
	allEmpty := true
	for _, c := range n.children {
		if !pruneNode(c) {
			allEmpty = false
		}
	}
	if allEmpty {
		n.kind = kindEmpty
		n.children = nil
	}

	return n.kind == kindEmpty
}

// Entry is one (Coord, value) pair yielded by Walk.
type Entry[T any] struct {
	Coord pcoord.Coord
	Value T
}

// Walk returns every leaf in deterministic pre-order, each paired with its
// reconstructed absolute Coord from the tree's root.
func (t *Tree[T]) Walk() []Entry[T] {
	root := make(pcoord.Coord, t.dim)
	for i := range root {
		root[i] = rootID
	}
	var out []Entry[T]
	walkNode(t.root, root, &out)

	return out
}

// ForEach invokes fn for every leaf in deterministic pre-order, without
// materializing the full entry slice.
func (t *Tree[T]) ForEach(fn func(coord pcoord.Coord, value T)) {
	root := make(pcoord.Coord, t.dim)
	for i := range root {
		root[i] = rootID
	}
	forEachNode(t.root, root, fn)
}

func walkNode[T any](n *node[T], coord pcoord.Coord, out *[]Entry[T]) {
	switch n.kind {
	case kindLeaf:
		*out = append(*out, Entry[T]{Coord: coord, Value: n.value})
	case kindInterior:
		children := coord.ChildCoords()
		for idx, child := range n.children {
			walkNode(child, children[idx], out)
		}
	}
}

func forEachNode[T any](n *node[T], coord pcoord.Coord, fn func(pcoord.Coord, T)) {
	switch n.kind {
	case kindLeaf:
		fn(coord, n.value)
	case kindInterior:
		children := coord.ChildCoords()
		for idx, child := range n.children {
			forEachNode(child, children[idx], fn)
		}
	}
}

// LeavesUnder returns every leaf at anchor or strictly below it in the
// tree: if anchor itself names a Leaf, that single entry; if it names an
// Interior (the tree was refined further by some other insertion), every
// leaf in that subtree, each with its reconstructed absolute coordinate.
// Returns nil if nothing was ever inserted under anchor.
func (t *Tree[T]) LeavesUnder(anchor pcoord.Coord) []Entry[T] {
	var out []Entry[T]
	root := make(pcoord.Coord, t.dim)
	for i := range root {
		root[i] = rootID
	}
	collectUnder(t.root, anchor.Clone(), root, &out)

	return out
}

func collectUnder[T any](n *node[T], cur pcoord.Coord, abs pcoord.Coord, out *[]Entry[T]) {
	switch n.kind {
	case kindEmpty:
		return
	case kindLeaf:
		// A coarser Leaf that merely contains anchor is not at or below it.
		if cur.IsRoot() {
			*out = append(*out, Entry[T]{Coord: abs, Value: n.value})
		}
	case kindInterior:
		if cur.IsRoot() {
			// anchor fully matched; collect every leaf refined below it.
			walkNode(n, abs, out)

			return
		}
		idx := cur.TreeIndex()
		children := abs.ChildCoords()
		collectUnder(n.children[idx], cur.IDAtChild(), children[idx], out)
	}
}

// IsEmpty reports whether the tree holds no leaves at all.
func (t *Tree[T]) IsEmpty() bool {
	return t.root.kind == kindEmpty
}
