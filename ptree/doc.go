// Package ptree implements a sparse N-ary partition tree: a tree keyed by
// pcoord.Coord whose nodes are one of Empty, Interior (with 2^dim
// children), or Leaf(T). Only leaves carry a value.
//
// Tree is generic over its leaf value T; dimension is a runtime field
// (1<<dim children per Interior) rather than a type parameter, since Go
// has no const generics to parameterize arity by a dimension constant.
//
// Insertion policy:
//   - Descending past an existing Leaf node splits it into an Interior,
//     discarding its value, and continues.
//   - Reaching the target depth (the coordinate's root position) on an
//     Empty or Leaf node writes the new Leaf; on an Interior node the write
//     is silently dropped (Interior always wins over a coarser write).
//
// Prune collapses any Interior whose children are all Empty back to Empty,
// and is idempotent. Walk yields every leaf in a deterministic pre-order,
// reconstructing each leaf's absolute Coord from the root by descending
// through Coord.ChildCoords(), which enumerates children in the same
// mask order Insert uses to pick a child index.
package ptree
