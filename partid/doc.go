// Package partid implements the bit-exact fixed-point algebra over binary
// subdivisions of the unit interval [0,1] that the rest of this module's
// spatial partition is built on.
//
// An ID is a 63-bit fixed-point unsigned integer identifying a dyadic
// segment of [0,1]. The root ID, 1<<62, spans the whole interval; each
// successive bit toward the low end of the value halves the segment. For a
// non-zero ID v, t = TrailingZeros(v) fixes the depth (62 - t): the segment spans
// [v-2^t, v+2^t] / 2^63, centered at v/2^63.
//
// Parent and child are mutual inverses on every non-root ID:
//
//	HighParent(LowChild(v))  == v
//	LowParent(HighChild(v))  == v
//
// No operation in this package can overflow: depth is bounded by 62 (the
// maximum octree/quadtree/binary-tree depth the rest of the module allows),
// and every derived ID stays inside (0, 1<<63), except the low/high parent
// of the root, which are the boundary values 0 and 1<<63.
package partid
