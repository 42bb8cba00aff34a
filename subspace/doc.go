// Package subspace implements the three Subspace variants a volume cell's
// faces and edges live in: R3Space (the whole box, identity), R2Space (an
// axis-aligned face plane),
// and R1Space (an axis-aligned edge line). Each projects/unprojects
// coordinates and vectors between the 3-box and the lower-dimensional
// frame a face or edge cell lives in.
//
// Global axis indices are fixed throughout this module as 0=X, 1=Y, 2=Z;
// pcoord.Coord and gonum's r3.Vec both follow that order.
//
// R2Space and R1Space are plain comparable structs (an enum axis plus one
// or two partid.ID slabs), so they key maps directly — the same instinct
// behind gridgraph's formatted string vertex IDs, simplified here because
// the slab fields are already small fixed-size comparable values.
package subspace
