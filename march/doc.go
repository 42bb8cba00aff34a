// Package march implements marching tetrahedra: for each tetra streamed
// by tetra.ForEach, classify which of its four vertices
// are "inside" (field value < 0) and emit zero, one, or two triangles on
// the crossing edges, deduplicating emitted vertices by the crossing
// edge's logical identity so shared edges across tetrahedra produce a
// single shared vertex in the output buffer.
package march
