// Package tetra enumerates (volume, face, edge, corner) tetrahedra: the
// simplicial complex joining each volume cell's dual to its bordering
// face duals, each face dual to its bordering edge duals, and each edge
// dual to the two cell-boundary corners that close it off.
//
// ForEach streams tetrahedra to a callback rather than materializing the
// full complex as a slice: for a dense adaptive grid the complex can be
// large and the marching tetrahedra pass (the only consumer) processes
// one tetra at a time anyway, in the same callback-driven style
// bfs.BFS's OnVisit hook drives traversal without collecting every
// visited vertex up front.
package tetra
