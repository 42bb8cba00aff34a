package march

import "gonum.org/v1/gonum/spatial/r3"

// MeshBuffers is the final output of the pipeline: world-space vertices
// and a flat triangle-index buffer, indices taken in triples.
type MeshBuffers struct {
	Verts   []r3.Vec
	Indices []int
}

// builder accumulates MeshBuffers while deduplicating vertices by their
// crossing edge's logical identity.
type builder struct {
	verts  []r3.Vec
	tris   []int
	lookup map[string]int
}

func newBuilder() *builder {
	return &builder{lookup: make(map[string]int)}
}

func (b *builder) vertexFor(key string, pos r3.Vec) int {
	if idx, ok := b.lookup[key]; ok {
		return idx
	}
	idx := len(b.verts)
	b.verts = append(b.verts, pos)
	b.lookup[key] = idx

	return idx
}

func (b *builder) triangle(a, c, d int) {
	b.tris = append(b.tris, a, c, d)
}

func (b *builder) buffers() MeshBuffers {
	return MeshBuffers{Verts: b.verts, Indices: b.tris}
}
