package meshio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/isogrid"
)

// WriteOBJ writes mesh as a Wavefront OBJ: one "v x y z" line per vertex,
// then one "f i j k" line per triangle, indices converted from 0-based
// (isogrid.MeshBuffers) to OBJ's 1-based convention.
func WriteOBJ(w io.Writer, mesh isogrid.MeshBuffers) error {
	for _, v := range mesh.Verts {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("meshio: write vertex: %w", err)
		}
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", a, b, c); err != nil {
			return fmt.Errorf("meshio: write face: %w", err)
		}
	}

	return nil
}
