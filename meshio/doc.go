// Package meshio adapts isogrid.MeshBuffers to external mesh formats, the
// way converterts adapts core.Graph to external graph representations: a
// small, separately-tested package alongside the core that nothing in the
// core itself depends on.
package meshio
