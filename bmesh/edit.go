// SPDX-License-Identifier: MIT

package bmesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/traverse"
)

// KillFace removes face f and its loops. Edges stay; an edge left without
// loops becomes a wire edge.
// Complexity: O(len(f)) plus the radial length of each edge.
func (m *Mesh) KillFace(f int) error {
	if !m.Faces.Live(f) {
		return fmt.Errorf("%w: face %d", ErrNotFound, f)
	}
	loops, err := traverse.Collect[int](m.FaceLoops(f))
	if err != nil {
		return err
	}
	for _, l := range loops {
		m.radialRemove(l)
		if err := m.Loops.Release(l); err != nil {
			return err
		}
	}
	return m.Faces.Release(f)
}

// KillEdge removes edge e together with every face using it.
func (m *Mesh) KillEdge(e int) error {
	if !m.Edges.Live(e) {
		return fmt.Errorf("%w: edge %d", ErrNotFound, e)
	}
	faces, err := traverse.Collect(m.EdgeFaces(e))
	if err != nil {
		return err
	}
	for _, f := range faces {
		if err := m.KillFace(f); err != nil {
			return err
		}
	}
	edge := m.Edges.Get(e)
	m.diskRemove(e, edge.V1)
	m.diskRemove(e, edge.V2)

	return m.Edges.Release(e)
}

// KillVertex removes vertex v together with its edges and their faces.
func (m *Mesh) KillVertex(v int) error {
	if !m.Vertices.Live(v) {
		return fmt.Errorf("%w: vertex %d", ErrNotFound, v)
	}
	edges, err := traverse.Collect[int](m.DiskEdges(v))
	if err != nil {
		return err
	}
	for _, e := range edges {
		if err := m.KillEdge(e); err != nil {
			return err
		}
	}
	return m.Vertices.Release(v)
}
