// SPDX-License-Identifier: MIT

package bmesh

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/flags"
	"github.com/katalvlaran/lvmesh/traverse"
)

// NextEdgeLoop returns the loop after l around its edge.
func (m *Mesh) NextEdgeLoop(l int) int { return m.Loops.Get(l).NextEdgeLoop }

// NextFaceLoop returns the loop after l around its face.
func (m *Mesh) NextFaceLoop(l int) int { return m.Loops.Get(l).NextFaceLoop }

// NextEdgeAround returns the edge after e in the disk cycle of v, or None
// when v is not an endpoint of e.
func (m *Mesh) NextEdgeAround(e, v int) int {
	edge := m.Edges.Get(e)
	side := edge.Side(v)
	if side < 0 {
		return None
	}
	return edge.Disk[side].Next
}

// FaceLoops returns the loops bounding face f in winding order.
func (m *Mesh) FaceLoops(f int) *traverse.Cycle[int] {
	return traverse.FaceLoop(m, m.Faces.Get(f).Loop)
}

// Radial returns the loops sharing edge e.
func (m *Mesh) Radial(e int) *traverse.Cycle[int] {
	return traverse.EdgeLoop(m, m.Edges.Get(e).Loop)
}

// DiskEdges returns the edges around vertex v.
func (m *Mesh) DiskEdges(v int) *traverse.Cycle[int] {
	return traverse.VertexEdgeRing(m, v, m.Vertices.Get(v).Edge)
}

// EdgeFaces returns the faces using edge e, one per loop.
func (m *Mesh) EdgeFaces(e int) traverse.Iterator[int] {
	return traverse.Map[int, int](m.Radial(e), func(l int) int {
		return m.Loops.Get(l).Face
	})
}

// FaceVertices returns the corners of face f in winding order.
func (m *Mesh) FaceVertices(f int) []int {
	out := make([]int, 0, m.Faces.Get(f).Len)
	for l := range traverse.All[int](m.FaceLoops(f)) {
		out = append(out, m.Loops.Get(l).Vert)
	}
	return out
}

// RadialLen returns the number of loops on edge e.
func (m *Mesh) RadialLen(e int) int {
	n := 0
	for range traverse.All[int](m.Radial(e)) {
		n++
	}
	return n
}

// Degree returns the number of edges around vertex v.
func (m *Mesh) Degree(v int) int {
	n := 0
	for range traverse.All[int](m.DiskEdges(v)) {
		n++
	}
	return n
}

// Validate checks every cycle for symmetric links and consistent
// membership, and every wire flag against the edge's loop.
// Complexity: O(V + E + L).
func (m *Mesh) Validate() error {
	for slot, v := range m.Vertices.All() {
		if v.Edge != None && (!m.Edges.Live(v.Edge) || m.Edges.Get(v.Edge).Side(slot) < 0) {
			return fmt.Errorf("%w: vertex %d edge is not incident", ErrCorrupt, slot)
		}
	}
	for slot, e := range m.Edges.All() {
		if e.Flags().Get(FlagWire) != (e.Loop == None) {
			return fmt.Errorf("%w: edge %d wire flag mismatch", ErrCorrupt, slot)
		}
		for side, v := range [2]int{e.V1, e.V2} {
			link := e.Disk[side]
			if !m.Edges.Live(link.Next) || !m.Edges.Live(link.Prev) {
				return fmt.Errorf("%w: edge %d dangling disk link at %d", ErrCorrupt, slot, v)
			}
			next := m.Edges.Get(link.Next)
			if next.Side(v) < 0 || next.Disk[next.Side(v)].Prev != slot {
				return fmt.Errorf("%w: edge %d disk cycle of %d is not symmetric", ErrCorrupt, slot, v)
			}
		}
		if e.Loop != None && (!m.Loops.Live(e.Loop) || m.Loops.Get(e.Loop).Edge != slot) {
			return fmt.Errorf("%w: edge %d loop lies elsewhere", ErrCorrupt, slot)
		}
	}
	for slot, l := range m.Loops.All() {
		if !m.Loops.Live(l.NextEdgeLoop) || !m.Loops.Live(l.NextFaceLoop) {
			return fmt.Errorf("%w: loop %d has dangling links", ErrCorrupt, slot)
		}
		radial, next := m.Loops.Get(l.NextEdgeLoop), m.Loops.Get(l.NextFaceLoop)
		if radial.PrevEdgeLoop != slot || radial.Edge != l.Edge {
			return fmt.Errorf("%w: loop %d edge loop is not symmetric", ErrCorrupt, slot)
		}
		if next.PrevFaceLoop != slot || next.Face != l.Face {
			return fmt.Errorf("%w: loop %d face loop is not symmetric", ErrCorrupt, slot)
		}
		edge := m.Edges.Get(l.Edge)
		if edge.Side(l.Vert) < 0 || edge.Other(l.Vert) != next.Vert {
			return fmt.Errorf("%w: loop %d edge does not join its corner to the next", ErrCorrupt, slot)
		}
	}
	for slot, f := range m.Faces.All() {
		if !m.Loops.Live(f.Loop) || m.Loops.Get(f.Loop).Face != slot {
			return fmt.Errorf("%w: face %d loop lies elsewhere", ErrCorrupt, slot)
		}
		if n := len(m.FaceVertices(slot)); n != f.Len {
			return fmt.Errorf("%w: face %d has %d loops, want %d", ErrCorrupt, slot, n, f.Len)
		}
	}
	return nil
}

// FaceGraph is a face adjacency view for the bfs package: two faces are
// adjacent when they share an edge, however many faces that edge carries.
type FaceGraph struct{ m *Mesh }

// FaceGraph returns the face adjacency view of m.
func (m *Mesh) FaceGraph() FaceGraph { return FaceGraph{m: m} }

// Slots returns the face slot count.
func (g FaceGraph) Slots() int { return g.m.Faces.Slots() }

// Live reports whether id is a live face.
func (g FaceGraph) Live(id int) bool { return g.m.Faces.Live(id) }

// Neighbors returns the distinct faces sharing an edge with id.
func (g FaceGraph) Neighbors(id int) []int {
	var out []int
	for l := range traverse.All[int](g.m.FaceLoops(id)) {
		for r := range traverse.All[int](traverse.EdgeLoop(g.m, l)) {
			if f := g.m.Loops.Get(r).Face; f != id && !slices.Contains(out, f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// Flags returns the flag set of face id.
func (g FaceGraph) Flags(id int) *flags.Set { return g.m.Faces.Get(id).Flags() }

// VertexGraph is a vertex adjacency view for the bfs package, read straight
// from the disk cycles. Wire edges connect vertices too.
type VertexGraph struct{ m *Mesh }

// VertexGraph returns the vertex adjacency view of m.
func (m *Mesh) VertexGraph() VertexGraph { return VertexGraph{m: m} }

// Slots returns the vertex slot count.
func (g VertexGraph) Slots() int { return g.m.Vertices.Slots() }

// Live reports whether id is a live vertex.
func (g VertexGraph) Live(id int) bool { return g.m.Vertices.Live(id) }

// Neighbors returns the vertices across each edge of id, in disk order.
func (g VertexGraph) Neighbors(id int) []int {
	var out []int
	for e := range traverse.All[int](g.m.DiskEdges(id)) {
		out = append(out, g.m.Edges.Get(e).Other(id))
	}
	return out
}

// Flags returns the flag set of vertex id.
func (g VertexGraph) Flags(id int) *flags.Set { return g.m.Vertices.Get(id).Flags() }
