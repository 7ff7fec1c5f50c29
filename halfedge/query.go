// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/flags"
	"github.com/katalvlaran/lvmesh/traverse"
)

// Dest returns the vertex half-edge e points to.
func (m *Mesh) Dest(e int) int {
	return m.Edges.Get(m.Edges.Get(e).Next).Origin
}

// Prev returns the half-edge whose Next is e.
// Complexity: O(face length).
func (m *Mesh) Prev(e int) int {
	cur := e
	for {
		n := m.Edges.Get(cur).Next
		if n == e || n == None {
			return cur
		}
		cur = n
	}
}

// IsBoundary reports whether half-edge e bounds no face.
func (m *Mesh) IsBoundary(e int) bool {
	return m.Edges.Get(e).Face == None
}

// IsBoundaryVertex reports whether any outgoing half-edge of v is a boundary.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	for e := range traverse.All[int](m.Outgoing(v)) {
		if m.IsBoundary(e) {
			return true
		}
	}
	return false
}

// NextFaceLoop returns the half-edge after e around its face.
func (m *Mesh) NextFaceLoop(e int) int { return m.Edges.Get(e).Next }

// NextEdgeLoop returns the opposite half-edge, so the edge loop of e is
// {e, pair}.
func (m *Mesh) NextEdgeLoop(e int) int { return m.Edges.Get(e).Pair }

// NextEdgeAround returns the outgoing half-edge of v following e. If e
// arrives at v rather than leaving it, its pair is used as the pivot.
func (m *Mesh) NextEdgeAround(e, v int) int {
	he := m.Edges.Get(e)
	if he.Origin != v {
		e = he.Pair
		he = m.Edges.Get(e)
	}
	return m.Edges.Get(he.Pair).Next
}

// FaceCycle returns the half-edges bounding face f.
func (m *Mesh) FaceCycle(f int) *traverse.Cycle[int] {
	return traverse.FaceLoop(m, m.Faces.Get(f).Edge)
}

// Outgoing returns the outgoing half-edges of v.
func (m *Mesh) Outgoing(v int) *traverse.Cycle[int] {
	return traverse.VertexEdgeRing(m, v, m.Vertices.Get(v).Out)
}

// VertexFaces returns the faces around v, None where a boundary half-edge
// leaves v.
func (m *Mesh) VertexFaces(v int) traverse.Iterator[int] {
	return traverse.Map[int, int](m.Outgoing(v), func(e int) int {
		return m.Edges.Get(e).Face
	})
}

// FaceVertices returns the corners of face f in winding order.
func (m *Mesh) FaceVertices(f int) []int {
	var out []int
	for e := range traverse.All[int](m.FaceCycle(f)) {
		out = append(out, m.Edges.Get(e).Origin)
	}
	return out
}

// Degree returns the number of outgoing half-edges of v.
func (m *Mesh) Degree(v int) int {
	n := 0
	for range traverse.All[int](m.Outgoing(v)) {
		n++
	}
	return n
}

// Validate checks the structural invariants of every live half-edge:
// pair symmetry, distinct pair origins, next continuity and face agreement.
// Complexity: O(E).
func (m *Mesh) Validate() error {
	for slot, e := range m.Edges.All() {
		if !m.Edges.Live(e.Pair) || !m.Edges.Live(e.Next) {
			return fmt.Errorf("%w: half-edge %d has dangling pair/next", ErrCorrupt, slot)
		}
		p := m.Edges.Get(e.Pair)
		if p.Pair != slot {
			return fmt.Errorf("%w: half-edge %d pair is not symmetric", ErrCorrupt, slot)
		}
		if p.Origin != m.Dest(slot) {
			return fmt.Errorf("%w: half-edge %d pair does not start at its end", ErrCorrupt, slot)
		}
		if n := m.Edges.Get(e.Next); n.Face != e.Face {
			return fmt.Errorf("%w: half-edge %d next leaves its face", ErrCorrupt, slot)
		}
		if e.Face != None && !m.Faces.Live(e.Face) {
			return fmt.Errorf("%w: half-edge %d face %d is dead", ErrCorrupt, slot, e.Face)
		}
		if e.Flags().Get(FlagBoundary) != (e.Face == None) {
			return fmt.Errorf("%w: half-edge %d boundary flag mismatch", ErrCorrupt, slot)
		}
	}
	for slot, v := range m.Vertices.All() {
		if v.Out != None && m.Edges.Get(v.Out).Origin != slot {
			return fmt.Errorf("%w: vertex %d outgoing half-edge starts elsewhere", ErrCorrupt, slot)
		}
	}
	return nil
}

// FaceGraph is a face adjacency view for the bfs package: two faces are
// adjacent when they share an edge.
type FaceGraph struct{ m *Mesh }

// FaceGraph returns the face adjacency view of m.
func (m *Mesh) FaceGraph() FaceGraph { return FaceGraph{m: m} }

// Slots returns the face slot count.
func (g FaceGraph) Slots() int { return g.m.Faces.Slots() }

// Live reports whether id is a live face.
func (g FaceGraph) Live(id int) bool { return g.m.Faces.Live(id) }

// Neighbors returns the faces across each edge of id, in winding order.
func (g FaceGraph) Neighbors(id int) []int {
	var out []int
	for e := range traverse.All[int](g.m.FaceCycle(id)) {
		if f := g.m.Edges.Get(g.m.Edges.Get(e).Pair).Face; f != None {
			out = append(out, f)
		}
	}
	return out
}

// Flags returns the flag set of face id.
func (g FaceGraph) Flags(id int) *flags.Set { return g.m.Faces.Get(id).Flags() }
