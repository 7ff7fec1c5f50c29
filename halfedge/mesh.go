// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/dedup"
	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/meshopt"
)

// Stats summarizes one Build.
type Stats struct {
	Vertices   int // live vertices
	HalfEdges  int // live half-edges, boundary included
	Faces      int // live faces
	Boundary   int // boundary half-edges
	Welded     int // source indices merged into an existing vertex
	Degenerate int // triangles repeating a vertex, skipped
	Lines      int // loose segments, skipped
}

// Mesh is a half-edge graph. A Mesh is owned by one goroutine at a time.
type Mesh struct {
	Vertices *element.Pool[*Vertex]
	Edges    *element.Pool[*Edge]
	Faces    *element.Pool[*Face]

	stats Stats
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertices: element.NewPool(NewVertex),
		Edges:    element.NewPool(NewEdge),
		Faces:    element.NewPool(NewFace),
	}
}

type directed [2]int

// Build constructs a half-edge graph from buf.
//
// Stages:
//   - resolve options, validate buf, weld source vertices;
//   - per triangle: one face, three half-edges linked by Next, paired with
//     any opposite half-edge already present;
//   - close every unpaired half-edge with a boundary half-edge and link the
//     boundary cycles.
//
// Loose line segments have no half-edge form and are skipped with a warning.
// Returns ErrNonManifold when a directed edge would be created twice.
// Complexity: O(V + T) average.
func Build(buf *buffer.Buffer, opts ...meshopt.Option) (*Mesh, error) {
	o, err := meshopt.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("halfedge: %w", err)
	}

	m := New()
	w := dedup.NewWelder(buf.Positions, o.Weld, m.addVertex, func(v *Vertex) int { return v.Attr })
	half := make(map[directed]int, 3*buf.NumTriangles())

	for t, tri := range buf.Triangles() {
		vs := [3]int{w.Vertex(tri[0]).Index(), w.Vertex(tri[1]).Index(), w.Vertex(tri[2]).Index()}
		if vs[0] == vs[1] || vs[1] == vs[2] || vs[0] == vs[2] {
			m.stats.Degenerate++
			o.Logger.Warn("halfedge: skipping degenerate triangle", "triangle", t, "vertices", vs[:])
			continue
		}
		for i := range vs {
			if _, dup := half[directed{vs[i], vs[(i+1)%3]}]; dup {
				return nil, fmt.Errorf("%w: triangle %d repeats directed edge %d->%d",
					ErrNonManifold, t, vs[i], vs[(i+1)%3])
			}
		}
		m.addTriangle(vs, half)
	}
	if n := buf.NumLines(); n > 0 {
		m.stats.Lines = n
		o.Logger.Warn("halfedge: skipping loose segments", "count", n)
	}
	if err := m.closeBoundary(); err != nil {
		return nil, err
	}
	m.stats.Welded = w.Merged()

	st := m.Stats()
	o.Logger.Debug("halfedge: built mesh",
		"vertices", st.Vertices, "halfedges", st.HalfEdges, "faces", st.Faces,
		"boundary", st.Boundary, "welded", st.Welded)

	return m, nil
}

func (m *Mesh) addVertex(attr int) *Vertex {
	v := m.Vertices.Acquire()
	v.Attr = attr
	return v
}

// addTriangle links one face over vs and pairs its half-edges.
func (m *Mesh) addTriangle(vs [3]int, half map[directed]int) {
	f := m.Faces.Acquire()
	var es [3]*Edge
	for i := range es {
		es[i] = m.Edges.Acquire()
	}
	f.Edge = es[0].Index()

	for i, e := range es {
		from, to := vs[i], vs[(i+1)%3]
		e.Origin = from
		e.Face = f.Index()
		e.Next = es[(i+1)%3].Index()

		if v := m.Vertices.Get(from); v.Out == None {
			v.Out = e.Index()
		}
		half[directed{from, to}] = e.Index()
		if p, ok := half[directed{to, from}]; ok {
			e.Pair = p
			m.Edges.Get(p).Pair = e.Index()
		}
	}
}

// closeBoundary gives every unpaired half-edge a boundary pair and links the
// boundary half-edges into cycles.
func (m *Mesh) closeBoundary() error {
	var open []int
	for slot, e := range m.Edges.All() {
		if e.Pair == None {
			open = append(open, slot)
		}
	}

	bounds := make([]int, 0, len(open))
	for _, slot := range open {
		e := m.Edges.Get(slot)
		b := m.Edges.Acquire()
		b.Origin = m.Dest(slot)
		b.Pair = slot
		b.Flags().Set(FlagBoundary, true)
		e.Pair = b.Index()
		m.Vertices.Get(b.Origin).Out = b.Index()
		bounds = append(bounds, b.Index())
	}

	// b arrives at the origin of its pair; its successor is the boundary
	// half-edge reached by rotating through the interior fan at that vertex.
	limit := m.Edges.Slots()
	for _, slot := range bounds {
		cur := m.Edges.Get(slot).Pair
		for steps := 0; ; steps++ {
			if steps > limit {
				return fmt.Errorf("%w: open fan at vertex %d does not close", ErrNonManifold, m.Edges.Get(cur).Origin)
			}
			cand := m.Edges.Get(m.Prev(cur)).Pair
			if m.Edges.Get(cand).Face == None {
				m.Edges.Get(slot).Next = cand
				break
			}
			cur = cand
		}
	}
	m.stats.Boundary = len(bounds)

	return nil
}

// Stats returns current element counts plus the counters of the last Build.
func (m *Mesh) Stats() Stats {
	st := m.stats
	st.Vertices = m.Vertices.Len()
	st.HalfEdges = m.Edges.Len()
	st.Faces = m.Faces.Len()
	return st
}
