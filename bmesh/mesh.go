// SPDX-License-Identifier: MIT

package bmesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/dedup"
	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/meshopt"
)

// Stats summarizes a mesh and its last Build.
type Stats struct {
	Vertices    int // live vertices
	Edges       int // live edges
	Loops       int // live loops
	Faces       int // live faces
	Wire        int // edges without loops
	NonManifold int // edges shared by more than two loops
	Welded      int // source indices merged into an existing vertex
	Degenerate  int // triangles repeating a vertex, skipped
}

// Mesh is a loop-based boundary representation. A Mesh is owned by one
// goroutine at a time.
type Mesh struct {
	Vertices *element.Pool[*Vertex]
	Edges    *element.Pool[*Edge]
	Loops    *element.Pool[*Loop]
	Faces    *element.Pool[*Face]

	stats Stats
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertices: element.NewPool(NewVertex),
		Edges:    element.NewPool(NewEdge),
		Loops:    element.NewPool(NewLoop),
		Faces:    element.NewPool(NewFace),
	}
}

// Build constructs a boundary representation from buf.
//
// Source vertices are welded unless welding is disabled, triangles become
// faces (degenerate ones are skipped with a warning) and loose segments
// become wire edges. Edges shared by more than two triangles are kept.
// Complexity: O(V + T + L) times the average vertex degree.
func Build(buf *buffer.Buffer, opts ...meshopt.Option) (*Mesh, error) {
	o, err := meshopt.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("bmesh: %w", err)
	}

	m := New()
	w := dedup.NewWelder(buf.Positions, o.Weld, m.AddVertex, func(v *Vertex) int { return v.Attr })

	for t, tri := range buf.Triangles() {
		vs := []int{w.Vertex(tri[0]).Index(), w.Vertex(tri[1]).Index(), w.Vertex(tri[2]).Index()}
		if _, err := m.AddFace(vs...); err != nil {
			if !errors.Is(err, ErrDegenerate) {
				return nil, fmt.Errorf("triangle %d: %w", t, err)
			}
			m.stats.Degenerate++
			o.Logger.Warn("bmesh: skipping degenerate triangle", "triangle", t, "vertices", vs)
		}
	}
	for s, seg := range buf.Segments() {
		a, b := w.Vertex(seg[0]).Index(), w.Vertex(seg[1]).Index()
		if _, _, err := m.AddEdge(a, b); err != nil {
			if !errors.Is(err, ErrDegenerate) {
				return nil, fmt.Errorf("segment %d: %w", s, err)
			}
			m.stats.Degenerate++
			o.Logger.Warn("bmesh: skipping degenerate segment", "segment", s, "vertex", a)
		}
	}
	m.stats.Welded = w.Merged()

	st := m.Stats()
	o.Logger.Debug("bmesh: built mesh",
		"vertices", st.Vertices, "edges", st.Edges, "faces", st.Faces,
		"wire", st.Wire, "non_manifold", st.NonManifold, "welded", st.Welded)

	return m, nil
}

// Stats returns current element counts plus the counters of the last Build.
// Complexity: O(L) for the wire and non-manifold counts.
func (m *Mesh) Stats() Stats {
	st := m.stats
	st.Vertices = m.Vertices.Len()
	st.Edges = m.Edges.Len()
	st.Loops = m.Loops.Len()
	st.Faces = m.Faces.Len()
	st.Wire, st.NonManifold = 0, 0
	for slot, e := range m.Edges.All() {
		switch n := m.RadialLen(slot); {
		case e.Loop == None:
			st.Wire++
		case n > 2:
			st.NonManifold++
		}
	}
	return st
}

// AddVertex places an isolated vertex carrying attr.
func (m *Mesh) AddVertex(attr int) *Vertex {
	v := m.Vertices.Acquire()
	v.Attr = attr
	return v
}

// AddEdge returns the edge joining a and b, creating a wire edge when none
// exists. created reports whether a new edge was placed.
func (m *Mesh) AddEdge(a, b int) (e *Edge, created bool, err error) {
	if !m.Vertices.Live(a) || !m.Vertices.Live(b) {
		return nil, false, fmt.Errorf("%w: edge %d-%d", ErrNotFound, a, b)
	}
	if a == b {
		return nil, false, fmt.Errorf("%w: edge %d-%d", ErrDegenerate, a, b)
	}
	if id := m.FindEdge(a, b); id != None {
		return m.Edges.Get(id), false, nil
	}

	e = m.Edges.Acquire()
	e.V1, e.V2 = a, b
	e.Flags().Set(FlagWire, true)
	m.diskInsert(e.Index(), a)
	m.diskInsert(e.Index(), b)

	return e, true, nil
}

// FindEdge returns the edge joining a and b, or None.
// Complexity: O(degree(a)).
func (m *Mesh) FindEdge(a, b int) int {
	if !m.Vertices.Live(a) {
		return None
	}
	start := m.Vertices.Get(a).Edge
	if start == None {
		return None
	}
	for e := start; ; {
		if m.Edges.Get(e).Other(a) == b {
			return e
		}
		if e = m.NextEdgeAround(e, a); e == start || e == None {
			return None
		}
	}
}

// AddFace places a face over the corners vs, in winding order, creating
// missing edges. Returns ErrDegenerate for fewer than three corners or a
// repeated corner, and ErrNotFound for a dead vertex.
// Complexity: O(n) times the average vertex degree.
func (m *Mesh) AddFace(vs ...int) (*Face, error) {
	if len(vs) < 3 {
		return nil, fmt.Errorf("%w: face with %d corners", ErrDegenerate, len(vs))
	}
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if !m.Vertices.Live(v) {
			return nil, fmt.Errorf("%w: vertex %d", ErrNotFound, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: face repeats vertex %d", ErrDegenerate, v)
		}
		seen[v] = struct{}{}
	}

	f := m.Faces.Acquire()
	f.Len = len(vs)
	prev := None
	for i, v := range vs {
		e, _, err := m.AddEdge(v, vs[(i+1)%len(vs)])
		if err != nil {
			return nil, err // unreachable after the checks above
		}
		l := m.Loops.Acquire()
		l.Vert, l.Edge, l.Face = v, e.Index(), f.Index()
		m.radialInsert(l.Index(), e.Index())

		if prev == None {
			f.Loop = l.Index()
			l.NextFaceLoop, l.PrevFaceLoop = l.Index(), l.Index()
		} else {
			first := m.Loops.Get(f.Loop)
			l.PrevFaceLoop, l.NextFaceLoop = prev, f.Loop
			m.Loops.Get(prev).NextFaceLoop = l.Index()
			first.PrevFaceLoop = l.Index()
		}
		prev = l.Index()
	}

	return f, nil
}

// disk returns the disk link of edge e around its endpoint v.
func (m *Mesh) disk(e, v int) *DiskLink {
	edge := m.Edges.Get(e)
	return &edge.Disk[edge.Side(v)]
}

// diskInsert links e into the disk cycle of v, after the vertex's edge.
func (m *Mesh) diskInsert(e, v int) {
	vert := m.Vertices.Get(v)
	link := m.disk(e, v)
	if vert.Edge == None {
		vert.Edge = e
		link.Prev, link.Next = e, e
		return
	}
	head := m.disk(vert.Edge, v)
	link.Prev, link.Next = vert.Edge, head.Next
	m.disk(head.Next, v).Prev = e
	head.Next = e
}

// diskRemove unlinks e from the disk cycle of v.
func (m *Mesh) diskRemove(e, v int) {
	vert := m.Vertices.Get(v)
	link := m.disk(e, v)
	if link.Next == e {
		vert.Edge = None
	} else {
		m.disk(link.Prev, v).Next = link.Next
		m.disk(link.Next, v).Prev = link.Prev
		if vert.Edge == e {
			vert.Edge = link.Next
		}
	}
	link.Prev, link.Next = None, None
}

// radialInsert links loop l into the edge loop of e.
func (m *Mesh) radialInsert(l, e int) {
	edge, loop := m.Edges.Get(e), m.Loops.Get(l)
	if edge.Loop == None {
		edge.Loop = l
		loop.NextEdgeLoop, loop.PrevEdgeLoop = l, l
		edge.Flags().Set(FlagWire, false)
		return
	}
	head := m.Loops.Get(edge.Loop)
	loop.PrevEdgeLoop, loop.NextEdgeLoop = edge.Loop, head.NextEdgeLoop
	m.Loops.Get(head.NextEdgeLoop).PrevEdgeLoop = l
	head.NextEdgeLoop = l
}

// radialRemove unlinks loop l from the edge loop of its edge.
func (m *Mesh) radialRemove(l int) {
	loop := m.Loops.Get(l)
	edge := m.Edges.Get(loop.Edge)
	if loop.NextEdgeLoop == l {
		edge.Loop = None
		edge.Flags().Set(FlagWire, true)
	} else {
		m.Loops.Get(loop.PrevEdgeLoop).NextEdgeLoop = loop.NextEdgeLoop
		m.Loops.Get(loop.NextEdgeLoop).PrevEdgeLoop = loop.PrevEdgeLoop
		if edge.Loop == l {
			edge.Loop = loop.NextEdgeLoop
		}
	}
	loop.NextEdgeLoop, loop.PrevEdgeLoop = None, None
}
