// SPDX-License-Identifier: MIT

package ifs

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
	Edges      int // live edges
	Faces      int // live faces
	Welded     int // source indices merged into an existing vertex
	Degenerate int // input triangles or segments repeating a vertex, skipped
	Duplicate  int // input triangles spanning an existing face, skipped
	Loose      int // edges from line segments that bound no face
}

// Mesh is an indexed face set. Elements live in pools; references are pool
// slots. A Mesh is owned by one goroutine at a time.
type Mesh struct {
	Vertices *element.Pool[*Vertex]
	Edges    *element.Pool[*Edge]
	Faces    *element.Pool[*Face]

	edgeAt map[Key]int
	faceAt map[Key]int
	stats  Stats
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertices: element.NewPool(NewVertex),
		Edges:    element.NewPool(NewEdge),
		Faces:    element.NewPool(NewFace),
		edgeAt:   make(map[Key]int),
		faceAt:   make(map[Key]int),
	}
}

// Build constructs an indexed face set from buf.
//
// Stages:
//   - resolve options and validate buf;
//   - weld source vertices by exact position (unless disabled);
//   - add one face per non-degenerate, non-repeated triangle, with its edges;
//   - add loose edges for line segments.
//
// Complexity: O(V + T + L) average for V positions, T triangles, L lines.
func Build(buf *buffer.Buffer, opts ...meshopt.Option) (*Mesh, error) {
	o, err := meshopt.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("ifs: %w", err)
	}

	m := New()
	w := dedup.NewWelder(buf.Positions, o.Weld, m.AddVertex, func(v *Vertex) int { return v.Attr })

	for t, tri := range buf.Triangles() {
		a := w.Vertex(tri[0]).Index()
		b := w.Vertex(tri[1]).Index()
		c := w.Vertex(tri[2]).Index()
		_, created, err := m.AddFace(a, b, c)
		switch {
		case err != nil:
			m.stats.Degenerate++
			o.Logger.Warn("ifs: skipping degenerate triangle", "triangle", t, "vertices", []int{a, b, c})
		case !created:
			m.stats.Duplicate++
			o.Logger.Warn("ifs: skipping repeated triangle", "triangle", t)
		}
	}
	for s, seg := range buf.Segments() {
		a := w.Vertex(seg[0]).Index()
		b := w.Vertex(seg[1]).Index()
		e, created, err := m.AddEdge(a, b)
		if err != nil {
			m.stats.Degenerate++
			o.Logger.Warn("ifs: skipping degenerate segment", "segment", s, "vertex", a)
			continue
		}
		if created {
			e.Flags().Set(FlagLoose, true)
		}
	}
	m.stats.Welded = w.Merged()

	st := m.Stats()
	o.Logger.Debug("ifs: built mesh",
		"vertices", st.Vertices, "edges", st.Edges, "faces", st.Faces,
		"welded", st.Welded, "degenerate", st.Degenerate, "duplicate", st.Duplicate)

	return m, nil
}

// Stats returns current element counts plus the counters of the last Build.
func (m *Mesh) Stats() Stats {
	st := m.stats
	st.Vertices = m.Vertices.Len()
	st.Edges = m.Edges.Len()
	st.Faces = m.Faces.Len()
	st.Loose = 0
	for _, e := range m.Edges.All() {
		if e.Flags().Get(FlagLoose) {
			st.Loose++
		}
	}
	return st
}

// AddVertex places a new vertex carrying attribute handle attr.
func (m *Mesh) AddVertex(attr int) *Vertex {
	v := m.Vertices.Acquire()
	v.Attr = attr
	return v
}

// AddEdge returns the edge joining a and b, creating it if needed.
// Returns ErrDegenerate when a == b and ErrNotFound for dead vertices.
func (m *Mesh) AddEdge(a, b int) (*Edge, bool, error) {
	if a == b {
		return nil, false, fmt.Errorf("%w: edge (%d,%d)", ErrDegenerate, a, b)
	}
	if !m.Vertices.Live(a) || !m.Vertices.Live(b) {
		return nil, false, fmt.Errorf("%w: edge (%d,%d)", ErrNotFound, a, b)
	}
	k := EdgeKey(a, b)
	if slot, ok := m.edgeAt[k]; ok {
		return m.Edges.Get(slot), false, nil
	}
	e := m.Edges.Acquire()
	e.V0, e.V1 = a, b
	m.edgeAt[k] = e.Index()

	return e, true, nil
}

// AddFace returns the face spanning a, b and c, creating it and its missing
// edges if needed. Edges bounding a face lose FlagLoose.
func (m *Mesh) AddFace(a, b, c int) (*Face, bool, error) {
	if a == b || b == c || a == c {
		return nil, false, fmt.Errorf("%w: face (%d,%d,%d)", ErrDegenerate, a, b, c)
	}
	if !m.Vertices.Live(a) || !m.Vertices.Live(b) || !m.Vertices.Live(c) {
		return nil, false, fmt.Errorf("%w: face (%d,%d,%d)", ErrNotFound, a, b, c)
	}
	k := FaceKey(a, b, c)
	if slot, ok := m.faceAt[k]; ok {
		return m.Faces.Get(slot), false, nil
	}
	for _, side := range [3][2]int{{a, b}, {b, c}, {c, a}} {
		e, _, err := m.AddEdge(side[0], side[1])
		if err != nil {
			return nil, false, err
		}
		e.Flags().Set(FlagLoose, false)
	}
	f := m.Faces.Acquire()
	f.I0, f.I1, f.I2 = a, b, c
	m.faceAt[k] = f.Index()

	return f, true, nil
}

// FindEdge returns the edge joining a and b.
func (m *Mesh) FindEdge(a, b int) (*Edge, bool) {
	slot, ok := m.edgeAt[EdgeKey(a, b)]
	if !ok {
		return nil, false
	}
	return m.Edges.Get(slot), true
}

// FindFace returns the face spanning a, b and c in any order.
func (m *Mesh) FindFace(a, b, c int) (*Face, bool) {
	slot, ok := m.faceAt[FaceKey(a, b, c)]
	if !ok {
		return nil, false
	}
	return m.Faces.Get(slot), true
}

// FaceEdges returns the three edges of face f in corner order.
func (m *Mesh) FaceEdges(f *Face) [3]*Edge {
	var out [3]*Edge
	for i, side := range [3][2]int{{f.I0, f.I1}, {f.I1, f.I2}, {f.I2, f.I0}} {
		out[i], _ = m.FindEdge(side[0], side[1])
	}
	return out
}
