// SPDX-License-Identifier: MIT

package bmesh

import (
	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/flags"
)

// None is the empty reference.
const None = element.NoIndex

// FlagWire tags edges that bound no face.
const FlagWire flags.Bit = 0

// Vertex is a mesh corner position, referenced through its attribute handle.
type Vertex struct {
	element.Base

	// Attr is the attribute handle (source-buffer index).
	Attr int
	// Edge is any edge of the vertex disk cycle, None when isolated.
	Edge int
}

// NewVertex returns an unallocated vertex.
func NewVertex() *Vertex {
	return &Vertex{Base: element.NewBase(), Attr: None, Edge: None}
}

// Kind returns element.BMVertex.
func (*Vertex) Kind() element.Kind { return element.BMVertex }

// Release clears the attribute and edge references.
func (v *Vertex) Release() { v.Attr, v.Edge = None, None }

// Reset releases, then blanks index and flags.
func (v *Vertex) Reset() {
	v.Release()
	v.Blank()
}

// DiskLink is an edge's position in the disk cycle of one endpoint.
type DiskLink struct {
	Prev, Next int
}

// Edge joins V1 and V2. Disk[0] links it around V1, Disk[1] around V2.
type Edge struct {
	element.Base
	V1, V2 int
	Loop   int
	Disk   [2]DiskLink
}

// NewEdge returns an unallocated edge.
func NewEdge() *Edge {
	e := &Edge{Base: element.NewBase()}
	e.Release()
	return e
}

// Kind returns element.BMEdge.
func (*Edge) Kind() element.Kind { return element.BMEdge }

// Release clears endpoints, loop and disk links.
func (e *Edge) Release() {
	e.V1, e.V2, e.Loop = None, None, None
	e.Disk = [2]DiskLink{{None, None}, {None, None}}
}

// Reset releases, then blanks index and flags.
func (e *Edge) Reset() {
	e.Release()
	e.Blank()
}

// Side returns 0 when v is V1, 1 when v is V2 and -1 otherwise.
func (e *Edge) Side(v int) int {
	switch v {
	case e.V1:
		return 0
	case e.V2:
		return 1
	}
	return -1
}

// Other returns the endpoint opposite v, or None if v is not an endpoint.
func (e *Edge) Other(v int) int {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	}
	return None
}

// Loop is one corner of a face: it starts at Vert and runs along Edge.
type Loop struct {
	element.Base
	Vert, Edge, Face int

	NextEdgeLoop, PrevEdgeLoop int
	NextFaceLoop, PrevFaceLoop int
}

// NewLoop returns an unallocated loop.
func NewLoop() *Loop {
	l := &Loop{Base: element.NewBase()}
	l.Release()
	return l
}

// Kind returns element.BMLoop.
func (*Loop) Kind() element.Kind { return element.BMLoop }

// Release clears every reference.
func (l *Loop) Release() {
	l.Vert, l.Edge, l.Face = None, None, None
	l.NextEdgeLoop, l.PrevEdgeLoop = None, None
	l.NextFaceLoop, l.PrevFaceLoop = None, None
}

// Reset releases, then blanks index and flags.
func (l *Loop) Reset() {
	l.Release()
	l.Blank()
}

// Face is a polygon bounded by Len loops.
type Face struct {
	element.Base
	Loop int
	Len  int
}

// NewFace returns an unallocated face.
func NewFace() *Face {
	return &Face{Base: element.NewBase(), Loop: None}
}

// Kind returns element.BMFace.
func (*Face) Kind() element.Kind { return element.BMFace }

// Release clears the loop reference.
func (f *Face) Release() { f.Loop, f.Len = None, 0 }

// Reset releases, then blanks index and flags.
func (f *Face) Reset() {
	f.Release()
	f.Blank()
}
