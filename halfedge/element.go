// SPDX-License-Identifier: MIT

package halfedge

import (
	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/flags"
)

// None is the empty reference.
const None = element.NoIndex

// FlagBoundary tags half-edges that bound no face.
const FlagBoundary flags.Bit = 0

// Vertex holds one outgoing half-edge.
type Vertex struct {
	element.Base

	// Attr is the attribute handle (source-buffer index).
	Attr int
	// Out is an outgoing half-edge; boundary vertices prefer a boundary one.
	Out int
}

// NewVertex returns an unallocated vertex.
func NewVertex() *Vertex {
	return &Vertex{Base: element.NewBase(), Attr: None, Out: None}
}

// Kind returns element.HEVertex.
func (*Vertex) Kind() element.Kind { return element.HEVertex }

// Release clears the attribute and outgoing references.
func (v *Vertex) Release() { v.Attr, v.Out = None, None }

// Reset releases, then blanks index and flags.
func (v *Vertex) Reset() {
	v.Release()
	v.Blank()
}

// Edge is one directed half of an edge.
type Edge struct {
	element.Base
	Origin int
	Face   int
	Next   int
	Pair   int
}

// NewEdge returns an unallocated half-edge.
func NewEdge() *Edge {
	return &Edge{Base: element.NewBase(), Origin: None, Face: None, Next: None, Pair: None}
}

// Kind returns element.HEEdge.
func (*Edge) Kind() element.Kind { return element.HEEdge }

// Release clears origin, face, next and pair.
func (e *Edge) Release() {
	e.Origin, e.Face, e.Next, e.Pair = None, None, None, None
}

// Reset releases, then blanks index and flags.
func (e *Edge) Reset() {
	e.Release()
	e.Blank()
}

// Face holds one bounding half-edge.
type Face struct {
	element.Base
	Edge int
}

// NewFace returns an unallocated face.
func NewFace() *Face {
	return &Face{Base: element.NewBase(), Edge: None}
}

// Kind returns element.HEFace.
func (*Face) Kind() element.Kind { return element.HEFace }

// Release clears the bounding half-edge.
func (f *Face) Release() { f.Edge = None }

// Reset releases, then blanks index and flags.
func (f *Face) Reset() {
	f.Release()
	f.Blank()
}

var (
	_ element.Indexed = (*Vertex)(nil)
	_ element.Indexed = (*Edge)(nil)
	_ element.Indexed = (*Face)(nil)
)
