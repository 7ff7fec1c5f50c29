// SPDX-License-Identifier: MIT

package ifs

import (
	"sync/atomic"

	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/flags"
)

// FlagLoose tags edges that came from line segments and bound no face.
const FlagLoose flags.Bit = 0

// serials hands out identity-tier keys; values are unique per process run.
var serials atomic.Uint64

// Vertex is a point whose position lives in an external attribute store.
type Vertex struct {
	element.Base

	// Attr is the attribute handle (source-buffer index), or -1.
	Attr int

	serial uint64
}

// NewVertex returns an unallocated vertex.
func NewVertex() *Vertex {
	return &Vertex{Base: element.NewBase(), Attr: element.NoIndex, serial: serials.Add(1)}
}

// Kind returns element.IFSVertex.
func (*Vertex) Kind() element.Kind { return element.IFSVertex }

// Release drops the attribute handle.
func (v *Vertex) Release() { v.Attr = element.NoIndex }

// Reset releases, then blanks index and flags.
func (v *Vertex) Reset() {
	v.Release()
	v.Blank()
}

// Edge is an unordered pair of vertex indices.
type Edge struct {
	element.Base
	V0, V1 int

	serial uint64
}

// NewEdge returns an unallocated edge with empty endpoints.
func NewEdge() *Edge {
	return &Edge{Base: element.NewBase(), V0: element.NoIndex, V1: element.NoIndex, serial: serials.Add(1)}
}

// Kind returns element.IFSEdge.
func (*Edge) Kind() element.Kind { return element.IFSEdge }

// Placed reports whether both endpoints are set.
func (e *Edge) Placed() bool { return e.V0 >= 0 && e.V1 >= 0 }

// Has reports whether v is an endpoint.
func (e *Edge) Has(v int) bool { return e.V0 == v || e.V1 == v }

// Other returns the endpoint opposite v, or -1 if v is not an endpoint.
func (e *Edge) Other(v int) int {
	switch v {
	case e.V0:
		return e.V1
	case e.V1:
		return e.V0
	}
	return element.NoIndex
}

// Release clears both endpoints.
func (e *Edge) Release() {
	e.V0, e.V1 = element.NoIndex, element.NoIndex
}

// Reset releases, then blanks index and flags.
func (e *Edge) Reset() {
	e.Release()
	e.Blank()
}

// Face is an unordered triple of vertex indices.
type Face struct {
	element.Base
	I0, I1, I2 int

	serial uint64
}

// NewFace returns an unallocated face with empty corners.
func NewFace() *Face {
	return &Face{
		Base: element.NewBase(),
		I0:   element.NoIndex, I1: element.NoIndex, I2: element.NoIndex,
		serial: serials.Add(1),
	}
}

// Kind returns element.IFSFace.
func (*Face) Kind() element.Kind { return element.IFSFace }

// Placed reports whether all three corners are set.
func (f *Face) Placed() bool { return f.I0 >= 0 && f.I1 >= 0 && f.I2 >= 0 }

// Corners returns the stored corners in storage order.
func (f *Face) Corners() [3]int { return [3]int{f.I0, f.I1, f.I2} }

// Has reports whether v is a corner.
func (f *Face) Has(v int) bool { return f.I0 == v || f.I1 == v || f.I2 == v }

// Release clears all corners.
func (f *Face) Release() {
	f.I0, f.I1, f.I2 = element.NoIndex, element.NoIndex, element.NoIndex
}

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
