// SPDX-License-Identifier: MIT

package traverse

// Cycle walks a cyclic linked structure. It yields start first and stops
// right before start would be yielded again. Reaching the none value ends
// the walk early, so a broken chain cannot loop forever through none.
type Cycle[T comparable] struct {
	start T
	cur   T
	none  T
	first bool
	step  func(T) T
}

// NewCycle returns a Cycle starting at start. A start equal to none yields
// an empty sequence.
func NewCycle[T comparable](start, none T, step func(T) T) *Cycle[T] {
	return &Cycle[T]{start: start, cur: start, none: none, first: true, step: step}
}

// HasNext reports whether another node remains in the cycle.
func (c *Cycle[T]) HasNext() bool {
	if c.cur == c.none {
		return false
	}
	return c.first || c.cur != c.start
}

// Next returns the current node and advances along the cycle.
func (c *Cycle[T]) Next() (T, error) {
	if !c.HasNext() {
		return c.none, ErrExhausted
	}
	v := c.cur
	c.first = false
	c.cur = c.step(v)

	return v, nil
}

// Remove always fails: cycles are read-only views.
func (c *Cycle[T]) Remove() error {
	return ErrUnsupported
}

// Loops exposes the two loop cycles of a boundary representation.
type Loops interface {
	NextEdgeLoop(loop int) int
	NextFaceLoop(loop int) int
}

// EdgeLoop walks the loops sharing start's edge, starting at start.
func EdgeLoop(g Loops, start int) *Cycle[int] {
	return NewCycle(start, None, g.NextEdgeLoop)
}

// FaceLoop walks the loops bounding start's face, starting at start.
func FaceLoop(g Loops, start int) *Cycle[int] {
	return NewCycle(start, None, g.NextFaceLoop)
}

// Ring exposes the edges around a vertex. NextEdgeAround returns the edge
// following edge in the ring of vertex, which must be an endpoint of edge.
type Ring interface {
	NextEdgeAround(edge, vertex int) int
}

// VertexEdgeRing walks the edges around vertex, starting at start.
func VertexEdgeRing(r Ring, vertex, start int) *Cycle[int] {
	return NewCycle(start, None, func(e int) int {
		return r.NextEdgeAround(e, vertex)
	})
}
