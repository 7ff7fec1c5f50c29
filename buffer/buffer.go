// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"iter"

	"cogentcore.org/core/math32"
)

// Buffer is an unindexed-topology input: positions plus index lists.
// Triangles are consecutive triples of Indices; loose edges are consecutive
// pairs of Lines.
type Buffer struct {
	Positions []math32.Vector3
	Indices   []uint32
	Lines     []uint32
}

// Triangle is one triple of position indices.
type Triangle [3]int

// Segment is one pair of position indices.
type Segment [2]int

// Validate reports the first shape or range problem found.
// Complexity: O(len(Indices) + len(Lines)).
func (b *Buffer) Validate() error {
	if b == nil {
		return ErrNilBuffer
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrNotTriangles, len(b.Indices))
	}
	if len(b.Lines)%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrNotLines, len(b.Lines))
	}
	n := uint32(len(b.Positions))
	for i, idx := range b.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d]=%d, %d positions", ErrIndexOutOfRange, i, idx, n)
		}
	}
	for i, idx := range b.Lines {
		if idx >= n {
			return fmt.Errorf("%w: lines[%d]=%d, %d positions", ErrIndexOutOfRange, i, idx, n)
		}
	}
	return nil
}

// NumTriangles returns the number of complete triangles.
func (b *Buffer) NumTriangles() int { return len(b.Indices) / 3 }

// NumLines returns the number of complete line segments.
func (b *Buffer) NumLines() int { return len(b.Lines) / 2 }

// Triangles yields every triangle in buffer order.
func (b *Buffer) Triangles() iter.Seq2[int, Triangle] {
	return func(yield func(int, Triangle) bool) {
		for t := 0; t < b.NumTriangles(); t++ {
			i := 3 * t
			tri := Triangle{int(b.Indices[i]), int(b.Indices[i+1]), int(b.Indices[i+2])}
			if !yield(t, tri) {
				return
			}
		}
	}
}

// Segments yields every loose line segment in buffer order.
func (b *Buffer) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for s := 0; s < b.NumLines(); s++ {
			i := 2 * s
			if !yield(s, Segment{int(b.Lines[i]), int(b.Lines[i+1])}) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Positions: append([]math32.Vector3(nil), b.Positions...),
		Indices:   append([]uint32(nil), b.Indices...),
		Lines:     append([]uint32(nil), b.Lines...),
	}
}

// Bounds returns the axis-aligned box around every position; it is empty
// (Min > Max) when there are none.
func (b *Buffer) Bounds() math32.Box3 {
	box := math32.B3Empty()
	box.ExpandByPoints(b.Positions)
	return box
}
