// SPDX-License-Identifier: MIT

package dedup

import "cogentcore.org/core/math32"

// Welder resolves source-buffer vertex indices to mesh vertices during one
// construction pass. Each source index is resolved once; with welding on,
// source indices at bit-identical positions share one vertex.
type Welder[V any] struct {
	positions []math32.Vector3
	index     *Index[V, int]
	create    func(attr int) V
	resolved  []V
	seen      []bool
	merged    int
}

// NewWelder prepares a resolver over positions. create allocates a vertex
// for a source index (its attribute handle); attr reports the handle a
// vertex was created from.
func NewWelder[V any](positions []math32.Vector3, weld bool, create func(attr int) V, attr func(V) int) *Welder[V] {
	w := &Welder[V]{
		positions: positions,
		create:    create,
		resolved:  make([]V, len(positions)),
		seen:      make([]bool, len(positions)),
	}
	if weld {
		w.index = New(
			func(_ math32.Vector3, a int) V { return create(a) },
			func(v V) math32.Vector3 { return positions[attr(v)] },
		)
	}
	return w
}

// Vertex returns the vertex for source index src, creating it on first use.
// src must be a valid index into the positions slice.
func (w *Welder[V]) Vertex(src int) V {
	if w.seen[src] {
		return w.resolved[src]
	}
	var v V
	if w.index == nil {
		v = w.create(src)
	} else {
		var created bool
		v, created = w.index.GetOrCreate(w.positions[src], src)
		if !created {
			w.merged++
		}
	}
	w.resolved[src] = v
	w.seen[src] = true

	return v
}

// Merged returns how many source indices were folded into an existing vertex.
func (w *Welder[V]) Merged() int {
	return w.merged
}

// Distinct returns the number of distinct welded positions seen so far, or
// -1 when welding is off.
func (w *Welder[V]) Distinct() int {
	if w.index == nil {
		return -1
	}
	return w.index.Len()
}
