// SPDX-License-Identifier: MIT

package dedup

import (
	"math"

	"cogentcore.org/core/math32"
)

// Key is the bit-exact identity of a position.
type Key [3]uint32

// KeyOf returns the key of p.
func KeyOf(p math32.Vector3) Key {
	return Key{math.Float32bits(p.X), math.Float32bits(p.Y), math.Float32bits(p.Z)}
}

// Index maps positions to vertices of type V. New vertices are built by a
// create callback that receives the position and an opaque attribute of
// type A describing where the vertex data lives.
type Index[V, A any] struct {
	entries  map[Key]V
	create   func(pos math32.Vector3, attr A) V
	position func(V) math32.Vector3
}

// New returns an empty Index. create allocates a vertex for a position seen
// for the first time; position reports where an existing vertex sits and is
// used by Add.
func New[V, A any](create func(math32.Vector3, A) V, position func(V) math32.Vector3) *Index[V, A] {
	return &Index[V, A]{
		entries:  make(map[Key]V),
		create:   create,
		position: position,
	}
}

// Add stores v under its own position, replacing any vertex already there.
// create is not called.
func (x *Index[V, A]) Add(v V) {
	x.entries[KeyOf(x.position(v))] = v
}

// Lookup returns the vertex stored at exactly pos.
func (x *Index[V, A]) Lookup(pos math32.Vector3) (V, bool) {
	v, ok := x.entries[KeyOf(pos)]
	return v, ok
}

// GetOrCreate returns the vertex at exactly pos, creating it from attr when
// none exists. On a hit attr is ignored and created is false.
// Complexity: O(1) average.
func (x *Index[V, A]) GetOrCreate(pos math32.Vector3, attr A) (v V, created bool) {
	k := KeyOf(pos)
	if v, ok := x.entries[k]; ok {
		return v, false
	}
	v = x.create(pos, attr)
	x.entries[k] = v

	return v, true
}

// Len returns the number of distinct positions stored.
func (x *Index[V, A]) Len() int {
	return len(x.entries)
}

// Clear drops every entry.
func (x *Index[V, A]) Clear() {
	clear(x.entries)
}
