// SPDX-License-Identifier: MIT

package ifs

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/element"
)

// RemoveFace recycles the face at slot. Its edges stay.
func (m *Mesh) RemoveFace(slot int) error {
	f, ok := m.Faces.Lookup(slot)
	if !ok {
		return fmt.Errorf("%w: face %d", ErrNotFound, slot)
	}
	delete(m.faceAt, f.Key())
	return m.Faces.Release(slot)
}

// RemoveEdge recycles the edge at slot. Returns ErrInUse while a face still
// spans both endpoints.
// Complexity: O(F).
func (m *Mesh) RemoveEdge(slot int) error {
	e, ok := m.Edges.Lookup(slot)
	if !ok {
		return fmt.Errorf("%w: edge %d", ErrNotFound, slot)
	}
	for _, f := range m.Faces.All() {
		if f.Has(e.V0) && f.Has(e.V1) {
			return fmt.Errorf("%w: edge %d bounds face %d", ErrInUse, slot, f.Index())
		}
	}
	delete(m.edgeAt, e.Key())
	return m.Edges.Release(slot)
}

// RemoveVertex recycles the vertex at slot. Returns ErrInUse while an edge or
// face references it.
// Complexity: O(E + F).
func (m *Mesh) RemoveVertex(slot int) error {
	if !m.Vertices.Live(slot) {
		return fmt.Errorf("%w: vertex %d", ErrNotFound, slot)
	}
	for _, e := range m.Edges.All() {
		if e.Has(slot) {
			return fmt.Errorf("%w: vertex %d used by edge %d", ErrInUse, slot, e.Index())
		}
	}
	for _, f := range m.Faces.All() {
		if f.Has(slot) {
			return fmt.Errorf("%w: vertex %d used by face %d", ErrInUse, slot, f.Index())
		}
	}
	return m.Vertices.Release(slot)
}

// Compact closes the holes left by removals in all three pools and rewrites
// vertex references. Moved elements carry flags.IndexModified.
// Complexity: O(V + E + F).
func (m *Mesh) Compact() {
	vr := m.Vertices.Compact()
	remap := func(v int) int {
		if v < 0 || v >= len(vr) {
			return element.NoIndex
		}
		return vr[v]
	}

	m.Edges.Compact()
	clear(m.edgeAt)
	for slot, e := range m.Edges.All() {
		e.V0, e.V1 = remap(e.V0), remap(e.V1)
		m.edgeAt[e.Key()] = slot
	}

	m.Faces.Compact()
	clear(m.faceAt)
	for slot, f := range m.Faces.All() {
		f.I0, f.I1, f.I2 = remap(f.I0), remap(f.I1), remap(f.I2)
		m.faceAt[f.Key()] = slot
	}
}
