// SPDX-License-Identifier: MIT

// Package bmesh implements the loop-based boundary representation.
//
// Four element kinds live in their own pools and refer to each other by
// slot index, with None (-1) as the empty reference:
//
//   - Vertex: attribute handle plus one incident edge;
//   - Edge:   two endpoints, one loop, and a disk link per endpoint;
//   - Loop:   one corner of one face, sitting on one edge;
//   - Face:   one loop plus the corner count.
//
// Three kinds of cycle tie them together:
//
//	disk cycle  edges around a vertex     Edge.Disk[side].Next / Prev
//	edge loop   loops sharing an edge     Loop.NextEdgeLoop / PrevEdgeLoop
//	face loop   loops bounding a face     Loop.NextFaceLoop / PrevFaceLoop
//
// An edge loop may hold any number of loops, so non-manifold edges are
// representable. An edge with no loop is a wire edge and carries FlagWire.
//
// Mesh satisfies traverse.Loops and traverse.Ring, so the generic iterators
// walk its cycles directly:
//
//	for l := range traverse.All[int](m.FaceLoops(f)) { ... }
//
// Editing goes through AddVertex, AddEdge, AddFace and the Kill operations,
// which keep every cycle consistent. Iterators are invalidated by edits.
package bmesh
