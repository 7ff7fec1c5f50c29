// SPDX-License-Identifier: MIT

// Package traverse provides lazy iterators over the cyclic linked structures
// of a mesh: edge loops (radial cycles), face loops, vertex-edge rings, plus a
// mapping adapter.
//
// What
//
//   - Iterator[T]: HasNext / Next / Remove.
//   - Cycle[T]: walks a step function from a start node until the start
//     recurs. A one-shot first flag lets the start node be yielded on the
//     first step while still detecting the completed cycle afterwards.
//   - EdgeLoop / FaceLoop: cycles over Loops.NextEdgeLoop / NextFaceLoop.
//   - VertexEdgeRing: cycle over Ring.NextEdgeAround(edge, vertex); the pivot
//     vertex is passed on every step because an edge exposes a different
//     successor at each endpoint.
//   - Map: lazily applies a function to another iterator's values.
//   - All / Collect: adapters to range-over-func and slices.
//
// Errors
//
//	ErrExhausted   - Next called after HasNext reported false.
//	ErrUnsupported - Remove on a loop or ring view. Structural edits go
//	                 through the owning mesh's mutation operations.
//
// Contract
//
//	Iterators are single pass and not restartable. They keep a live view into
//	the mesh and are invalidated by any structural edit of the walked cycle;
//	no invalidation is detected. An iterator must not be shared between
//	goroutines.
package traverse
