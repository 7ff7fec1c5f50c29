// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over mesh adjacency, returning
// hop distances, parent links, visit order and connected components.
//
// What
//
//   - Walks any Topology: a slot-addressed element set with a neighbor
//     relation. ifs.VertexGraph, halfedge.FaceGraph, bmesh.FaceGraph and
//     bmesh.VertexGraph all qualify.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  element → distance (hops) from start
//   - Parent: element → its predecessor in the BFS tree
//   - Components splits every live element into islands.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithMarkVisited mirrors the reached set into flags.Visited.
//
// Why
//
//   - Find islands (disconnected shells) after import or editing.
//   - Grow selections ring by ring from a seed face or vertex.
//
// Determinism
//
//	Neighbors are enqueued in the order the Topology reports them, and
//	Components seeds islands in ascending slot order, so results are
//	reproducible for a given mesh.
//
// Complexity (V = live elements, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(m.FaceGraph(), 0,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithMarkVisited(),
//	)
//	islands, err := bfs.Components(m.VertexGraph())
//
// Errors
//
//   - ErrGraphNil             if the topology is nil.
//   - ErrStartVertexNotFound  if the start element is not live.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
//   - ErrNotFlagged           for WithMarkVisited on a topology without Flags.
//   - Wrapped errors from OnVisit, and ctx.Err() on cancellation.
package bfs
