// SPDX-License-Identifier: MIT

// Package halfedge implements the half-edge encoding over index arenas.
//
// Each half-edge stores its origin vertex, its incident face, the next
// half-edge around that face and its opposite pair. A vertex stores one
// outgoing half-edge and a face one bounding half-edge. References are pool
// slots with None as the empty sentinel, so the cyclic structure needs no
// cyclic ownership.
//
// Build closes every open fan with boundary half-edges (Face == None,
// flagged FlagBoundary) linked into boundary cycles, so every half-edge has
// a pair and a next and every vertex ring is closed.
//
// Elements keep identity semantics: two half-edges are the same only if they
// are the same object. Connectivity queries are purely structural.
//
// Traversal
//
//	traverse.FaceLoop(m, e)           half-edges around e's face
//	traverse.EdgeLoop(m, e)           e and its pair
//	m.Outgoing(v)                     outgoing half-edges of v
//	m.VertexFaces(v)                  faces around v (None for boundary gaps)
//
// Dereferencing a None reference (before linking or after Release) is a
// caller error and is not guarded.
package halfedge
