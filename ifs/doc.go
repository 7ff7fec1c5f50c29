// SPDX-License-Identifier: MIT

// Package ifs implements the indexed-face-set encoding: vertices carry only an
// attribute handle, edges store an unordered vertex pair, faces store an
// unordered vertex triple. All references are vertex indices with -1 as the
// empty sentinel.
//
// Identity
//
// Edges and faces compare by a three-tier key:
//
//  1. connectivity - every referenced vertex index is >= 0: the sorted vertex
//     tuple, so winding and storage order do not matter;
//  2. index        - the element is placed: its storage index;
//  3. identity     - otherwise: a per-instance serial, equal only to itself.
//
// Vertices use tiers 2 and 3. Two elements are equal exactly when their Keys
// are equal, and Hash is derived from the Key, so equal elements always hash
// alike. Keys embed the Kind, so elements of different kinds never compare
// equal. A key selects its tier per element: a placed edge and an unplaced
// edge at the same index are different.
//
// Construction
//
//	m, err := ifs.Build(buf, meshopt.WithLogger(logger))
//
// Build welds source vertices at identical positions, skips degenerate and
// repeated triangles, derives unique edges from triangle sides and from the
// buffer's loose line segments, and records counts in Stats.
//
// Editing
//
// RemoveFace, RemoveEdge and RemoveVertex recycle elements through their
// pools; Compact closes the holes and rewrites every vertex reference. Moved
// elements carry flags.IndexModified afterwards.
package ifs
