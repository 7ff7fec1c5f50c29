// SPDX-License-Identifier: MIT

// Package dedup merges coincident vertices while a mesh is being built.
//
// An Index maps exact positions to the vertex first created there. Keys are
// the IEEE-754 bit patterns of the three coordinates, so lookups are
// bit-exact: +0 and -0 are different positions, NaN coordinates match
// themselves, and no tolerance is applied. Welding nearly coincident
// vertices is deliberately not done here.
//
// An Index is scoped to one construction pass and is not safe for concurrent
// use.
package dedup
