// SPDX-License-Identifier: MIT

// Package buffer holds the raw construction input of a mesh: a position
// array plus index arrays for triangles and loose line segments.
//
// Buffers come from an external loader or from package builder. Decode
// reads the YAML form:
//
//	positions:
//	  - [0, 0, 0]
//	  - [1, 0, 0]
//	  - [0, 1, 0]
//	indices: [0, 1, 2]
//	lines: [0, 2]
//
// Validate checks shape and index ranges; it does not inspect geometry.
package buffer
