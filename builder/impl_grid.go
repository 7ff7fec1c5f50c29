// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • (rows+1)×(cols+1) corners in the z=0 plane, unit spacing before scale,
//     row-major: corner (r,c) sits at x=c, y=r.
//   • Each cell (r,c) emits two counter-clockwise triangles split along the
//     diagonal from its lower-left to its upper-right corner.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/lvmesh/buffer"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a flat rows×cols grid of quads,
// each split into two triangles. The grid is an open disk: its outer ring
// is boundary.
func Grid(rows, cols int) Constructor {
	return func(b *buffer.Buffer, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		stride := cols + 1
		verts := make([]math32.Vector3, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				verts = append(verts, math32.Vec3(float32(c), float32(r), 0))
			}
		}
		tris := make([][3]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ll := r*stride + c
				lr, ul, ur := ll+1, ll+stride, ll+stride+1
				tris = append(tris, [3]int{ll, lr, ur}, [3]int{ll, ur, ul})
			}
		}
		appendShape(b, cfg, verts, tris)

		return nil
	}
}
