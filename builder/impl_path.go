// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_path.go - Polyline(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • n points along +x at unit spacing before scale, joined by n-1 loose
//     line segments (i, i+1). No triangles.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/lvmesh/buffer"
)

const (
	methodPolyline = "Polyline"
	minPathNodes   = 2
)

// Polyline returns a Constructor that appends an open chain of n points.
func Polyline(n int) Constructor {
	return func(b *buffer.Buffer, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPolyline, n, minPathNodes, ErrTooFewVertices)
		}
		base := uint32(len(b.Positions))
		for i := range n {
			b.Positions = append(b.Positions, math32.Vec3(float32(i), 0, 0).MulScalar(cfg.scale))
		}
		for i := range uint32(n - 1) {
			b.Lines = append(b.Lines, base+i, base+i+1)
		}
		return nil
	}
}
