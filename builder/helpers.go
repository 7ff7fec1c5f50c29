// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// helpers.go - shared append helpers for constructors.

package builder

import (
	"cogentcore.org/core/math32"

	"github.com/katalvlaran/lvmesh/buffer"
)

// appendShape scales verts by cfg.scale, appends them to b and appends tris
// rebased onto the new block.
// Complexity: O(len(verts) + len(tris)).
func appendShape(b *buffer.Buffer, cfg builderConfig, verts []math32.Vector3, tris [][3]int) {
	base := uint32(len(b.Positions))
	for _, v := range verts {
		b.Positions = append(b.Positions, v.MulScalar(cfg.scale))
	}
	for _, t := range tris {
		b.Indices = append(b.Indices, base+uint32(t[0]), base+uint32(t[1]), base+uint32(t[2]))
	}
}
