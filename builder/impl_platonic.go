// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go - PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Appends the shell corners in table order and its triangles rebased on them.
//   • The result is a closed 2-manifold: every directed edge has exactly one
//     opposite.
//
// Complexity: O(V+F) for the chosen solid (V≤20, F≤36).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/buffer"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that appends the chosen solid,
// centred on the origin with cfg.scale applied.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(b *buffer.Buffer, cfg builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrOptionViolation)
		}
		appendShape(b, cfg, s.verts, s.tris)
		return nil
	}
}
