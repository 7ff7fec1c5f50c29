// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go - canonical data for the Platonic solids.
//
// Design:
//   • Single source of truth for the five shells: corner positions and
//     triangles wound counter-clockwise seen from outside.
//   • Tetrahedron, cube, octahedron and icosahedron are literal tables.
//   • The dodecahedron is derived at init() as the dual of the icosahedron:
//     one corner per icosahedron face centroid, one pentagon per icosahedron
//     vertex, fan-triangulated from its first corner.

package builder

import "cogentcore.org/core/math32"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonic returns the solid named s, case-sensitive as String prints it.
func ParsePlatonic(s string) (PlatonicName, bool) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=12 (6 quads split)
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // V=20, F=36 (12 pentagons fanned)
	Icosahedron                      // V=12, F=20
)

type solid struct {
	verts []math32.Vector3
	tris  [][3]int
}

// phi is the golden ratio.
const phi = 1.618033988749895

var platonicSolids = map[PlatonicName]solid{
	Tetrahedron: {
		verts: []math32.Vector3{
			math32.Vec3(1, 1, 1), math32.Vec3(1, -1, -1),
			math32.Vec3(-1, 1, -1), math32.Vec3(-1, -1, 1),
		},
		tris: [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},
	Cube: {
		// index bits: x<<2 | y<<1 | z, bit set means +1
		verts: []math32.Vector3{
			math32.Vec3(-1, -1, -1), math32.Vec3(-1, -1, 1), math32.Vec3(-1, 1, -1), math32.Vec3(-1, 1, 1),
			math32.Vec3(1, -1, -1), math32.Vec3(1, -1, 1), math32.Vec3(1, 1, -1), math32.Vec3(1, 1, 1),
		},
		tris: [][3]int{
			{0, 1, 3}, {0, 3, 2}, {4, 6, 7}, {4, 7, 5},
			{0, 4, 5}, {0, 5, 1}, {2, 3, 7}, {2, 7, 6},
			{0, 2, 6}, {0, 6, 4}, {1, 5, 7}, {1, 7, 3},
		},
	},
	Octahedron: {
		verts: []math32.Vector3{
			math32.Vec3(1, 0, 0), math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0),
			math32.Vec3(0, -1, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -1),
		},
		tris: [][3]int{
			{0, 2, 4}, {0, 5, 2}, {0, 4, 3}, {0, 3, 5},
			{1, 4, 2}, {1, 2, 5}, {1, 3, 4}, {1, 5, 3},
		},
	},
	Icosahedron: {
		verts: []math32.Vector3{
			math32.Vec3(-1, phi, 0), math32.Vec3(1, phi, 0), math32.Vec3(-1, -phi, 0), math32.Vec3(1, -phi, 0),
			math32.Vec3(0, -1, phi), math32.Vec3(0, 1, phi), math32.Vec3(0, -1, -phi), math32.Vec3(0, 1, -phi),
			math32.Vec3(phi, 0, -1), math32.Vec3(phi, 0, 1), math32.Vec3(-phi, 0, -1), math32.Vec3(-phi, 0, 1),
		},
		tris: [][3]int{
			{0, 5, 1}, {0, 1, 7}, {0, 11, 5}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {1, 8, 7}, {1, 9, 8}, {2, 3, 4}, {2, 6, 3},
			{2, 4, 11}, {2, 10, 6}, {2, 11, 10}, {3, 9, 4}, {3, 6, 8},
			{3, 8, 9}, {4, 9, 5}, {4, 5, 11}, {6, 7, 8}, {6, 10, 7},
		},
	},
}

func init() {
	platonicSolids[Dodecahedron] = dual(platonicSolids[Icosahedron])
}

// dual returns the polar dual of a closed, consistently wound triangle
// shell whose vertices all have the same degree, as a fan-triangulated solid.
func dual(s solid) solid {
	out := solid{verts: make([]math32.Vector3, len(s.tris))}
	faceOf := make(map[[2]int]int, 3*len(s.tris))
	for f, t := range s.tris {
		out.verts[f] = s.verts[t[0]].Add(s.verts[t[1]]).Add(s.verts[t[2]]).MulScalar(float32(1) / 3)
		for i := range t {
			faceOf[[2]int{t[i], t[(i+1)%3]}] = f
		}
	}

	for v := range s.verts {
		start := -1
		for f, t := range s.tris {
			if t[0] == v || t[1] == v || t[2] == v {
				start = f
				break
			}
		}
		// walking (v, a, b) → the face holding v→b visits the ring
		// counter-clockwise seen from outside
		var ring []int
		for f := start; ; {
			ring = append(ring, f)
			t := s.tris[f]
			b := t[2]
			switch v {
			case t[1]:
				b = t[0]
			case t[2]:
				b = t[1]
			}
			if f = faceOf[[2]int{v, b}]; f == start {
				break
			}
		}
		for i := 1; i+1 < len(ring); i++ {
			out.tris = append(out.tris, [3]int{ring[0], ring[i], ring[i+1]})
		}
	}
	return out
}
