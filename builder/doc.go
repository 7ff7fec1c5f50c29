// SPDX-License-Identifier: MIT

// Package builder produces deterministic triangle and line buffers for tests,
// examples and the meshstat command. Buffers feed ifs.Build, halfedge.Build
// and bmesh.Build directly.
//
// The package offers:
//
//   - Constructor: a closure that appends one shape to a buffer.
//   - Build(opts, cons...): runs constructors in order on a fresh buffer.
//   - Shapes:
//     - PlatonicSolid(name): the five regular solids as closed, outward-wound
//     triangle shells (Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron).
//     - Grid(rows, cols):    a flat rows×cols quad grid split into triangles.
//     - Polyline(n):         n points joined by n-1 loose line segments.
//     - Translate(offset, c): runs c and moves whatever it appended.
//   - Options:
//     - WithScale(s):  uniform scale applied by every shape (s > 0).
//     - WithSoup():    give every triangle corner and segment endpoint its own
//     position entry, so welding has something to merge.
//
// Guarantees:
//
//   - Same options and constructor order ⇒ identical buffers.
//   - Shapes share no vertices with each other; each appends its own block.
//   - Invalid parameters return sentinel errors; nothing panics.
//
// Usage:
//
//	buf, err := builder.Build(
//	    []builder.BuilderOption{builder.WithScale(2)},
//	    builder.PlatonicSolid(builder.Icosahedron),
//	    builder.Translate(math32.Vec3(5, 0, 0), builder.Grid(2, 3)),
//	)
package builder
