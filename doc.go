// SPDX-License-Identifier: MIT

// Package lvmesh is an in-memory toolkit for mesh connectivity: three
// interchangeable topology encodings over one element lifecycle, with the
// traversal and deduplication services they share.
//
// What is lvmesh?
//
//	A small set of packages that agree on how mesh elements live and die:
//		• flags     - 64-bit per-element flag set with reserved cross-encoding bits
//		• element   - the Indexed contract, Base lifecycle and generation-checked Pool
//		• ifs       - indexed face set: vertex pairs and triples, three-tier equality
//		• halfedge  - half-edge graph with paired, boundary-closed cycles
//		• bmesh     - loop-based boundary representation (disk, radial, face cycles)
//		• traverse  - first-flag cycle iterators over any of the above
//		• dedup     - bit-exact position welding during construction
//		• bfs       - breadth-first walks and islands over mesh adjacency
//		• buffer    - raw positions and index lists, YAML in and out
//		• builder   - deterministic primitive buffers for tests and demos
//
// Every element carries an index (-1 until placed), a flag set and a fixed
// Kind. Pools hand elements out and take them back through Reset, so slots
// are recycled without leaking stale connectivity.
//
// Quick example:
//
//	buf, _ := builder.Build(nil, builder.PlatonicSolid(builder.Cube))
//	m, _ := halfedge.Build(buf)
//	for e := range traverse.All[int](m.Outgoing(0)) {
//		fmt.Println(m.Dest(e))
//	}
//
// The meshstat command under cmd/ builds all three encodings of one buffer
// and prints their statistics side by side.
//
// A mesh is owned by one goroutine at a time; iterators are single-pass and
// invalidated by edits.
package lvmesh
