// SPDX-License-Identifier: MIT

package ifs

import "github.com/katalvlaran/lvmesh/flags"

// VertexGraph is a read-only vertex adjacency view over a Mesh, suitable for
// the bfs package. It snapshots adjacency when created; rebuild it after
// editing the mesh.
type VertexGraph struct {
	m   *Mesh
	adj [][]int
}

// VertexGraph returns the vertex adjacency induced by the mesh edges.
// Complexity: O(V + E).
func (m *Mesh) VertexGraph() *VertexGraph {
	adj := make([][]int, m.Vertices.Slots())
	for _, e := range m.Edges.All() {
		adj[e.V0] = append(adj[e.V0], e.V1)
		adj[e.V1] = append(adj[e.V1], e.V0)
	}
	return &VertexGraph{m: m, adj: adj}
}

// Slots returns the vertex slot count.
func (g *VertexGraph) Slots() int { return len(g.adj) }

// Live reports whether id is a live vertex.
func (g *VertexGraph) Live(id int) bool { return g.m.Vertices.Live(id) }

// Neighbors returns the vertices sharing an edge with id, in edge order.
func (g *VertexGraph) Neighbors(id int) []int { return g.adj[id] }

// Flags returns the flag set of vertex id.
func (g *VertexGraph) Flags(id int) *flags.Set { return g.m.Vertices.Get(id).Flags() }
