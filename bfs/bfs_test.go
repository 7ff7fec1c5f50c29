// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/flags"
	"github.com/katalvlaran/lvmesh/halfedge"
	"github.com/katalvlaran/lvmesh/ifs"
)

// graph is a plain adjacency list; nil rows are dead slots.
type graph [][]int

func (g graph) Slots() int             { return len(g) }
func (g graph) Live(id int) bool       { return id >= 0 && id < len(g) && g[id] != nil }
func (g graph) Neighbors(id int) []int { return g[id] }

// square is the cycle 0-1-2-3-0.
func square() graph {
	return graph{{1, 3}, {0, 2}, {1, 3}, {2, 0}}
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(square(), 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(square(), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(square(), 0, bfs.WithMarkVisited())
	assert.ErrorIs(t, err, bfs.ErrNotFlagged)
}

func TestBFS_CycleDepthsAndPath(t *testing.T) {
	res, err := bfs.BFS(square(), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestBFS_PathToUnreached(t *testing.T) {
	g := graph{{1}, {0}, {}}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	_, err = res.PathTo(2)
	assert.Error(t, err)
}

func TestBFS_Options(t *testing.T) {
	tests := []struct {
		name string
		opts []bfs.Option
		want []int
	}{
		{"max depth", []bfs.Option{bfs.WithMaxDepth(1)}, []int{0, 1, 3}},
		{"no limit", []bfs.Option{bfs.WithMaxDepth(0)}, []int{0, 1, 3, 2}},
		{"filter", []bfs.Option{bfs.WithFilterNeighbor(func(_, n int) bool { return n != 1 })}, []int{0, 3, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.BFS(square(), 0, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq, vis []int
	res, err := bfs.BFS(square(), 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error { vis = append(vis, id); return nil }),
		bfs.WithOnVisit(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, enq)
	assert.Equal(t, res.Order, deq)
	assert.Equal(t, res.Order, vis)
}

func TestBFS_VisitErrorAborts(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(square(), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 3}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(square(), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_SkipsDeadNeighbors(t *testing.T) {
	g := graph{{1, 2}, nil, {0}}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Order)
}

func TestComponents_IFSIslands(t *testing.T) {
	buf := &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
			math32.Vec3(5, 0, 0), math32.Vec3(6, 0, 0), math32.Vec3(5, 1, 0),
			math32.Vec3(9, 9, 9),
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5},
	}
	m, err := ifs.Build(buf)
	require.NoError(t, err)

	islands, err := bfs.Components(m.VertexGraph())
	require.NoError(t, err)
	require.Len(t, islands, 2, "unreferenced positions never become vertices")
	assert.ElementsMatch(t, []int{0, 1, 2}, islands[0])
	assert.ElementsMatch(t, []int{3, 4, 5}, islands[1])
	assert.Equal(t, 0, islands[0][0])
	assert.Equal(t, 3, islands[1][0])
}

func TestComponents_SkipsDeadSlots(t *testing.T) {
	g := graph{{}, nil, {3}, {2}}
	islands, err := bfs.Components(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {2, 3}}, islands)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestMarkVisited_HalfEdgeFaces(t *testing.T) {
	buf := &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	m, err := halfedge.Build(buf)
	require.NoError(t, err)
	g := m.FaceGraph()

	_, err = bfs.BFS(g, 0, bfs.WithMarkVisited())
	require.NoError(t, err)
	assert.True(t, g.Flags(0).Get(flags.Visited))
	assert.True(t, g.Flags(1).Get(flags.Visited))

	// a walk that cannot reach face 1 clears its stale mark
	_, err = bfs.BFS(g, 0, bfs.WithMarkVisited(), bfs.WithFilterNeighbor(func(_, _ int) bool { return false }))
	require.NoError(t, err)
	assert.True(t, g.Flags(0).Get(flags.Visited))
	assert.False(t, g.Flags(1).Get(flags.Visited))
}
