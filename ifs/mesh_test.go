// SPDX-License-Identifier: MIT

package ifs_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/flags"
	"github.com/katalvlaran/lvmesh/ifs"
	"github.com/katalvlaran/lvmesh/meshopt"
)

// quadSoup is two triangles of a unit square stored without sharing, plus a
// loose diagonal and one degenerate triangle.
func quadSoup() *buffer.Buffer {
	return &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0),
			math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
			math32.Vec3(2, 2, 2),
		},
		Indices: []uint32{
			0, 1, 2,
			3, 4, 5,
			0, 3, 1, // collapses onto one vertex after welding
		},
		Lines: []uint32{1, 5, 5, 6},
	}
}

func TestBuild_Welded(t *testing.T) {
	m, err := ifs.Build(quadSoup())
	require.NoError(t, err)

	st := m.Stats()
	assert.Equal(t, 5, st.Vertices)
	assert.Equal(t, 7, st.Edges, "5 square edges + 2 loose")
	assert.Equal(t, 2, st.Faces)
	assert.Equal(t, 2, st.Welded)
	assert.Equal(t, 1, st.Degenerate)
	assert.Equal(t, 2, st.Loose)

	diag, ok := m.FindEdge(2, 0)
	require.True(t, ok)
	assert.False(t, diag.Flags().Get(ifs.FlagLoose))

	f, ok := m.FindFace(2, 0, 1)
	require.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, f.Corners())
	for _, e := range m.FaceEdges(f) {
		require.NotNil(t, e)
	}
}

func TestBuild_Unwelded(t *testing.T) {
	m, err := ifs.Build(quadSoup(), meshopt.WithWelding(false))
	require.NoError(t, err)

	st := m.Stats()
	assert.Equal(t, 7, st.Vertices)
	assert.Equal(t, 3, st.Faces)
	assert.Equal(t, 0, st.Welded)
	assert.Equal(t, 0, st.Degenerate)
}

func TestBuild_DuplicateTriangleLogged(t *testing.T) {
	buf := &buffer.Buffer{
		Positions: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
		Indices:   []uint32{0, 1, 2, 2, 0, 1},
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := ifs.Build(buf, meshopt.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Stats().Faces)
	assert.Equal(t, 1, m.Stats().Duplicate)
	assert.Contains(t, logs.String(), "repeated triangle")
	assert.Contains(t, logs.String(), "built mesh")
}

func TestBuild_Errors(t *testing.T) {
	_, err := ifs.Build(&buffer.Buffer{Indices: []uint32{0}})
	assert.ErrorIs(t, err, buffer.ErrNotTriangles)

	_, err = ifs.Build(nil)
	assert.ErrorIs(t, err, buffer.ErrNilBuffer)

	_, err = ifs.Build(&buffer.Buffer{}, meshopt.WithLogger(nil))
	assert.ErrorIs(t, err, meshopt.ErrOptionViolation)
}

func TestAddEdge_Errors(t *testing.T) {
	m := ifs.New()
	m.AddVertex(0)
	m.AddVertex(1)

	_, _, err := m.AddEdge(1, 1)
	assert.ErrorIs(t, err, ifs.ErrDegenerate)
	_, _, err = m.AddEdge(0, 5)
	assert.ErrorIs(t, err, ifs.ErrNotFound)

	e, created, err := m.AddEdge(1, 0)
	require.NoError(t, err)
	assert.True(t, created)
	again, created, err := m.AddEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, e, again)
}

func TestRemoveAndCompact(t *testing.T) {
	m, err := ifs.Build(quadSoup())
	require.NoError(t, err)

	// vertex 0 is referenced; the loose vertex at (2,2,2) only by its segment
	assert.ErrorIs(t, m.RemoveVertex(0), ifs.ErrInUse)

	diag, _ := m.FindEdge(0, 2)
	assert.ErrorIs(t, m.RemoveEdge(diag.Index()), ifs.ErrInUse)

	f, _ := m.FindFace(0, 1, 2)
	require.NoError(t, m.RemoveFace(f.Index()))
	assert.ErrorIs(t, m.RemoveFace(f.Index()), ifs.ErrNotFound)
	_, ok := m.FindFace(0, 1, 2)
	assert.False(t, ok)

	side, _ := m.FindEdge(0, 1)
	require.NoError(t, m.RemoveEdge(side.Index()))
	side, _ = m.FindEdge(1, 2)
	require.NoError(t, m.RemoveEdge(side.Index()))
	loose, _ := m.FindEdge(1, 3)
	require.NoError(t, m.RemoveEdge(loose.Index()))
	require.NoError(t, m.RemoveVertex(1))

	m.Compact()
	st := m.Stats()
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 1, st.Faces)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, 4, m.Vertices.Slots())

	// vertices above the hole moved down and carry the mark
	for slot, v := range m.Vertices.All() {
		assert.Equal(t, slot >= 1, v.Flags().Get(flags.IndexModified), "vertex %d", slot)
	}
	// the remaining face was (0,2,3) and is now (0,1,2)
	rest, ok := m.FindFace(0, 1, 2)
	require.True(t, ok)
	assert.Equal(t, 0, rest.Index())
	for _, e := range m.FaceEdges(rest) {
		require.NotNil(t, e)
	}
	_, ok = m.FindEdge(2, 3)
	assert.True(t, ok, "loose segment remapped from (3,4) to (2,3)")
}

func TestVertexGraph(t *testing.T) {
	m, err := ifs.Build(quadSoup())
	require.NoError(t, err)

	g := m.VertexGraph()
	assert.Equal(t, 5, g.Slots())
	assert.True(t, g.Live(0))
	assert.ElementsMatch(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.ElementsMatch(t, []int{3}, g.Neighbors(4))
	g.Flags(4).Set(flags.Visited, true)
	assert.True(t, m.Vertices.Get(4).Flags().Get(flags.Visited))
}
