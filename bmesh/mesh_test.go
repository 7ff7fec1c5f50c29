// SPDX-License-Identifier: MIT

package bmesh_test

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/bmesh"
	"github.com/katalvlaran/lvmesh/buffer"
	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/meshopt"
	"github.com/katalvlaran/lvmesh/traverse"
)

func quad() *buffer.Buffer {
	return &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// fin has three triangles hinged on edge 0-1.
func fin() *buffer.Buffer {
	return &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0),
			math32.Vec3(0, 1, 0), math32.Vec3(0, -1, 0), math32.Vec3(0, 0, 1),
		},
		Indices: []uint32{0, 1, 2, 1, 0, 3, 0, 1, 4},
	}
}

func build(t *testing.T, buf *buffer.Buffer, opts ...meshopt.Option) *bmesh.Mesh {
	t.Helper()
	m, err := bmesh.Build(buf, opts...)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func TestBuild_Quad(t *testing.T) {
	m := build(t, quad())

	st := m.Stats()
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 5, st.Edges)
	assert.Equal(t, 6, st.Loops)
	assert.Equal(t, 2, st.Faces)
	assert.Zero(t, st.Wire)
	assert.Zero(t, st.NonManifold)

	diag := m.FindEdge(2, 0)
	require.NotEqual(t, bmesh.None, diag)
	assert.Equal(t, 2, m.RadialLen(diag))
	assert.Equal(t, 1, m.RadialLen(m.FindEdge(0, 1)))
	assert.Equal(t, bmesh.None, m.FindEdge(1, 3))

	assert.Equal(t, []int{0, 1, 2}, m.FaceVertices(0))
	assert.Equal(t, []int{0, 2, 3}, m.FaceVertices(1))
	assert.Equal(t, 3, m.Degree(0))
	assert.Equal(t, 2, m.Degree(1))

	faces, err := traverse.Collect(m.EdgeFaces(diag))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, faces)
}

func TestBuild_WireEdges(t *testing.T) {
	buf := quad()
	buf.Positions = append(buf.Positions, math32.Vec3(2, 2, 0))
	buf.Lines = []uint32{2, 3, 3, 4}
	m := build(t, buf)

	st := m.Stats()
	assert.Equal(t, 6, st.Edges)
	assert.Equal(t, 1, st.Wire)

	wire := m.FindEdge(3, 4)
	assert.True(t, m.Edges.Get(wire).Flags().Get(bmesh.FlagWire))
	assert.False(t, m.Edges.Get(m.FindEdge(2, 3)).Flags().Get(bmesh.FlagWire))
}

func TestBuild_Welding(t *testing.T) {
	soup := &buffer.Buffer{
		Positions: []math32.Vector3{
			math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0),
			math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5},
	}

	welded := build(t, soup)
	assert.Equal(t, 4, welded.Stats().Vertices)
	assert.Equal(t, 2, welded.Stats().Welded)
	assert.Equal(t, 5, welded.Stats().Edges)

	apart := build(t, soup, meshopt.WithWelding(false))
	assert.Equal(t, 6, apart.Stats().Vertices)
	assert.Equal(t, 6, apart.Stats().Edges)
	assert.Zero(t, apart.Stats().Welded)
}

func TestBuild_SkipsDegenerate(t *testing.T) {
	buf := &buffer.Buffer{
		Positions: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 0)},
		Indices:   []uint32{0, 1, 2},
		Lines:     []uint32{0, 2},
	}
	m := build(t, buf)

	st := m.Stats()
	assert.Equal(t, 2, st.Degenerate)
	assert.Zero(t, st.Faces)
	assert.Zero(t, st.Edges)
}

func TestBuild_RejectsBadOption(t *testing.T) {
	_, err := bmesh.Build(quad(), meshopt.WithLogger(nil))
	assert.ErrorIs(t, err, meshopt.ErrOptionViolation)

	_, err = bmesh.Build(nil)
	assert.ErrorIs(t, err, buffer.ErrNilBuffer)
}

func TestEdgeLoop_NonManifoldCompleteness(t *testing.T) {
	m := build(t, fin())
	e := m.FindEdge(0, 1)
	require.Equal(t, 3, m.RadialLen(e))
	assert.Equal(t, 1, m.Stats().NonManifold)

	starts, err := traverse.Collect[int](m.Radial(e))
	require.NoError(t, err)
	for _, start := range starts {
		it := traverse.EdgeLoop(m, start)
		got, err := traverse.Collect[int](it)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, start, got[0])
		assert.ElementsMatch(t, starts, got)
		assert.False(t, it.HasNext())
	}

	assert.ElementsMatch(t, []int{1, 2}, m.FaceGraph().Neighbors(0))
}

func TestDiskEdges_SingleIncidentEdge(t *testing.T) {
	buf := &buffer.Buffer{
		Positions: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0)},
		Lines:     []uint32{0, 1},
	}
	m := build(t, buf)
	e := m.FindEdge(0, 1)
	require.NotEqual(t, bmesh.None, e)

	for v := range 2 {
		got, err := traverse.Collect[int](m.DiskEdges(v))
		require.NoError(t, err)
		assert.Equal(t, []int{e}, got)
		assert.Equal(t, e, m.NextEdgeAround(e, v))
	}
	assert.Equal(t, bmesh.None, m.NextEdgeAround(e, 7))
	assert.Equal(t, []int{1}, m.VertexGraph().Neighbors(0))
}

func TestDiskEdges_PicksEndpointLink(t *testing.T) {
	m := build(t, quad())
	diag := m.FindEdge(0, 2)

	around0, err := traverse.Collect[int](traverse.VertexEdgeRing(m, 0, diag))
	require.NoError(t, err)
	around2, err := traverse.Collect[int](traverse.VertexEdgeRing(m, 2, diag))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{m.FindEdge(0, 1), diag, m.FindEdge(0, 3)}, around0)
	assert.ElementsMatch(t, []int{m.FindEdge(1, 2), diag, m.FindEdge(2, 3)}, around2)
}

func TestFaceLoops_RemoveUnsupported(t *testing.T) {
	m := build(t, quad())
	it := m.FaceLoops(0)
	assert.ErrorIs(t, it.Remove(), traverse.ErrUnsupported)
}

func TestAddFace_Errors(t *testing.T) {
	m := build(t, quad())

	_, err := m.AddFace(0, 1)
	assert.ErrorIs(t, err, bmesh.ErrDegenerate)
	_, err = m.AddFace(0, 1, 1)
	assert.ErrorIs(t, err, bmesh.ErrDegenerate)
	_, err = m.AddFace(0, 1, 9)
	assert.ErrorIs(t, err, bmesh.ErrNotFound)
	_, _, err = m.AddEdge(2, 2)
	assert.ErrorIs(t, err, bmesh.ErrDegenerate)

	assert.Equal(t, 2, m.Stats().Faces, "failed adds leave the mesh unchanged")
	require.NoError(t, m.Validate())
}

func TestAddFace_Polygon(t *testing.T) {
	m := bmesh.New()
	for i := range 5 {
		m.AddVertex(i)
	}
	f, err := m.AddFace(0, 1, 2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 5, f.Len)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, m.FaceVertices(f.Index()))
	assert.Equal(t, 5, m.Stats().Edges)

	e, created, err := m.AddEdge(4, 0)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, m.RadialLen(e.Index()))
}

func TestKillFace_LeavesWireEdges(t *testing.T) {
	m := build(t, quad())
	require.NoError(t, m.KillFace(0))
	require.NoError(t, m.Validate())

	st := m.Stats()
	assert.Equal(t, 1, st.Faces)
	assert.Equal(t, 3, st.Loops)
	assert.Equal(t, 5, st.Edges)
	assert.Equal(t, 2, st.Wire)
	assert.Equal(t, 1, m.RadialLen(m.FindEdge(0, 2)))

	assert.ErrorIs(t, m.KillFace(0), bmesh.ErrNotFound)
}

func TestKillEdge_RemovesFaces(t *testing.T) {
	m := build(t, quad())
	require.NoError(t, m.KillEdge(m.FindEdge(0, 2)))
	require.NoError(t, m.Validate())

	st := m.Stats()
	assert.Zero(t, st.Faces)
	assert.Zero(t, st.Loops)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, 4, st.Wire)
	assert.Equal(t, 2, m.Degree(0))
}

func TestKillVertex_RemovesStar(t *testing.T) {
	m := build(t, fin())
	require.NoError(t, m.KillVertex(0))
	require.NoError(t, m.Validate())

	st := m.Stats()
	assert.Equal(t, 4, st.Vertices)
	assert.Zero(t, st.Faces)
	assert.Equal(t, 3, st.Edges, "1-2, 1-3 and 1-4 survive as wire")
	assert.Equal(t, 3, st.Wire)
	assert.Equal(t, 3, m.Degree(1))
	assert.ErrorIs(t, m.KillVertex(0), bmesh.ErrNotFound)

	// freed slots are reused and cycles stay consistent
	_, err := m.AddFace(1, 2, 4)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.Stats().Edges)
}

func TestValidate_DetectsCorruption(t *testing.T) {
	m := build(t, quad())
	m.Edges.Get(0).Flags().Set(bmesh.FlagWire, true)
	assert.ErrorIs(t, m.Validate(), bmesh.ErrCorrupt)

	m = build(t, quad())
	m.Loops.Get(0).NextEdgeLoop = 1
	assert.ErrorIs(t, m.Validate(), bmesh.ErrCorrupt)
}

func TestReset_RestoresSentinels(t *testing.T) {
	m := build(t, quad())

	l := m.Loops.Get(0)
	l.Reset()
	assert.False(t, l.Initialized())
	assert.Equal(t, element.NoIndex, l.Index())
	for _, ref := range []int{l.Vert, l.Edge, l.Face, l.NextEdgeLoop, l.PrevEdgeLoop, l.NextFaceLoop, l.PrevFaceLoop} {
		assert.Equal(t, bmesh.None, ref)
	}

	e := m.Edges.Get(0)
	e.Flags().Set(bmesh.FlagWire, true)
	e.Reset()
	assert.False(t, e.Initialized())
	assert.True(t, e.Flags().Empty())
	assert.Equal(t, [2]bmesh.DiskLink{{Prev: bmesh.None, Next: bmesh.None}, {Prev: bmesh.None, Next: bmesh.None}}, e.Disk)
	assert.Equal(t, bmesh.None, e.V1)

	v := m.Vertices.Get(0)
	v.Reset()
	assert.Equal(t, bmesh.None, v.Edge)
	assert.Equal(t, bmesh.None, v.Attr)

	f := m.Faces.Get(0)
	f.Reset()
	assert.Equal(t, bmesh.None, f.Loop)
	assert.Zero(t, f.Len)
	assert.Equal(t, element.BMFace, f.Kind())
}
