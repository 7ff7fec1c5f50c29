// SPDX-License-Identifier: MIT

package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/element"
	"github.com/katalvlaran/lvmesh/flags"
)

func TestBase_FreshIsUnallocated(t *testing.T) {
	n := newNode()
	assert.Equal(t, element.NoIndex, n.Index())
	assert.False(t, n.Initialized())
	assert.True(t, n.Flags().Empty())
}

func TestBase_IndexModifiedOnlyOnReplacement(t *testing.T) {
	n := newNode()

	n.SetIndex(5)
	assert.True(t, n.Initialized())
	assert.False(t, n.Flags().Get(flags.IndexModified), "first placement must not mark")

	n.SetIndex(5)
	assert.False(t, n.Flags().Get(flags.IndexModified), "same index is not a move")

	n.SetIndex(7)
	assert.Equal(t, 7, n.Index())
	assert.True(t, n.Flags().Get(flags.IndexModified))
}

func TestBase_ResetOrder(t *testing.T) {
	n := newNode()
	n.SetIndex(3)
	n.link = 9
	n.Flags().Set(flags.Selected, true)

	n.Reset()
	assert.True(t, n.releasedWhilePlaced, "Release must observe the element before blanking")
	assert.False(t, n.Initialized())
	assert.Equal(t, element.NoIndex, n.link)
	assert.True(t, n.Flags().Empty())

	// a reset element is placed again without the index-modified mark
	n.SetIndex(11)
	assert.False(t, n.Flags().Get(flags.IndexModified))
}

func TestBase_FlagsAreOwned(t *testing.T) {
	a, b := newNode(), newNode()
	a.Flags().Set(flags.Visited, true)
	assert.False(t, b.Flags().Get(flags.Visited))
	assert.NotSame(t, a.Flags(), b.Flags())
}

func TestKind_FamilyAndRole(t *testing.T) {
	cases := []struct {
		kind   element.Kind
		family element.Family
		role   element.Role
		name   string
	}{
		{element.IFSVertex, element.FamilyIndexed, element.RoleVertex, "ifs.vertex"},
		{element.IFSEdge, element.FamilyIndexed, element.RoleEdge, "ifs.edge"},
		{element.IFSFace, element.FamilyIndexed, element.RoleFace, "ifs.face"},
		{element.HEVertex, element.FamilyHalfEdge, element.RoleVertex, "halfedge.vertex"},
		{element.HEEdge, element.FamilyHalfEdge, element.RoleEdge, "halfedge.edge"},
		{element.HEFace, element.FamilyHalfEdge, element.RoleFace, "halfedge.face"},
		{element.BMVertex, element.FamilyBoundary, element.RoleVertex, "bmesh.vertex"},
		{element.BMEdge, element.FamilyBoundary, element.RoleEdge, "bmesh.edge"},
		{element.BMLoop, element.FamilyBoundary, element.RoleLoop, "bmesh.loop"},
		{element.BMFace, element.FamilyBoundary, element.RoleFace, "bmesh.face"},
		{element.KindNone, element.FamilyNone, element.RoleNone, "none"},
		{element.Kind(200), element.FamilyNone, element.RoleNone, "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.family, tc.kind.Family())
			require.Equal(t, tc.role, tc.kind.Role())
			require.Equal(t, tc.name, tc.kind.String())
		})
	}
}
