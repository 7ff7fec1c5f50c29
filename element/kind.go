// SPDX-License-Identifier: MIT

package element

// Family identifies one of the three connectivity encodings.
type Family uint8

const (
	FamilyNone     Family = iota
	FamilyIndexed         // indexed face set
	FamilyHalfEdge        // half-edge graph
	FamilyBoundary        // loop-based boundary representation
)

// String returns the short family name.
func (f Family) String() string {
	switch f {
	case FamilyIndexed:
		return "ifs"
	case FamilyHalfEdge:
		return "halfedge"
	case FamilyBoundary:
		return "bmesh"
	default:
		return "none"
	}
}

// Role identifies the topological role an element plays.
type Role uint8

const (
	RoleNone Role = iota
	RoleVertex
	RoleEdge
	RoleFace
	RoleLoop
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleVertex:
		return "vertex"
	case RoleEdge:
		return "edge"
	case RoleFace:
		return "face"
	case RoleLoop:
		return "loop"
	default:
		return "none"
	}
}

// Kind discriminates concrete element types. It is constant per type.
type Kind uint8

const (
	KindNone Kind = iota
	IFSVertex
	IFSEdge
	IFSFace
	HEVertex
	HEEdge
	HEFace
	BMVertex
	BMEdge
	BMLoop
	BMFace
)

type kindInfo struct {
	family Family
	role   Role
}

var kinds = [...]kindInfo{
	KindNone:  {FamilyNone, RoleNone},
	IFSVertex: {FamilyIndexed, RoleVertex},
	IFSEdge:   {FamilyIndexed, RoleEdge},
	IFSFace:   {FamilyIndexed, RoleFace},
	HEVertex:  {FamilyHalfEdge, RoleVertex},
	HEEdge:    {FamilyHalfEdge, RoleEdge},
	HEFace:    {FamilyHalfEdge, RoleFace},
	BMVertex:  {FamilyBoundary, RoleVertex},
	BMEdge:    {FamilyBoundary, RoleEdge},
	BMLoop:    {FamilyBoundary, RoleLoop},
	BMFace:    {FamilyBoundary, RoleFace},
}

func (k Kind) info() kindInfo {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kindInfo{}
}

// Family returns the encoding k belongs to.
func (k Kind) Family() Family { return k.info().family }

// Role returns the topological role of k.
func (k Kind) Role() Role { return k.info().role }

// String renders k as "<family>.<role>", e.g. "bmesh.loop".
func (k Kind) String() string {
	i := k.info()
	if i.family == FamilyNone {
		return "none"
	}
	return i.family.String() + "." + i.role.String()
}
