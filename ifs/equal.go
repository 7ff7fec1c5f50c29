// SPDX-License-Identifier: MIT

package ifs

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmesh/element"
)

// Tier names the rule a Key was derived from.
type Tier uint8

const (
	TierIdentity     Tier = iota // unplaced, uninitialized: instance serial
	TierIndex                    // initialized: storage index
	TierConnectivity             // fully placed: sorted vertex tuple
)

// Key is the comparable identity of an element. Unused tuple slots are -1.
type Key struct {
	Kind    element.Kind
	Tier    Tier
	A, B, C int
	Serial  uint64
}

// Element is an ifs element with a Key.
type Element interface {
	element.Indexed
	Key() Key
}

// EdgeKey returns the connectivity key of the edge {a, b}.
func EdgeKey(a, b int) Key {
	if a > b {
		a, b = b, a
	}
	return Key{Kind: element.IFSEdge, Tier: TierConnectivity, A: a, B: b, C: element.NoIndex}
}

// FaceKey returns the connectivity key of the face {a, b, c}.
func FaceKey(a, b, c int) Key {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Key{Kind: element.IFSFace, Tier: TierConnectivity, A: a, B: b, C: c}
}

func indexKey(k element.Kind, index int) Key {
	return Key{Kind: k, Tier: TierIndex, A: index, B: element.NoIndex, C: element.NoIndex}
}

func identityKey(k element.Kind, serial uint64) Key {
	return Key{Kind: k, Tier: TierIdentity, A: element.NoIndex, B: element.NoIndex, C: element.NoIndex, Serial: serial}
}

// Key returns the vertex identity: index when initialized, else instance.
func (v *Vertex) Key() Key {
	if v.Initialized() {
		return indexKey(element.IFSVertex, v.Index())
	}
	return identityKey(element.IFSVertex, v.serial)
}

// Key returns the edge identity (connectivity, index, then instance).
func (e *Edge) Key() Key {
	switch {
	case e.Placed():
		return EdgeKey(e.V0, e.V1)
	case e.Initialized():
		return indexKey(element.IFSEdge, e.Index())
	default:
		return identityKey(element.IFSEdge, e.serial)
	}
}

// Key returns the face identity (connectivity, index, then instance).
func (f *Face) Key() Key {
	switch {
	case f.Placed():
		return FaceKey(f.I0, f.I1, f.I2)
	case f.Initialized():
		return indexKey(element.IFSFace, f.Index())
	default:
		return identityKey(element.IFSFace, f.serial)
	}
}

// Hash returns a 64-bit hash of k.
func (k Key) Hash() uint64 {
	var buf [34]byte
	buf[0] = byte(k.Kind)
	buf[1] = byte(k.Tier)
	binary.LittleEndian.PutUint64(buf[2:], uint64(k.A))
	binary.LittleEndian.PutUint64(buf[10:], uint64(k.B))
	binary.LittleEndian.PutUint64(buf[18:], uint64(k.C))
	binary.LittleEndian.PutUint64(buf[26:], k.Serial)

	return xxhash.Sum64(buf[:])
}

// Equal reports whether a and b denote the same element. Nil never equals
// anything.
func Equal(a, b Element) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Key() == b.Key()
}

// Equal reports whether v and o are the same vertex.
func (v *Vertex) Equal(o *Vertex) bool { return o != nil && v.Key() == o.Key() }

// Equal reports whether e and o join the same vertices (or share an index).
func (e *Edge) Equal(o *Edge) bool { return o != nil && e.Key() == o.Key() }

// Equal reports whether f and o span the same vertices (or share an index).
func (f *Face) Equal(o *Face) bool { return o != nil && f.Key() == o.Key() }

// Hash returns the hash of the vertex Key.
func (v *Vertex) Hash() uint64 { return v.Key().Hash() }

// Hash returns the hash of the edge Key.
func (e *Edge) Hash() uint64 { return e.Key().Hash() }

// Hash returns the hash of the face Key.
func (f *Face) Hash() uint64 { return f.Key().Hash() }
