// SPDX-License-Identifier: MIT

package flags

import (
	"math/bits"
	"strconv"
	"strings"
)

// Bit addresses one position of a Set. Positions must be < Width.
type Bit uint8

// Width is the number of addressable bits in a Set.
const Width = 64

// RoleBits is the first reserved position; bits [0, RoleBits) are role tags.
const RoleBits Bit = 25

// Reserved bits shared by all encodings.
const (
	Virtual Bit = RoleBits + iota
	Visited
	Modified
	Selected
	Culled
	Duplicated
	IndexModified
)

var reservedNames = [...]string{
	"virtual",
	"visited",
	"modified",
	"selected",
	"culled",
	"duplicated",
	"index-modified",
}

// String names reserved bits; role bits print as "role<n>".
func (b Bit) String() string {
	if b >= RoleBits && int(b-RoleBits) < len(reservedNames) {
		return reservedNames[b-RoleBits]
	}
	return "role" + strconv.Itoa(int(b))
}

// Set is a fixed-width bit set. The zero value has every bit cleared.
type Set struct {
	word uint64
}

// Set stores v at position b.
func (s *Set) Set(b Bit, v bool) {
	if v {
		s.word |= 1 << b
		return
	}
	s.word &^= 1 << b
}

// Get reports the value at position b.
func (s *Set) Get(b Bit) bool {
	return s.word&(1<<b) != 0
}

// Clear resets every bit.
func (s *Set) Clear() {
	s.word = 0
}

// Copy returns an independent Set holding the same bits.
func (s *Set) Copy() Set {
	return Set{word: s.word}
}

// Bits returns the raw word.
func (s *Set) Bits() uint64 {
	return s.word
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return bits.OnesCount64(s.word)
}

// Empty reports whether no bit is set.
func (s *Set) Empty() bool {
	return s.word == 0
}

// String lists the set bits in ascending order, e.g. "{role0,visited}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for w := s.word; w != 0; w &= w - 1 {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(Bit(bits.TrailingZeros64(w)).String())
	}
	sb.WriteByte('}')
	return sb.String()
}
