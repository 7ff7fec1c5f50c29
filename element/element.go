// SPDX-License-Identifier: MIT

package element

import "github.com/katalvlaran/lvmesh/flags"

// NoIndex marks an element that has not been placed in storage yet.
const NoIndex = -1

// Indexed is the capability set every mesh element implements.
//
// Initialized() is true exactly when Index() != NoIndex.
// Reset() always performs Release(), then blanks the index, then clears flags.
type Indexed interface {
	Index() int
	SetIndex(i int)
	Flags() *flags.Set
	Kind() Kind
	Initialized() bool
	Release()
	Reset()
}

// Base carries the index and the owned flag set of an element.
// Use NewBase to obtain an unallocated Base; the zero value sits at index 0.
type Base struct {
	index int
	flags flags.Set
}

// NewBase returns an unallocated Base (index NoIndex, no flags).
func NewBase() Base {
	return Base{index: NoIndex}
}

// Index returns the storage index, or NoIndex.
func (b *Base) Index() int { return b.index }

// SetIndex places the element at i. Moving an already placed element to a
// different index raises flags.IndexModified; the first placement does not.
func (b *Base) SetIndex(i int) {
	if b.index != NoIndex && b.index != i {
		b.flags.Set(flags.IndexModified, true)
	}
	b.index = i
}

// Flags returns the element's own flag set.
func (b *Base) Flags() *flags.Set { return &b.flags }

// Initialized reports whether the element has been placed.
func (b *Base) Initialized() bool { return b.index != NoIndex }

// Blank returns the index to NoIndex and clears every flag.
// Concrete Reset implementations call it after their Release.
func (b *Base) Blank() {
	b.index = NoIndex
	b.flags.Clear()
}
