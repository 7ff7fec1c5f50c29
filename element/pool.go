// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"iter"
)

// Handle is a generation-checked reference to a pool slot.
type Handle struct {
	Slot int
	Gen  uint32
}

// Pool is an arena of elements addressed by slot. Released elements are
// reset and kept on a free list; Acquire hands them out again before
// allocating new ones.
//
// Every Release or move bumps the slot generation, so a Handle taken before
// that point no longer resolves.
type Pool[E Indexed] struct {
	items []E
	live  []bool
	gen   []uint32
	free  []int
	count int
	alloc func() E
}

// NewPool returns an empty pool that builds fresh elements with alloc.
// alloc must return an unallocated element (Index() == NoIndex).
func NewPool[E Indexed](alloc func() E) *Pool[E] {
	return &Pool[E]{alloc: alloc}
}

// Acquire places an element in a slot and returns it.
// Complexity: O(1) amortized.
func (p *Pool[E]) Acquire() E {
	var (
		slot int
		e    E
	)
	if n := len(p.free); n > 0 {
		slot = p.free[n-1]
		p.free = p.free[:n-1]
		e = p.items[slot]
	} else {
		slot = len(p.items)
		e = p.alloc()
		p.items = append(p.items, e)
		p.live = append(p.live, false)
		p.gen = append(p.gen, 0)
	}
	p.live[slot] = true
	p.count++
	e.SetIndex(slot)

	return e
}

// Release resets the element at slot and returns the slot to the free list.
// Returns ErrNotLive for free or out-of-range slots.
func (p *Pool[E]) Release(slot int) error {
	if !p.Live(slot) {
		return fmt.Errorf("release slot %d: %w", slot, ErrNotLive)
	}
	p.items[slot].Reset()
	p.live[slot] = false
	p.gen[slot]++
	p.free = append(p.free, slot)
	p.count--

	return nil
}

// Get returns the element stored at slot without checking liveness.
// It panics if slot is out of range.
func (p *Pool[E]) Get(slot int) E {
	return p.items[slot]
}

// Lookup returns the element at slot if the slot is live.
func (p *Pool[E]) Lookup(slot int) (E, bool) {
	if !p.Live(slot) {
		var zero E
		return zero, false
	}
	return p.items[slot], true
}

// Live reports whether slot currently holds a placed element.
func (p *Pool[E]) Live(slot int) bool {
	return slot >= 0 && slot < len(p.items) && p.live[slot]
}

// Handle returns a generation-checked reference to slot.
func (p *Pool[E]) Handle(slot int) Handle {
	if slot < 0 || slot >= len(p.gen) {
		return Handle{Slot: NoIndex}
	}
	return Handle{Slot: slot, Gen: p.gen[slot]}
}

// Resolve returns the element h refers to, or ErrStaleHandle if the slot was
// released, reused or moved since h was taken.
func (p *Pool[E]) Resolve(h Handle) (E, error) {
	if !p.Live(h.Slot) || p.gen[h.Slot] != h.Gen {
		var zero E
		return zero, fmt.Errorf("resolve slot %d gen %d: %w", h.Slot, h.Gen, ErrStaleHandle)
	}
	return p.items[h.Slot], nil
}

// Len returns the number of live elements.
func (p *Pool[E]) Len() int { return p.count }

// Slots returns the number of slots, live or free. Live slots are < Slots().
func (p *Pool[E]) Slots() int { return len(p.items) }

// All yields live slots and their elements in ascending slot order.
func (p *Pool[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for slot, e := range p.items {
			if !p.live[slot] {
				continue
			}
			if !yield(slot, e) {
				return
			}
		}
	}
}

// Clear resets every live element and frees all slots. Storage is kept and
// reused by later Acquire calls.
func (p *Pool[E]) Clear() {
	p.free = p.free[:0]
	for slot := len(p.items) - 1; slot >= 0; slot-- {
		if p.live[slot] {
			p.items[slot].Reset()
			p.live[slot] = false
			p.gen[slot]++
		}
		p.free = append(p.free, slot)
	}
	p.count = 0
}

// Compact moves live elements down over free slots, keeping their relative
// order, and drops the free tail. Each moved element is re-placed with
// SetIndex and therefore carries flags.IndexModified afterwards.
//
// The returned table maps every old slot to its new slot, or NoIndex for
// slots that were free. Callers use it to rewrite connectivity references.
// Complexity: O(Slots()).
func (p *Pool[E]) Compact() []int {
	remap := make([]int, len(p.items))
	next := 0
	for old := range p.items {
		if !p.live[old] {
			remap[old] = NoIndex
			continue
		}
		remap[old] = next
		if old != next {
			p.items[old], p.items[next] = p.items[next], p.items[old]
			p.live[next], p.live[old] = true, false
			p.gen[next]++
			p.gen[old]++
			p.items[next].SetIndex(next)
		}
		next++
	}
	p.items = p.items[:next]
	p.live = p.live[:next]
	p.gen = p.gen[:next]
	p.free = p.free[:0]

	return remap
}
