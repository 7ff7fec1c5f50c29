// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/flags"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start element is not live.
	ErrStartVertexNotFound = errors.New("bfs: start element not found")

	// ErrGraphNil is returned if a nil topology is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotFlagged is returned when WithMarkVisited is used on a topology
	// that does not expose element flags.
	ErrNotFlagged = errors.New("bfs: topology has no flags")
)

// Topology is a slot-addressed element set with an adjacency relation.
// Neighbors may report dead slots; they are skipped.
type Topology interface {
	Slots() int
	Live(id int) bool
	Neighbors(id int) []int
}

// Flagged is implemented by topologies whose elements carry flags.
type Flagged interface {
	Flags(id int) *flags.Set
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when an element is enqueued, before visiting.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before visiting an element.
	OnDequeue func(id, depth int)

	// OnVisit is called when visiting an element. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip adjacencies by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	// MarkVisited clears flags.Visited on every live element, then sets it
	// on each element reached.
	MarkVisited bool

	err error
}

// DefaultOptions returns a BFSOptions with background context, no-op
// hooks, no depth limit, no filtering and no flag marking.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMarkVisited mirrors the reached set into flags.Visited.
func WithMarkVisited() Option {
	return func(o *BFSOptions) { o.MarkVisited = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: elements visited, in visit sequence.
//   - Depth: element → distance (in hops) from the start.
//   - Parent: element → its predecessor in the BFS tree.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start element to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
