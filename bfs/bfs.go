// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmesh/flags"
)

// queueItem pairs an element with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state. visited is indexed by slot and
// may be shared across several walks by Components.
type walker struct {
	graph   Topology
	marks   Flagged
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNotFlagged when marking is
// requested on an unflagged topology, or any user-supplied hook error.
func BFS(g Topology, start int, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.Live(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	w.res = newResult(g.Slots())

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Components partitions the live elements of g into connected islands.
// Islands are seeded in ascending slot order; each lists its elements in
// BFS order from the seed. Hooks, filtering and marking apply as in BFS;
// MaxDepth is ignored.
func Components(g Topology, opts ...Option) ([][]int, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.opts.MaxDepth = 0

	var islands [][]int
	for id := range g.Slots() {
		if !g.Live(id) || w.visited[id] {
			continue
		}
		w.res = newResult(0)
		w.enqueue(id, 0, -1)
		if err := w.loop(); err != nil {
			return islands, err
		}
		islands = append(islands, w.res.Order)
	}
	return islands, nil
}

func newWalker(g Topology, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make([]bool, g.Slots()),
	}
	if o.MarkVisited {
		marks, ok := g.(Flagged)
		if !ok {
			return nil, ErrNotFlagged
		}
		w.marks = marks
		for id := range g.Slots() {
			if g.Live(id) {
				marks.Flags(id).Set(flags.Visited, false)
			}
		}
	}
	return w, nil
}

func newResult(n int) *BFSResult {
	return &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
}

// enqueue marks id visited at depth d, records its parent (none when
// negative), calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	if w.marks != nil {
		w.marks.Flags(id).Set(flags.Visited, true)
	}
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the element in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen live neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.graph.Live(nbr) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}
}
