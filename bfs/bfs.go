package bfs

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
)

// queueItem pairs an airport with the flights taken to reach it.
type queueItem struct {
	id      string
	flights int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID, ignoring costs and
// counting flights. Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation, or any
// error returned by OnVisit.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:   make([]string, 0, n),
			Flights: make(map[string]int, n),
			Parent:  make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited, records its flight count and parent, and queues it.
func (w *walker) enqueue(id string, flights int, parent string) {
	w.visited[id] = true
	w.res.Flights[id] = flights
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, flights: flights})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.flights); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxFlights, and enqueues each unseen
// destination in graph order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.flights + 1
	if w.opts.MaxFlights > 0 && next > w.opts.MaxFlights {
		return
	}
	for _, nbr := range w.graph.NeighborIDs(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}
}
