package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
)

// Search runs A* from start to goal on g and returns the route with its search cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. The metric must be Time or Price (cost.ErrUnknownMetric).
//
// Unknown start or goal, and an exhausted frontier, both yield an empty Result and a nil error.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with a consistent heuristic; revisits may add pops otherwise.
//   - Space: O(V + E)
func Search(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !cfg.Metric.Valid() {
		return Result{}, fmt.Errorf("%w: %d", cost.ErrUnknownMetric, uint8(cfg.Metric))
	}

	// 3) Unknown endpoints are a plain "no route".
	if !g.HasVertex(start) || !g.HasVertex(goal) {
		return Result{}, nil
	}

	// 4) Fresh state per query.
	n := g.VertexCount()
	r := &runner{
		g:     g,
		opts:  cfg,
		goal:  goal,
		best:  make(map[string]int64, n),
		prev:  make(map[string]string, n),
		front: make(frontier, 0, n),
	}
	r.init(start)

	if !r.process() {
		return Result{Expanded: r.expanded}, nil
	}

	return Result{
		Path:     Reconstruct(r.prev, goal),
		Found:    true,
		Cost:     r.best[goal],
		Expanded: r.expanded,
	}, nil
}

// FindPath returns the route from start to goal, or an empty route if none exists or
// the inputs are invalid.
func FindPath(g *core.Graph, start, goal string, opts ...Option) []string {
	res, err := Search(g, start, goal, opts...)
	if err != nil || !res.Found {
		return []string{}
	}

	return res.Path
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *core.Graph       // read-only input graph
	opts     Options           // metric, heuristic, hooks
	goal     string            // target vertex
	best     map[string]int64  // vertex → best-known cost from start (absent = ∞)
	prev     map[string]string // vertex → predecessor on the cheapest known path
	front    frontier          // min-heap of entries ordered by (f, seq)
	seq      uint64            // insertion counter for FIFO tie-breaking
	expanded int               // non-stale pops
}

// init records best[start] = 0 and pushes start with priority h(start, goal).
func (r *runner) init(start string) {
	r.best[start] = 0
	heap.Init(&r.front)
	r.push(start, 0)
}

// process pops entries until the goal is taken off the frontier (true) or the
// frontier empties (false).
//
// There is no closed set: a vertex already expanded is expanded again if a strictly
// cheaper cost for it is found later. Entries whose recorded cost is above the
// vertex's current best were superseded by a re-insertion and are dropped.
func (r *runner) process() bool {
	for r.front.Len() > 0 {
		item := heap.Pop(&r.front).(*entry)

		// 1) Lazy deletion of superseded entries.
		if item.g > r.best[item.id] {
			continue
		}

		// 2) Goal popped: the search is complete.
		if item.id == r.goal {
			return true
		}

		r.expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(item.id, item.g)
		}

		// 3) Relax outgoing edges.
		r.relax(item.id)
	}

	return false
}

// relax examines every outgoing edge of u in graph order. A neighbor is updated when it
// has no recorded cost or the tentative cost is strictly lower; it is then (re)inserted.
func (r *runner) relax(u string) {
	gu := r.best[u]
	for _, e := range r.g.Neighbors(u) {
		tentative := saturatingAdd(gu, cost.EdgeCost(e, r.opts.Metric))
		if old, seen := r.best[e.To]; seen && tentative >= old {
			continue
		}
		r.best[e.To] = tentative
		r.prev[e.To] = u
		r.push(e.To, tentative)
	}
}

// push inserts id with cost g and priority g + h(id, goal).
func (r *runner) push(id string, g int64) {
	r.seq++
	heap.Push(&r.front, &entry{
		id:  id,
		g:   g,
		f:   saturatingAdd(g, r.opts.Heuristic(id, r.goal)),
		seq: r.seq,
	})
}

// saturatingAdd returns a+b for non-negative operands, clamped to math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	if b < 0 {
		b = 0
	}
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// entry is a frontier element: a vertex with the cost it was inserted with.
type entry struct {
	id  string // vertex ID
	g   int64  // cost from start at insertion time
	f   int64  // priority: g + h(id, goal), saturated
	seq uint64 // insertion order
}

// frontier is a min-heap of *entry ordered by f, then g, then insertion order.
// Stale entries stay in the heap until popped ("lazy decrease-key").
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by cost from start, then by insertion order.
// The cost key keeps saturated priorities (goal without a coordinate) in cost order.
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	if f[i].g != f[j].g {
		return f[i].g < f[j].g
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new entry; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
