// Package dijkstra implements Dijkstra's single-source shortest-path algorithm on
// skyroute flight graphs.
//
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing outgoing edges under the selected metric. Unlike the A* search it settles
// every reachable vertex, which makes it the reference for distance tables and for
// checking A* optimality.
//
// Notes on implementation choices:
//
//   - We treat any edge with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Metric must be valid (cost.ErrUnknownMetric).
//  4. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !cfg.Metric.Valid() {
		return nil, nil, fmt.Errorf("%w: %d", cost.ErrUnknownMetric, uint8(cfg.Metric))
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare data structures for the algorithm.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 4) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, thresholds, etc.).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for all v, dist[Source] = 0, and pushes Source onto the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its outgoing edges,
// until the heap is empty or the minimum distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve distances to every successor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) {
	var w, newDist int64
	for _, e := range r.g.Neighbors(u) {
		w = cost.EdgeCost(e, r.options.Metric)

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
