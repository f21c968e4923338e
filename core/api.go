// File: api.go
// Role: Read-only diagnostics on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsLoops   bool // self-loops permitted
	VertexCount   int  // number of vertices
	EdgeCount     int  // number of edges, parallel edges counted
	DeadEnds      int  // vertices without outgoing edges
	ParallelPairs int  // ordered (from, to) pairs carrying more than one edge
}

// Stats produces a deterministic, read-only snapshot of the graph.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags, vertex count and IDs, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges, dead ends and parallel pairs, then release.
//
// Both locks are never held together, so Stats cannot deadlock against mutators.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.order)
	for _, id := range ids {
		edges := g.out[id]
		if len(edges) == 0 {
			stats.DeadEnds++
			continue
		}
		perTarget := make(map[string]int, len(edges))
		for _, e := range edges {
			perTarget[e.To]++
		}
		for _, n := range perTarget {
			if n > 1 {
				stats.ParallelPairs++
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
