// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() keeps insertion order of outgoing edges.
//   - NeighborIDs() returns unique IDs in first-seen order.
// Concurrency:
//   - Read operations hold the muEdgeAdj read lock.

package core

// Neighbors returns the outgoing edges of id in the order they were added.
//
// An unknown vertex and a dead end both yield an empty slice; the search layer
// treats them the same way, so no error is reported.
//
// The returned slice is a copy and may be retained by the caller. The *Edge values
// are shared and must be treated as read-only.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	src := g.out[id]
	if len(src) == 0 {
		return []*Edge{}
	}
	out := make([]*Edge, len(src))
	copy(out, src)

	return out
}

// NeighborIDs returns the unique destination IDs reachable in one hop from id,
// in first-seen order.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) []string {
	edges := g.Neighbors(id)
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		ids = append(ids, e.To)
	}

	return ids
}
