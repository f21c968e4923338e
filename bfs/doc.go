// Package bfs provides breadth-first search over a core.Graph, counting flights
// instead of summing costs.
//
// What
//
//   - Explore airports in non-decreasing number of flights from a start airport.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Flights: map from airport → fewest flights from start
//   - Parent: map from airport → its predecessor in the BFS tree
//   - OnVisit hook per airport; returning an error aborts the search.
//   - Allows filtering of individual hops via WithFilterNeighbor.
//   - Honors a MaxFlights limit (n>0) or explicit “no limit” (n==0).
//
// Why
//
//   - Answer "where can I get in at most k flights" in O(V + E).
//   - Reachability checks before running a weighted search.
//
// Determinism
//
//	Neighbors are enqueued in flight insertion order (core.Graph.NeighborIDs),
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "DEL", bfs.WithMaxFlights(1))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, _ := res.PathTo("MAA")
package bfs
