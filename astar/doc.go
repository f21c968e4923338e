// Package astar implements informed best-first (A*) route search over a core.Graph.
//
// Overview:
//
//   - Search computes a least-cost route from a start vertex to a goal vertex under one
//     cost metric (cost.Time or cost.Price), guided by a geo.Heuristic.
//   - The frontier is a min-heap ordered by bestCost[n] + h(n, goal).
//   - Relaxation is strict: a neighbor is updated only if it has no recorded cost or the
//     tentative cost is strictly lower.
//   - The route is rebuilt from the predecessor table by Reconstruct.
//
// Tie-breaking:
//
//	Entries with equal priority pop by lower cost from start first, then in insertion
//	order (FIFO). Neighbors are relaxed in
//	core.Graph.Neighbors order, i.e. edge insertion order, so identical inputs always
//	produce identical routes.
//
// Revisits:
//
//	No vertex is ever marked closed. When a strictly cheaper cost is found for a vertex
//	that was already expanded, it is re-inserted and expanded again. Improvements use
//	re-insertion instead of decrease-key; superseded entries are skipped when popped.
//	With non-negative costs every update strictly lowers a cost, so the search terminates.
//
// Heuristic saturation:
//
//	A vertex whose estimate is geo.Unbounded gets priority math.MaxInt64 and is explored
//	only after every vertex with a finite priority. Sums never overflow. When the goal
//	itself has no coordinate every priority saturates, and the cost tie-break turns the
//	search into Dijkstra order, so the route stays optimal.
//
// Optimality:
//
//	Routes are optimal when the heuristic never overestimates the remaining cost. The
//	Euclidean coordinate heuristic gives no such guarantee under cost.Price; use geo.Zero
//	for guaranteed price optimality.
//
// Outcomes:
//
//	Unknown start or goal, and an unreachable goal, return an empty Result with a nil
//	error. start == goal returns the route [start] with cost 0. Only a nil graph or an
//	invalid metric is reported as an error.
//
// Concurrency:
//
//	Every call allocates its own cost, predecessor and frontier state; concurrent searches
//	over one shared graph are safe.
//
// Example:
//
//	res, err := astar.Search(g, "DEL", "MAA",
//	    astar.WithMetric(cost.Time),
//	    astar.WithHeuristic(coords.Euclidean()),
//	)
package astar
