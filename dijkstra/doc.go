// Package dijkstra provides single-source shortest paths over a skyroute core.Graph,
// weighing edges by one cost.Metric at a time.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to all
//     vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - Distance tables from one airport to every other airport (route.Planner.Distances).
//   - As the exhaustive baseline that A* results are checked against.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source not set.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source vertex absent from the graph.
//   - ErrBadMaxDistance:  (panic) negative MaxDistance.
//   - ErrBadInfThreshold: (panic) non-positive InfEdgeThreshold.
//   - cost.ErrUnknownMetric: metric outside {Time, Price}.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist: map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev: map[v] = immediate predecessor of v, or "" for Source/unreachable.
//	          Nil if ReturnPath=false.
//
// Thread safety:
//
//   - A call allocates its own state; concurrent calls on one graph are safe as long
//     as the graph is not mutated meanwhile.
package dijkstra
