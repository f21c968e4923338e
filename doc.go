// Package skyroute finds least-cost flight routes between airports, by elapsed
// time or by ticket price, with an A* search guided by airport coordinates.
//
// 🚀 What is skyroute?
//
//	A small, thread-safe routing library plus a thin command-line tool:
//		• Graph: directed flight multigraph with ordered out-edges (core)
//		• Metrics: time in minutes, price in rupees (cost)
//		• Heuristic: straight-line distance between coordinates (geo)
//		• Search: A* with deterministic tie-breaking and route rebuild (astar)
//		• Facade: route + total cost, planner with logging (route)
//		• Baseline: exhaustive single-source Dijkstra (dijkstra)
//		• Reach: fewest flights between airports (bfs)
//		• Data: YAML network files and the embedded reference network (dataset)
//		• Export: Graphviz DOT with highlighted routes (render)
//
// ✨ Guarantees
//
//   - Unknown airports and unreachable goals are empty routes, never errors.
//   - A route from an airport to itself is [airport] with cost 0.
//   - Repeated queries give identical routes; queries may run concurrently.
//   - Optimal whenever the heuristic never overestimates the remaining cost.
//     The distance heuristic meets this for time on the reference network; under
//     price it is only a guide, use geo.Zero when optimality must be guaranteed.
//
// Layout:
//
//	core/         - Graph, Vertex, Edge; thread-safe primitives
//	cost/         - Metric and per-edge cost selection
//	geo/          - Coordinates, Euclidean and haversine heuristics
//	astar/        - Search, FindPath, Reconstruct
//	route/        - Route, TotalCost, Planner
//	dijkstra/     - distance tables and optimality reference
//	bfs/          - fewest-flights reachability
//	dataset/      - YAML loading, reference network
//	render/       - DOT export
//	cmd/skyroute/ - interactive and scripted CLI
//
// Quick example:
//
//	d := dataset.Reference()
//	g, _ := d.Graph()
//	path, minutes := route.Route(g, d.Coordinates(), "DEL", "MAA", cost.Time)
//	// path = [DEL MP MAA], minutes = 200
//
//	go install github.com/katalvlaran/skyroute/cmd/skyroute@latest
package skyroute
