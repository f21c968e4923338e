// Package route is the query boundary of skyroute: it turns (graph, start, goal, metric)
// into a route and its total cost.
//
// Route runs the A* search and then re-derives the total by walking consecutive
// route pairs and looking up the first matching out-edge in iteration order. A pair
// with no matching edge contributes zero; callers that build their own routes should
// be aware that TotalCost does not report such gaps.
//
// Planner wraps the same flow with an injected heuristic and logger, and adds the
// side-by-side comparison of both metrics used by the command-line tool.
package route

import (
	"github.com/katalvlaran/skyroute/astar"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/geo"
)

// Route returns the least-cost route from start to goal under metric, guided by the
// straight-line distance between coords, together with its total cost.
//
// An unknown endpoint, an unreachable goal or an invalid metric yields ([]string{}, 0).
// start == goal yields ([start], 0).
func Route(g *core.Graph, coords geo.Coordinates, start, goal string, metric cost.Metric) ([]string, int64) {
	path := astar.FindPath(g, start, goal,
		astar.WithMetric(metric),
		astar.WithHeuristic(coords.Euclidean()),
	)
	if len(path) == 0 {
		return path, 0
	}

	return path, TotalCost(g, path, metric)
}

// TotalCost sums the metric cost of path. For each consecutive pair (a, b) the first
// out-edge of a that leads to b contributes; a pair without such an edge adds 0.
func TotalCost(g *core.Graph, path []string, metric cost.Metric) int64 {
	if g == nil {
		return 0
	}

	var total int64
	for i := 0; i+1 < len(path); i++ {
		for _, e := range g.Neighbors(path[i]) {
			if e.To == path[i+1] {
				total += cost.EdgeCost(e, metric)
				break
			}
		}
	}

	return total
}
