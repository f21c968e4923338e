package route

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/skyroute/astar"
	"github.com/katalvlaran/skyroute/bfs"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/dijkstra"
	"github.com/katalvlaran/skyroute/geo"
)

// ErrNilGraph indicates that a Planner was built without a graph.
var ErrNilGraph = errors.New("route: graph is nil")

// Answer is the outcome of one Planner query.
type Answer struct {
	From     string
	To       string
	Metric   cost.Metric
	Path     []string // empty if no route exists
	Total    int64    // TotalCost of Path under Metric
	Expanded int      // nodes expanded by the search
}

// Found reports whether the answer carries a route.
func (a Answer) Found() bool { return len(a.Path) > 0 }

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithLogger sets the logger used for query tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithHeuristic replaces the default Euclidean estimate. A nil heuristic selects geo.Zero.
func WithHeuristic(h geo.Heuristic) PlannerOption {
	return func(p *Planner) {
		if h == nil {
			h = geo.Zero
		}
		p.heuristic = h
	}
}

// Planner answers route queries against one immutable graph. It is safe for
// concurrent use as long as the graph is not mutated.
type Planner struct {
	g         *core.Graph
	coords    geo.Coordinates
	heuristic geo.Heuristic
	log       *slog.Logger
}

// NewPlanner returns a Planner over g. Unless overridden, the heuristic is
// coords.Euclidean() and log output is discarded.
func NewPlanner(g *core.Graph, coords geo.Coordinates, opts ...PlannerOption) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Planner{
		g:         g,
		coords:    coords,
		heuristic: coords.Euclidean(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Query finds the route from start to goal under metric.
// Unknown endpoints and unreachable goals are reported as an Answer without a path;
// only an invalid metric or a cancelled ctx produce an error.
func (p *Planner) Query(ctx context.Context, start, goal string, metric cost.Metric) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	p.log.Debug("query", "from", start, "to", goal, "metric", metric)

	res, err := astar.Search(p.g, start, goal,
		astar.WithMetric(metric),
		astar.WithHeuristic(p.heuristic),
	)
	if err != nil {
		return Answer{}, fmt.Errorf("route: %s→%s: %w", start, goal, err)
	}

	ans := Answer{
		From:     start,
		To:       goal,
		Metric:   metric,
		Path:     res.Path,
		Expanded: res.Expanded,
	}
	if ans.Found() {
		ans.Total = TotalCost(p.g, ans.Path, metric)
	}

	p.log.Debug("answer",
		"from", start,
		"to", goal,
		"metric", metric,
		"found", ans.Found(),
		"cost", ans.Total,
		"expanded", ans.Expanded,
	)

	return ans, nil
}

// Compare runs Query once per metric, in cost.Metrics() order.
func (p *Planner) Compare(ctx context.Context, start, goal string) ([]Answer, error) {
	metrics := cost.Metrics()
	out := make([]Answer, 0, len(metrics))
	for _, m := range metrics {
		ans, err := p.Query(ctx, start, goal, m)
		if err != nil {
			return nil, err
		}
		out = append(out, ans)
	}

	return out, nil
}

// Distances returns the least cost from source to every airport under metric,
// computed exhaustively. Unreachable airports map to math.MaxInt64.
func (p *Planner) Distances(source string, metric cost.Metric) (map[string]int64, error) {
	dist, _, err := dijkstra.Dijkstra(p.g, dijkstra.Source(source), dijkstra.WithMetric(metric))
	if err != nil {
		return nil, fmt.Errorf("route: distances from %q: %w", source, err)
	}

	return dist, nil
}

// Reach returns the airports reachable from source in at most maxFlights flights
// (0 means unlimited), with the fewest flights needed for each.
func (p *Planner) Reach(ctx context.Context, source string, maxFlights int) (*bfs.BFSResult, error) {
	res, err := bfs.BFS(p.g, source, bfs.WithContext(ctx), bfs.WithMaxFlights(maxFlights))
	if err != nil {
		return nil, fmt.Errorf("route: reach from %q: %w", source, err)
	}
	p.log.Debug("reach", "from", source, "max_flights", maxFlights, "reached", len(res.Order))

	return res, nil
}

// Graph returns the graph the planner queries.
func (p *Planner) Graph() *core.Graph { return p.g }
