package astar_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/skyroute/astar"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildReference returns the five-airport reference network and its coordinates.
// HYD has a coordinate but no flights, so it is not part of the graph.
func buildReference(t testing.TB) (*core.Graph, geo.Coordinates) {
	t.Helper()
	g := core.NewGraph()
	flights := []struct {
		from, to    string
		price, time int64
	}{
		{"DEL", "BLR", 7000, 180}, {"DEL", "MP", 3000, 75}, {"DEL", "CCU", 6000, 125},
		{"BLR", "DEL", 8000, 180}, {"BLR", "MP", 7500, 125}, {"BLR", "MAA", 3000, 60},
		{"MP", "DEL", 5000, 90}, {"MP", "CCU", 8000, 120}, {"MP", "MAA", 5500, 125},
		{"CCU", "DEL", 6000, 150}, {"CCU", "MP", 4000, 160}, {"CCU", "MAA", 4600, 130},
		{"MAA", "BLR", 2500, 60}, {"MAA", "MP", 8000, 140}, {"MAA", "CCU", 10000, 130},
	}
	for _, f := range flights {
		_, err := g.AddEdge(f.from, f.to, f.price, f.time)
		require.NoError(t, err)
	}
	coords := geo.Coordinates{
		"DEL": {Lat: 28.6139, Lon: 77.2090},
		"CCU": {Lat: 22.5726, Lon: 88.3639},
		"MP":  {Lat: 23.2599, Lon: 77.4126},
		"BLR": {Lat: 12.9716, Lon: 77.5946},
		"HYD": {Lat: 17.3850, Lon: 78.4867},
		"MAA": {Lat: 13.0827, Lon: 80.2707},
	}

	return g, coords
}

// pathCost sums the cheapest parallel edge per hop under m.
func pathCost(g *core.Graph, path []string, m cost.Metric) int64 {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		best := int64(-1)
		for _, e := range g.Neighbors(path[i]) {
			if e.To != path[i+1] {
				continue
			}
			if c := cost.EdgeCost(e, m); best < 0 || c < best {
				best = c
			}
		}
		total += best
	}

	return total
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := astar.Search(nil, "A", "B")
	assert.ErrorIs(t, err, astar.ErrNilGraph)
	assert.Empty(t, astar.FindPath(nil, "A", "B"))
}

func TestSearch_UnknownMetric(t *testing.T) {
	g, _ := buildReference(t)
	_, err := astar.Search(g, "DEL", "MAA", astar.WithMetric(cost.Metric(42)))
	assert.ErrorIs(t, err, cost.ErrUnknownMetric)
}

func TestSearch_UnknownEndpoints(t *testing.T) {
	g, coords := buildReference(t)
	h := astar.WithHeuristic(coords.Euclidean())

	for _, tc := range []struct{ start, goal string }{
		{"XXX", "DEL"},
		{"DEL", "XXX"},
		{"HYD", "DEL"}, // coordinate but no vertex
		{"XXX", "XXX"},
		{"", "DEL"},
	} {
		res, err := astar.Search(g, tc.start, tc.goal, h)
		require.NoError(t, err)
		assert.False(t, res.Found, "%s→%s", tc.start, tc.goal)
		assert.Empty(t, res.Path, "%s→%s", tc.start, tc.goal)
		assert.Zero(t, res.Cost)
		assert.Empty(t, astar.FindPath(g, tc.start, tc.goal, h))
	}
}

// ------------------------------------------------------------------------
// 2. Reference network scenarios
// ------------------------------------------------------------------------

func TestSearch_ReferenceByTime(t *testing.T) {
	g, coords := buildReference(t)
	res, err := astar.Search(g, "DEL", "MAA",
		astar.WithMetric(cost.Time),
		astar.WithHeuristic(coords.Euclidean()),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	// DEL→MP→MAA = 75+125 beats DEL→BLR→MAA = 240 and DEL→CCU→MAA = 255.
	assert.Equal(t, []string{"DEL", "MP", "MAA"}, res.Path)
	assert.Equal(t, int64(200), res.Cost)
	assert.Equal(t, 4, res.Expanded) // DEL, MP, CCU, BLR
}

func TestSearch_ReferenceByPrice(t *testing.T) {
	g, coords := buildReference(t)
	path := astar.FindPath(g, "DEL", "MAA",
		astar.WithMetric(cost.Price),
		astar.WithHeuristic(coords.Euclidean()),
	)
	assert.Equal(t, []string{"DEL", "MP", "MAA"}, path)
	assert.Equal(t, int64(8500), pathCost(g, path, cost.Price))
}

func TestSearch_MetricIndependence(t *testing.T) {
	g, coords := buildReference(t)
	h := astar.WithHeuristic(coords.Euclidean())

	byTime, err := astar.Search(g, "MAA", "DEL", astar.WithMetric(cost.Time), h)
	require.NoError(t, err)
	byPrice, err := astar.Search(g, "MAA", "DEL", astar.WithMetric(cost.Price), h)
	require.NoError(t, err)

	assert.Equal(t, []string{"MAA", "MP", "DEL"}, byTime.Path)
	assert.Equal(t, int64(230), byTime.Cost)
	assert.Equal(t, []string{"MAA", "BLR", "DEL"}, byPrice.Path)
	assert.Equal(t, int64(10500), byPrice.Cost)
}

func TestSearch_SelfPath(t *testing.T) {
	g, coords := buildReference(t)
	for _, m := range cost.Metrics() {
		res, err := astar.Search(g, "DEL", "DEL",
			astar.WithMetric(m),
			astar.WithHeuristic(coords.Euclidean()),
		)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, []string{"DEL"}, res.Path)
		assert.Zero(t, res.Cost)
		assert.Zero(t, res.Expanded)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g, coords := buildReference(t)
	first, err := astar.Search(g, "BLR", "CCU", astar.WithHeuristic(coords.Euclidean()))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := astar.Search(g, "BLR", "CCU", astar.WithHeuristic(coords.Euclidean()))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ------------------------------------------------------------------------
// 3. No path, dead ends
// ------------------------------------------------------------------------

func TestSearch_NoPath(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("B", "A", 1, 1)
	_, _ = g.AddEdge("C", "D", 1, 1)
	_, _ = g.AddEdge("D", "A", 1, 1) // one-way into the A/B island

	res, err := astar.Search(g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 2, res.Expanded)

	// The opposite direction exists.
	assert.Equal(t, []string{"D", "A", "B"}, astar.FindPath(g, "D", "B"))
}

func TestSearch_DeadEndStart(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 1)

	res, err := astar.Search(g, "B", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Expanded)
}

// ------------------------------------------------------------------------
// 4. Frontier behavior: tie-breaks, revisits, stale entries, sentinel heuristic
// ------------------------------------------------------------------------

func TestSearch_TieBreakFollowsInsertionOrder(t *testing.T) {
	build := func(first, second string) *core.Graph {
		g := core.NewGraph()
		_, _ = g.AddEdge("S", first, 1, 1)
		_, _ = g.AddEdge("S", second, 1, 1)
		_, _ = g.AddEdge("A", "G", 1, 1)
		_, _ = g.AddEdge("B", "G", 1, 1)

		return g
	}

	assert.Equal(t, []string{"S", "A", "G"}, astar.FindPath(build("A", "B"), "S", "G"))
	assert.Equal(t, []string{"S", "B", "G"}, astar.FindPath(build("B", "A"), "S", "G"))
}

func TestSearch_RevisitsOnCheaperCost(t *testing.T) {
	// The estimate for B overshoots, so A is expanded through the expensive edge first
	// and again after B reveals the cheaper way in.
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "A", 0, 10)
	_, _ = g.AddEdge("S", "B", 0, 1)
	_, _ = g.AddEdge("B", "A", 0, 1)
	_, _ = g.AddEdge("A", "G", 0, 100)
	h := func(from, _ string) int64 {
		if from == "B" {
			return 100
		}
		return 0
	}

	type visit struct {
		id string
		g  int64
	}
	var order []visit
	res, err := astar.Search(g, "S", "G",
		astar.WithHeuristic(h),
		astar.WithOnExpand(func(id string, g int64) { order = append(order, visit{id, g}) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A", "G"}, res.Path)
	assert.Equal(t, int64(102), res.Cost)
	assert.Equal(t, []visit{{"S", 0}, {"A", 10}, {"B", 1}, {"A", 2}}, order)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_MissingGoalCoordinateFallsBackToCostOrder(t *testing.T) {
	// Without a coordinate for the goal every priority saturates, so entries pop by
	// cost from start; BLR's later offer of 240 for MAA is not an improvement.
	g, coords := buildReference(t)
	delete(coords, "MAA")

	var expanded []string
	res, err := astar.Search(g, "DEL", "MAA",
		astar.WithHeuristic(coords.Euclidean()),
		astar.WithOnExpand(func(id string, _ int64) { expanded = append(expanded, id) }),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"DEL", "MP", "MAA"}, res.Path)
	assert.Equal(t, int64(200), res.Cost)
	assert.Equal(t, []string{"DEL", "MP", "CCU", "BLR"}, expanded)
}

func TestSearch_MissingGoalCoordinateStaysOptimal(t *testing.T) {
	// The direct flight is queued first; the three-hop route is found later but
	// is far cheaper and must win.
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "G", 100, 100)
	_, _ = g.AddEdge("S", "A", 1, 1)
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("B", "G", 1, 1)
	coords := geo.Coordinates{
		"S": {Lat: 0, Lon: 0},
		"A": {Lat: 0, Lon: 0.5},
		"B": {Lat: 0, Lon: 0.7},
	}

	for _, m := range cost.Metrics() {
		res, err := astar.Search(g, "S", "G",
			astar.WithMetric(m),
			astar.WithHeuristic(coords.Euclidean()),
		)
		require.NoError(t, err, m.String())
		assert.Equal(t, []string{"S", "A", "B", "G"}, res.Path, m.String())
		assert.Equal(t, int64(3), res.Cost, m.String())
	}
}

func TestSearch_EqualPriorityPrefersLowerCost(t *testing.T) {
	// X and Y share priority 10; X is queued later but is cheaper, so it pops first.
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "Y", 0, 9)
	_, _ = g.AddEdge("S", "X", 0, 2)
	_, _ = g.AddEdge("X", "G", 0, 8)
	h := func(from, _ string) int64 {
		switch from {
		case "X":
			return 8
		case "Y":
			return 1
		}
		return 0
	}

	var order []string
	res, err := astar.Search(g, "S", "G",
		astar.WithHeuristic(h),
		astar.WithOnExpand(func(id string, _ int64) { order = append(order, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path)
	assert.Equal(t, []string{"S", "X", "Y"}, order)
}

func TestSearch_MissingNodeCoordinateDeprioritizes(t *testing.T) {
	// MP has no coordinate: it sorts behind every finite priority, and the goal is
	// reached via BLR before MP is ever expanded.
	g, coords := buildReference(t)
	delete(coords, "MP")

	var expanded []string
	res, err := astar.Search(g, "DEL", "MAA",
		astar.WithHeuristic(coords.Euclidean()),
		astar.WithOnExpand(func(id string, _ int64) { expanded = append(expanded, id) }),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"DEL", "BLR", "MAA"}, res.Path)
	assert.Equal(t, int64(240), res.Cost)
	assert.NotContains(t, expanded, "MP")
}

func TestSearch_ZeroCostEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0, 0)
	_, _ = g.AddEdge("B", "A", 0, 0)
	_, _ = g.AddEdge("B", "C", 0, 0)

	res, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestSearch_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0, 0)
	_, _ = g.AddEdge("A", "B", 5, 5)
	_, _ = g.AddEdge("B", "B", 1, 1)
	_, _ = g.AddEdge("B", "C", 5, 5)

	var order []string
	res, err := astar.Search(g, "A", "C",
		astar.WithOnExpand(func(id string, _ int64) { order = append(order, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, int64(10), res.Cost)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestSearch_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 900, 50)
	_, _ = g.AddEdge("A", "B", 100, 90)

	byTime, err := astar.Search(g, "A", "B", astar.WithMetric(cost.Time))
	require.NoError(t, err)
	byPrice, err := astar.Search(g, "A", "B", astar.WithMetric(cost.Price))
	require.NoError(t, err)

	assert.Equal(t, int64(50), byTime.Cost)
	assert.Equal(t, int64(100), byPrice.Cost)
}

func TestWithHeuristic_NilResetsToZero(t *testing.T) {
	opts := astar.DefaultOptions()
	astar.WithHeuristic(nil)(&opts)
	require.NotNil(t, opts.Heuristic)
	assert.Zero(t, opts.Heuristic("A", "B"))
	assert.Equal(t, cost.Time, opts.Metric)
}

// ------------------------------------------------------------------------
// 5. Concurrency
// ------------------------------------------------------------------------

func TestSearch_ConcurrentQueries(t *testing.T) {
	g, coords := buildReference(t)
	nodes := g.Vertices()

	want := make(map[string]astar.Result)
	for _, s := range nodes {
		for _, d := range nodes {
			res, err := astar.Search(g, s, d, astar.WithHeuristic(coords.Euclidean()))
			require.NoError(t, err)
			want[s+">"+d] = res
		}
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]map[string]astar.Result, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			got := make(map[string]astar.Result)
			for _, s := range nodes {
				for _, d := range nodes {
					res, _ := astar.Search(g, s, d, astar.WithHeuristic(coords.Euclidean()))
					got[s+">"+d] = res
				}
			}
			results[w] = got
		}(w)
	}
	wg.Wait()
	for w, got := range results {
		assert.Equal(t, want, got, fmt.Sprintf("worker %d", w))
	}
}
