package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/dataset"
	"github.com/katalvlaran/skyroute/geo"
	"github.com/katalvlaran/skyroute/route"
)

// defaultSpeed is the haversine scale in meters per minute, above any airliner's
// ground speed so the estimate stays below real flight times.
const defaultSpeed = 15000

// app holds state shared by all commands.
type app struct {
	dataPath  string
	verbose   bool
	heuristic string
	speed     float64
	log       *slog.Logger
}

// queryFlags are the endpoint and metric selectors shared by route, dot and distances.
type queryFlags struct {
	from   string
	to     string
	metric string
}

func (q *queryFlags) bind(fs *pflag.FlagSet, withTo bool) {
	fs.StringVarP(&q.from, "from", "f", "", "source airport code")
	if withTo {
		fs.StringVarP(&q.to, "to", "t", "", "destination airport code")
	}
	fs.StringVarP(&q.metric, "metric", "m", "", "cost metric: time or price (default both)")
}

// metrics resolves the --metric flag; empty selects every metric.
func (q *queryFlags) metrics() ([]cost.Metric, error) {
	if q.metric == "" {
		return cost.Metrics(), nil
	}
	m, err := cost.ParseMetric(q.metric)
	if err != nil {
		return nil, err
	}

	return []cost.Metric{m}, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	q := &queryFlags{}

	root := &cobra.Command{
		Use:          "skyroute",
		Short:        "Least-cost flight routes by time and price",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoute(cmd, q)
		},
	}
	root.PersistentFlags().StringVarP(&a.dataPath, "data", "d", "", "network YAML file (embedded reference network if empty)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log search details to stderr")
	root.PersistentFlags().StringVar(&a.heuristic, "heuristic", "euclidean", "search estimate: euclidean, haversine or zero")
	root.PersistentFlags().Float64Var(&a.speed, "speed", defaultSpeed, "haversine scale in meters per cost unit")
	q.bind(root.Flags(), true)

	root.AddCommand(
		newRouteCmd(a),
		newDotCmd(a),
		newDistancesCmd(a),
		newReachCmd(a),
	)

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// load returns the --data dataset or the embedded reference network.
func (a *app) load() (*dataset.Dataset, error) {
	if a.dataPath == "" {
		return dataset.Reference(), nil
	}
	d, err := dataset.Load(a.dataPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("dataset loaded", "path", a.dataPath, "airports", len(d.Airports), "flights", len(d.Flights))

	return d, nil
}

// estimate resolves the --heuristic flag over coords.
func (a *app) estimate(coords geo.Coordinates) (geo.Heuristic, error) {
	switch a.heuristic {
	case "", "euclidean":
		return coords.Euclidean(), nil
	case "haversine":
		return coords.Haversine(a.speed), nil
	case "zero":
		return geo.Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want euclidean, haversine or zero)", a.heuristic)
	}
}

// planner builds a Planner over d with the command logger and selected heuristic.
func (a *app) planner(d *dataset.Dataset) (*route.Planner, error) {
	coords := d.Coordinates()
	h, err := a.estimate(coords)
	if err != nil {
		return nil, err
	}
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}
	s := g.Stats()
	a.log.Debug("network",
		"vertices", s.VertexCount,
		"edges", s.EdgeCount,
		"dead_ends", s.DeadEnds,
		"parallel_pairs", s.ParallelPairs,
		"heuristic", a.heuristic)

	return route.NewPlanner(g, coords, route.WithLogger(a.log), route.WithHeuristic(h))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
