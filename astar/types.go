// Package astar defines core types and configuration options for the A* search.
//
// Options:
//
//	– Metric:    cost dimension used to weigh edges (cost.Time by default).
//	– Heuristic: remaining-cost estimate toward the goal (geo.Zero by default).
//	– OnExpand:  optional hook invoked for every node taken off the frontier.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– cost.ErrUnknownMetric if the metric is not Time or Price.
//
// Unknown endpoints and unreachable goals are not errors: they produce an empty Result.
package astar

import (
	"errors"

	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/geo"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
var ErrNilGraph = errors.New("astar: graph is nil")

// Result is the outcome of a single search.
//
// Found distinguishes a trivial self-route ([start], Found=true) from "no route"
// (empty Path, Found=false); Path length alone is not enough to tell them apart
// when the predecessor table is reconstructed from an isolated node.
type Result struct {
	Path     []string // start … goal inclusive; empty if no route exists
	Found    bool     // true iff goal was taken off the frontier
	Cost     int64    // best-known cost of the goal under the active metric; 0 if !Found
	Expanded int      // number of non-stale frontier pops
}

// Options configures the behavior of the A* search.
type Options struct {
	Metric    cost.Metric              // edge cost dimension
	Heuristic geo.Heuristic            // estimate toward the goal
	OnExpand  func(id string, g int64) // hook per expanded node; may be nil
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMetric selects the edge cost dimension.
func WithMetric(m cost.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithHeuristic sets the remaining-cost estimate. A nil heuristic resets to geo.Zero.
func WithHeuristic(h geo.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = geo.Zero
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a hook called with each expanded node and its cost from start,
// in expansion order.
func WithOnExpand(fn func(id string, g int64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Metric:    cost.Time
//   - Heuristic: geo.Zero
//   - OnExpand:  nil
func DefaultOptions() Options {
	return Options{
		Metric:    cost.Time,
		Heuristic: geo.Zero,
	}
}
