// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on skyroute flight graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– Metric:           edge cost dimension (cost.Time by default).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	dist, prev, err := Dijkstra(
//	    g,
//	    Source("DEL"),
//	    WithMetric(cost.Price),
//	    WithReturnPath(),
//	)
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/skyroute/cost"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// Metric           – which edge cost to minimize.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Default math.MaxInt64.
// InfEdgeThreshold – edges with cost ≥ this threshold are impassable. Default math.MaxInt64.
type Options struct {
	Source           string      // The ID of the source vertex
	Metric           cost.Metric // Edge cost dimension
	ReturnPath       bool        // Whether to return the predecessor map
	MaxDistance      int64       // Maximum distance to explore
	InfEdgeThreshold int64       // Cost threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMetric selects the edge cost dimension (cost.Time or cost.Price).
func WithMetric(m cost.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on a non-positive value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Metric:           cost.Time
//   - ReturnPath:       false
//   - MaxDistance:      math.MaxInt64
//   - InfEdgeThreshold: math.MaxInt64
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Metric:           cost.Time,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
