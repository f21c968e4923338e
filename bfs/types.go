// Package bfs provides tunable options and error definitions
// for breadth‐first search over a flight graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting an airport with the number of flights
	// taken to reach it. If it returns an error, BFS aborts and propagates it.
	OnVisit func(id string, flights int) error

	// MaxFlights, if > 0, stops exploring beyond this many flights.
	MaxFlights int

	// FilterNeighbor can skip hops by returning false.
	// Called once per distinct curr→neighbor pair.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no flight limit (MaxFlights == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxFlights:     0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, flights int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxFlights limits the search to airports reachable in at most n flights.
//
//	n > 0: limit to n flights
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxFlights(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxFlights cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxFlights = n
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: airports visited, in visit sequence.
//   - Flights: map from airport to the fewest flights needed from the start.
//   - Parent: map from airport to its predecessor in the BFS tree.
type BFSResult struct {
	Order   []string
	Flights map[string]int
	Parent  map[string]string
}

// PathTo reconstructs the fewest-flights route from the start airport to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Flights[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
