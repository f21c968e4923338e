// Package core defines the central Graph, Vertex, and Edge types of skyroute,
// and provides thread-safe primitives for building and querying flight networks.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a graph built once can be queried from
// many goroutines at the same time.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrNegativeCost    - edge price or time is negative.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeCost indicates a negative price or time was provided for an edge.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents an airport (or any node) in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex, e.g. "DEL".
	ID string
}

// Edge represents a one-way connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To and two independent costs:
// Price (monetary) and Time (elapsed minutes). Both are non-negative.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Price is the monetary cost of traversing the edge.
	Price int64

	// Time is the elapsed time of traversing the edge.
	Time int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the vertex and edge catalogs.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make(map[string]*Vertex, vertices)
			g.out = make(map[string][]*Edge, vertices)
		}
		if edges > 0 {
			g.edges = make(map[string]*Edge, edges)
			g.order = make([]*Edge, 0, edges)
		}
	}
}

// Graph is the core in-memory directed multigraph.
//
// Parallel edges between the same ordered pair are always permitted and kept
// in insertion order; an edge A→B never implies B→A.
// muVert protects vertices; muEdgeAdj protects edges, order and out.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, order and out

	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge
	order      []*Edge            // all edges in insertion order

	// out[from] lists outgoing edges of from in insertion order.
	out map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
