// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to carrying price and time, and returns its ID.
// Missing endpoints are created. A second edge between the same ordered pair is kept
// as a separate parallel edge after the first one.
//
// Steps:
//  1. Validate IDs, costs, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, generate eid atomically.
//  4. Store in g.edges, g.order and append to g.out[from].
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrNegativeCost: if price or time is negative.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, price, time int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if price < 0 || time < 0 {
		return "", fmt.Errorf("%w: edge %s→%s price=%d time=%d", ErrNegativeCost, from, to, price, time)
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Price: price, Time: time}

	// 4) Store and link adjacency
	g.edges[eid] = e
	g.order = append(g.order, e)
	g.out[from] = append(g.out[from], e)

	return eid, nil
}

// Edges returns all edges in insertion order. The slice is a copy; the *Edge values
// are shared and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.order)
}

// nextEdgeID returns the next unique textual edge ID ("e1", "e2", ...).
// Safe for concurrent callers; atomic.AddUint64 is used to fetch the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)         // textual prefix
	buf = strconv.AppendUint(buf, n, 10)    // base-10 digits

	return string(buf)
}
