// Package core provides a thread-safe, in-memory directed multigraph used as the
// flight network for skyroute searches.
//
// The Graph G = (V,E) has these properties:
//
//   - Vertices are opaque, non-empty string IDs ("DEL", "MAA", ...).
//   - Edges are directed and owned by their source vertex; an edge A→B does not
//     imply B→A, and if both exist their costs may differ.
//   - Each edge carries two non-negative integer costs: Price and Time.
//   - Parallel edges between the same ordered pair are kept, in insertion order.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//   - Neighbors(id) returns outgoing edges in insertion order. Search tie-breaking
//     and cost re-derivation both depend on this order.
//   - Vertices() is sorted lexicographically; Edges() is in insertion order.
//
// Unknown vertices:
//
//	Neighbors and NeighborIDs accept any ID; an unknown vertex behaves
//	like a dead end (no outgoing edges). Use HasVertex for explicit membership.
//
// Core Methods:
//
//	AddVertex(id string) error                                    // O(1)
//	HasVertex(id string) bool                                     // O(1)
//	AddEdge(from, to string, price, time int64) (string, error)   // O(1)†
//	Neighbors(id string) []*Edge                                  // O(deg)
//	Vertices() []string                                           // O(V log V)
//	Edges() []*Edge                                               // O(E)
//	Stats() *GraphStats                                           // O(V+E)
//
//	† amortized
//
// Concurrency:
//
//	A graph is built once and then shared read-only between searches. All read
//	methods take read locks, so any number of goroutines may query it at once.
//
// Errors:
//
//	ErrEmptyVertexID, ErrNegativeCost, ErrLoopNotAllowed.
package core
