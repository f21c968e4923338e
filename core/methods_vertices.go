// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.
// Concurrency:
//   - Mutations under muVert write lock; reads under muVert read lock.

package core

import "golang.org/x/exp/slices"

// AddVertex inserts a vertex with the given id. Adding an existing id is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
