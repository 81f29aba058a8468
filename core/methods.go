package core

import "sort"

// AddVertex ensures a vertex with the given ID exists.
// Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]*Edge)
}

// AddEdge inserts the directed edge u→v, creating missing endpoints.
//
// Policy (applied consistently across the module):
//   - u == v is rejected with ErrSelfLoop.
//   - capacity < MinCapacity is clamped to MinCapacity.
//   - an existing u→v edge is overwritten — parallel edges are not modeled.
//
// Complexity: O(1)
func (g *Graph) AddEdge(u, v string, capacity int64, opts ...EdgeOption) error {
	if u == v {
		return ErrSelfLoop
	}
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	g.AddVertex(u)
	g.AddVertex(v)

	e := &Edge{From: u, To: v, Capacity: capacity, CanAttack: true}
	for _, opt := range opts {
		opt(e)
	}
	g.adjacency[u][v] = e

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether the edge u→v exists.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// Edge returns a copy of the edge u→v, or ErrEdgeNotFound.
func (g *Graph) Edge(u, v string) (Edge, error) {
	e, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}
	return *e, nil
}

// Capacity returns the current capacity of the edge u→v,
// or ErrEdgeNotFound.
func (g *Graph) Capacity(u, v string) (int64, error) {
	e, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return e.Capacity, nil
}

// ReduceCapacity lowers the capacity of u→v by amount, floored at
// MinCapacity: capacity ← max(MinCapacity, capacity−amount).
// amount ≤ 0 leaves the edge unchanged.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1)
func (g *Graph) ReduceCapacity(u, v string, amount int64) error {
	e, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	if amount <= 0 {
		return nil
	}
	e.Capacity -= amount
	if e.Capacity < MinCapacity {
		e.Capacity = MinCapacity
	}

	return nil
}

// TotalCapacity sums the capacities of all edges.
// Complexity: O(E)
func (g *Graph) TotalCapacity() int64 {
	var total int64
	for _, nbrs := range g.adjacency {
		for _, e := range nbrs {
			total += e.Capacity
		}
	}
	return total
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}
	return n
}

// Vertices returns all vertex IDs in ascending order.
// The sorted order makes every traversal in this module deterministic.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns copies of the outgoing edges of u, sorted by
// destination ID. Returns ErrVertexNotFound for a missing vertex.
// Complexity: O(deg(u) log deg(u))
func (g *Graph) Neighbors(u string) ([]Edge, error) {
	nbrs, ok := g.adjacency[u]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(nbrs))
	for _, e := range nbrs {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// Edges returns copies of all edges, sorted by (From, To).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for _, nbrs := range g.adjacency {
		for _, e := range nbrs {
			edges = append(edges, *e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}
