package core

// CloneEmpty returns a new Graph with the same vertices and no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph()
	for id := range g.vertices {
		clone.AddVertex(id)
	}
	return clone
}

// Clone returns a deep copy of the Graph with no shared mutable
// substructure: mutating the clone never affects the original and vice
// versa. Used for pre-attack snapshots and the "before" baseline of an
// attack run.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for u, nbrs := range g.adjacency {
		for v, e := range nbrs {
			dup := *e
			clone.adjacency[u][v] = &dup
		}
	}
	return clone
}
