package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// MinCapacity is the floor every edge capacity is clamped to.
// AddEdge raises smaller requested capacities to it, and ReduceCapacity
// never reduces an edge below it.
const MinCapacity int64 = 1

// Edge is a directed capacitated connection From→To.
//
// AttackCost is caller metadata; the attack heuristics in this module
// do not consume it. CanAttack excludes the edge from attack-candidate
// selection when false.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Capacity is the current capacity, always ≥ MinCapacity.
	Capacity int64

	// AttackCost is an optional cost annotation, default 0.
	AttackCost float64

	// CanAttack marks the edge as a valid attack candidate, default true.
	CanAttack bool
}

// EdgeOption configures properties of an edge when added.
type EdgeOption func(*Edge)

// WithAttackCost annotates the edge with an attack cost.
func WithAttackCost(cost float64) EdgeOption {
	return func(e *Edge) { e.AttackCost = cost }
}

// WithCanAttack marks whether the edge may be selected as an attack
// candidate (true is the default).
func WithCanAttack(allowed bool) EdgeOption {
	return func(e *Edge) { e.CanAttack = allowed }
}

// Graph is a directed capacity network: vertices identified by string
// ID and at most one capacitated edge per ordered pair.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	// vertices is the vertex catalog.
	vertices map[string]struct{}

	// adjacency[from][to] holds the single edge from→to.
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
	}
}
