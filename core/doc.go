// Package core defines the Graph and Edge types for directed capacity
// networks, and the query and mutation primitives the flow and attack
// packages build on.
//
// A Graph holds at most one edge per ordered vertex pair. Every edge
// carries a positive integer capacity; capacities below MinCapacity are
// clamped on insertion, and ReduceCapacity never lowers a capacity
// below MinCapacity. The floor keeps every existing edge traversable by
// flow algorithms: a zero-capacity edge would behave like a removed one
// and silently change the topology under repeated attacks.
//
// Mutation is in place and unsynchronized. A Graph assumes a single
// writer and no concurrent readers during mutation; callers that need
// concurrent access must serialize it themselves, and callers that need
// rollback must Clone before mutating.
//
// Errors:
//
//	ErrSelfLoop       - edge with identical endpoints.
//	ErrVertexNotFound - operation referenced a missing vertex.
//	ErrEdgeNotFound   - operation referenced a missing edge.
package core
