package flow

import (
	"context"
	"errors"
)

// Sentinel errors for max-flow computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source == sink; max-flow of a
	// vertex to itself is undefined and rejected at the call boundary.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")
)

// Assignment maps From → To → flow pushed through that edge.
// Edges carrying zero flow are absent. An empty Assignment means no
// feasible flow exists (disconnected source and sink).
type Assignment map[string]map[string]int64

// Flow returns the flow through edge u→v, zero if the edge carries none.
func (a Assignment) Flow(u, v string) int64 {
	return a[u][v]
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// Value is the total flow from source to sink.
	Value int64

	// Assignment is a feasible per-edge flow realizing Value.
	Assignment Assignment
}

// Options configures the max-flow algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// OnAugment, if non-nil, is invoked after each augmentation with the
	// amount of flow pushed.
	OnAugment func(sent int64)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// normalize fills zero-value fields with defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
