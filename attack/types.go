package attack

import (
	"context"
	"errors"

	"github.com/miraki/flowsim/core"
	"github.com/miraki/flowsim/flow"
)

// ErrUnknownRankBy is returned when an unrecognized ranking metric is
// supplied.
var ErrUnknownRankBy = errors.New("attack: unknown ranking metric")

// RankBy selects the metric MultiStep ranks candidate edges by.
type RankBy int

const (
	// RankByFlow ranks by current flow through the edge (default).
	// Only edges carrying positive flow are candidates.
	RankByFlow RankBy = iota

	// RankByCapacity ranks by current capacity; every attackable edge
	// is a candidate whether or not it carries flow.
	RankByCapacity
)

// String implements fmt.Stringer.
func (r RankBy) String() string {
	switch r {
	case RankByFlow:
		return "flow"
	case RankByCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// ParseRankBy converts a config string ("flow" or "capacity") into a
// RankBy value.
func ParseRankBy(s string) (RankBy, error) {
	switch s {
	case "flow":
		return RankByFlow, nil
	case "capacity":
		return RankByCapacity, nil
	default:
		return 0, ErrUnknownRankBy
	}
}

// Reduction records one attacked edge and the total capacity taken
// from it.
type Reduction struct {
	From   string
	To     string
	Amount int64
}

// Result is the immutable outcome of one attack invocation.
type Result struct {
	// FlowBefore is the max-flow value on the pre-attack graph.
	FlowBefore int64

	// FlowAfter is the max-flow value after the reductions were applied.
	FlowAfter int64

	// Affected lists every edge actually reduced. Budgeted reports them
	// in consumption (rank) order; MultiStep sorts them by (From, To).
	Affected []Reduction
}

// TotalReduced sums the reduction amounts over all affected edges.
func (r Result) TotalReduced() int64 {
	var total int64
	for _, red := range r.Affected {
		total += red.Amount
	}
	return total
}

// MaxFlowFunc is the max-flow algorithm an attack runs; both
// flow.EdmondsKarp and flow.Dinic satisfy it.
type MaxFlowFunc func(g *core.Graph, source, sink string, opts flow.Options) (flow.Result, error)

// Option configures an attack via functional arguments.
type Option func(*options)

type options struct {
	ctx     context.Context
	rankBy  RankBy
	maxFlow MaxFlowFunc
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		rankBy:  RankByFlow,
		maxFlow: flow.EdmondsKarp,
	}
}

// WithContext sets a context used for cancellation of the underlying
// flow computations.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRankBy selects the MultiStep ranking metric. Budgeted ignores it:
// its ranking is fixed to (flow desc, capacity asc, (from, to) asc).
func WithRankBy(r RankBy) Option {
	return func(o *options) { o.rankBy = r }
}

// WithFlowAlgorithm swaps the max-flow implementation, e.g. flow.Dinic.
func WithFlowAlgorithm(fn MaxFlowFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.maxFlow = fn
		}
	}
}

// compute runs the configured max-flow algorithm with the configured
// context.
func (o options) compute(g *core.Graph, source, sink string) (flow.Result, error) {
	fo := flow.DefaultOptions()
	fo.Ctx = o.ctx
	return o.maxFlow(g, source, sink, fo)
}
