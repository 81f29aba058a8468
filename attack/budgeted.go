package attack

import (
	"github.com/miraki/flowsim/core"
)

// Budgeted degrades the edges currently carrying flow from source to
// sink, spending at most budget total units of capacity reduction,
// highest-value edges first.
//
// The ranking is computed on a snapshot clone; reductions land on the
// caller's graph g. Each edge can give up at most capacity−1 units
// (the MinCapacity floor), so the budget is only partially consumed
// when candidates run out. budget ≤ 0 degrades nothing and reports
// FlowBefore == FlowAfter.
//
// Errors are those of the underlying max-flow computation; a
// disconnected pair is not one of them (both flows zero, no edges
// touched).
func Budgeted(g *core.Graph, source, sink string, budget int64, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Flow ranking happens on a read-only snapshot of the pre-attack state.
	snapshot := g.Clone()
	before, err := o.compute(snapshot, source, sink)
	if err != nil {
		return Result{}, err
	}

	cands := candidates(snapshot, before.Assignment, RankByFlow)
	rank(cands, RankByFlow)

	var (
		totalReduced int64
		affected     []Reduction
	)
	for _, c := range cands {
		if totalReduced >= budget {
			break
		}
		reducible := c.capacity - core.MinCapacity
		if reducible <= 0 {
			continue
		}
		reduction := reducible
		if remaining := budget - totalReduced; remaining < reduction {
			reduction = remaining
		}
		if err = g.ReduceCapacity(c.from, c.to, reduction); err != nil {
			return Result{}, err
		}
		totalReduced += reduction
		affected = append(affected, Reduction{From: c.from, To: c.to, Amount: reduction})
	}

	after, err := o.compute(g, source, sink)
	if err != nil {
		return Result{}, err
	}

	return Result{FlowBefore: before.Value, FlowAfter: after.Value, Affected: affected}, nil
}
