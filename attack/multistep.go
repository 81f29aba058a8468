package attack

import (
	"sort"

	"github.com/miraki/flowsim/core"
)

// MultiStep runs an iterative degradation: steps rounds, each halving
// the capacities of the edgesPerStep highest-ranked candidates.
//
// Rounds operate on a working copy so every round's ranking reflects
// the cumulative damage of earlier rounds, while the caller's graph g
// stays untouched until all rounds finish; the accumulated per-edge
// reductions are then applied to g in one pass. Reductions hitting the
// same edge in several rounds sum.
//
// The ranking metric defaults to RankByFlow; WithRankBy(RankByCapacity)
// switches to raw capacity. steps ≤ 0 or edgesPerStep ≤ 0 degrades
// nothing and reports FlowBefore == FlowAfter.
func MultiStep(g *core.Graph, source, sink string, steps, edgesPerStep int, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	working := g.Clone()

	// The first computation runs on the still-pristine copy and doubles
	// as the "before" baseline.
	cur, err := o.compute(working, source, sink)
	if err != nil {
		return Result{}, err
	}
	flowBefore := cur.Value

	type pair struct{ from, to string }
	cumulative := make(map[pair]int64)

	// A zero baseline means source and sink are disconnected (every edge
	// carries at least MinCapacity, so any path yields positive flow).
	// There is nothing to degrade, regardless of the ranking metric.
	if edgesPerStep > 0 && flowBefore > 0 {
		for round := 0; round < steps; round++ {
			if round > 0 {
				if cur, err = o.compute(working, source, sink); err != nil {
					return Result{}, err
				}
			}

			cands := candidates(working, cur.Assignment, o.rankBy)
			rank(cands, o.rankBy)
			if len(cands) > edgesPerStep {
				cands = cands[:edgesPerStep]
			}

			for _, c := range cands {
				newCap := c.capacity / 2
				if newCap < core.MinCapacity {
					newCap = core.MinCapacity
				}
				reduction := c.capacity - newCap
				if reduction <= 0 {
					continue
				}
				if err = working.ReduceCapacity(c.from, c.to, reduction); err != nil {
					return Result{}, err
				}
				cumulative[pair{c.from, c.to}] += reduction
			}
		}
	}

	// Commit the accumulated damage to the live graph in one pass.
	affected := make([]Reduction, 0, len(cumulative))
	for p, amount := range cumulative {
		affected = append(affected, Reduction{From: p.from, To: p.to, Amount: amount})
	}
	sort.Slice(affected, func(i, j int) bool {
		if affected[i].From != affected[j].From {
			return affected[i].From < affected[j].From
		}
		return affected[i].To < affected[j].To
	})
	for _, red := range affected {
		if err = g.ReduceCapacity(red.From, red.To, red.Amount); err != nil {
			return Result{}, err
		}
	}

	after, err := o.compute(g, source, sink)
	if err != nil {
		return Result{}, err
	}

	return Result{FlowBefore: flowBefore, FlowAfter: after.Value, Affected: affected}, nil
}
