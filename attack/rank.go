package attack

import (
	"sort"

	"github.com/miraki/flowsim/core"
	"github.com/miraki/flowsim/flow"
)

// candidate is an attackable edge with the metrics it is ranked by.
type candidate struct {
	from, to string
	capacity int64
	flow     int64
}

// candidates collects the attackable edges of g. With RankByFlow only
// edges carrying positive flow in asg qualify; with RankByCapacity all
// attackable edges do. Edges with CanAttack == false never qualify.
func candidates(g *core.Graph, asg flow.Assignment, rankBy RankBy) []candidate {
	var cands []candidate
	for _, e := range g.Edges() {
		if !e.CanAttack {
			continue
		}
		f := asg.Flow(e.From, e.To)
		if rankBy == RankByFlow && f <= 0 {
			continue
		}
		cands = append(cands, candidate{from: e.From, to: e.To, capacity: e.Capacity, flow: f})
	}
	return cands
}

// rank orders candidates descending by the chosen metric. Flow ties
// break toward the smaller capacity: of two edges carrying the same
// flow, the tighter one is the actual bottleneck, and spending budget
// on the wider one cannot lower the min-cut. The final (from, to)
// tie-break pins a total order so a given assignment always produces
// the same attack.
func rank(cands []candidate, rankBy RankBy) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if rankBy == RankByFlow {
			if a.flow != b.flow {
				return a.flow > b.flow
			}
			if a.capacity != b.capacity {
				return a.capacity < b.capacity
			}
		} else {
			if a.capacity != b.capacity {
				return a.capacity > b.capacity
			}
		}
		if a.from != b.from {
			return a.from < b.from
		}
		return a.to < b.to
	})
}
