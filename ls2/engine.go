package ls2

import (
	"context"
	"math/rand"
	"time"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/resultio"
)

// engine holds all search state for one Solve call.
type engine struct {
	g *graph.Graph

	cur *solution
	opt map[int]struct{}

	protection int

	rng   *rand.Rand
	ctx   context.Context
	start time.Time
	trace *resultio.TraceWriter

	iterations int64
}

func newEngine(g *graph.Graph, vc []int, rng *rand.Rand, ctx context.Context, start time.Time, tw *resultio.TraceWriter) *engine {
	n := g.NumVertices()
	inCover := make(map[int]struct{}, len(vc))
	for _, v := range vc {
		inCover[v] = struct{}{}
	}

	cur := newSolution(n)
	for i := 0; i < n; i++ {
		if _, covered := inCover[i]; !covered {
			cur.s[i] = struct{}{}
		}
	}
	for i := range cur.s {
		for _, j := range g.Neighbors(i) {
			cur.tightness[j]++
		}
	}
	for i := 0; i < n; i++ {
		if _, inS := cur.s[i]; !inS && cur.tightness[i] == 0 {
			cur.free[i] = struct{}{}
		}
	}

	opt := make(map[int]struct{}, len(cur.s))
	for v := range cur.s {
		opt[v] = struct{}{}
	}

	return &engine{g: g, cur: cur, opt: opt, rng: rng, ctx: ctx, start: start, trace: tw}
}

// cover returns the current best independent set's complement, i.e. the
// vertex cover the engine reports.
func (e *engine) cover() []int {
	n := e.g.NumVertices()
	out := make([]int, 0, n-len(e.opt))
	for i := 0; i < n; i++ {
		if _, inOpt := e.opt[i]; !inOpt {
			out = append(out, i)
		}
	}
	return out
}

// add inserts i into sol's independent set and updates tightness/free.
func (e *engine) add(i int, sol *solution) {
	sol.s[i] = struct{}{}
	delete(sol.free, i)
	for _, j := range e.g.Neighbors(i) {
		sol.tightness[j]++
		if sol.tightness[j] == 1 {
			delete(sol.free, j)
		}
	}
}

// rem removes i from sol's independent set and updates tightness/free.
func (e *engine) rem(i int, sol *solution) {
	delete(sol.s, i)
	sol.free[i] = struct{}{}
	for _, j := range e.g.Neighbors(i) {
		sol.tightness[j]--
		if sol.tightness[j] == 0 {
			sol.free[j] = struct{}{}
		}
	}
}

// twoImprovement repeatedly swaps a 1-degree-constrained solution vertex
// for two mutually non-adjacent, newly-freed neighbors when that grows
// the set by one, until no candidate admits such a swap.
func (e *engine) twoImprovement(sol *solution) {
	cand := make(map[int]struct{}, len(sol.s))
	for v := range sol.s {
		cand[v] = struct{}{}
	}

	for len(cand) > 0 {
		x := sortedKeys(cand)[0]
		delete(cand, x)

		neighbors := e.g.Neighbors(x)
		found := false
		for idx1, it1 := range neighbors {
			if sol.tightness[it1] != 1 {
				continue
			}
			for _, it2 := range neighbors[idx1+1:] {
				if sol.tightness[it2] != 1 || e.g.HasEdge(it1, it2) {
					continue
				}

				e.rem(x, sol)
				e.add(it1, sol)
				e.add(it2, sol)
				cand[it1] = struct{}{}
				cand[it2] = struct{}{}

				for _, xn := range neighbors {
					if sol.tightness[xn] != 1 {
						continue
					}
					for _, xnn := range e.g.Neighbors(xn) {
						if xnn != it1 && xnn != it2 {
							if _, inS := sol.s[xnn]; inS {
								cand[xnn] = struct{}{}
							}
						}
					}
				}

				found = true
				break
			}
			if found {
				break
			}
		}
	}
}

// perturb builds a new candidate solution (newSol) from e.cur: remove k
// random members, then greedily re-add free and distance-2 vertices.
func (e *engine) perturb() *solution {
	newSol := e.cur.clone()

	k := 1
	if e.protection == 0 && len(e.cur.s) > 0 && e.rng.Float64() <= 0.5/float64(len(e.cur.s)) {
		chance := 1.0
		for e.rng.Float64() <= chance {
			k++
			chance *= 0.5
		}
		if k > len(e.cur.s) {
			k = len(e.cur.s)
		}
	}

	members := sortedKeys(e.cur.s)
	e.rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
	for i := 0; i < k; i++ {
		e.rem(members[i], newSol)
	}

	if len(newSol.free) == 0 {
		return newSol
	}
	freeList := sortedKeys(newSol.free)
	e.add(freeList[e.rng.Intn(len(freeList))], newSol)

	for k--; k > 0 && len(newSol.free) > 0; k-- {
		added := false
		for _, u := range sortedKeys(newSol.free) {
			good := false
			for _, v := range e.g.Neighbors(u) {
				if newSol.tightness[v] != 0 {
					good = true
					break
				}
			}
			if good {
				e.add(u, newSol)
				added = true
				break
			}
		}
		if !added {
			break
		}
	}
	return newSol
}

// run executes the ILS main loop until ctx is done.
func (e *engine) run() error {
	e.twoImprovement(e.cur)
	e.protection = len(e.cur.s)

	for e.ctx.Err() == nil {
		e.iterations++
		newSol := e.perturb()
		e.twoImprovement(newSol)

		if len(newSol.s) > len(e.cur.s) {
			e.cur = newSol
			e.protection = len(e.cur.s)
			if len(e.cur.s) > len(e.opt) {
				e.opt = make(map[int]struct{}, len(e.cur.s))
				for v := range e.cur.s {
					e.opt[v] = struct{}{}
				}
				if e.trace != nil {
					n := e.g.NumVertices()
					if err := e.trace.Record(time.Since(e.start), n-len(e.opt)); err != nil {
						return err
					}
				}
			}
			continue
		}

		if e.protection > 0 {
			e.protection--
			continue
		}
		denom := 1.0 + float64(len(e.cur.s)-len(newSol.s))*float64(len(e.opt)-len(newSol.s))
		if e.rng.Float64() <= 1.0/denom {
			e.cur = newSol
			e.protection = len(e.cur.s)
		}
	}
	return nil
}
