package bnb

import (
	"context"
	"time"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/heuristics"
	"github.com/SumithraSriram/vertexcover/resultio"
)

// engine holds all search state for one Solve call. A dedicated struct
// (rather than closures capturing local variables) keeps the recursive
// branch() signature small and its fields inspectable from tests.
type engine struct {
	g *graph.Graph

	soln []int
	opt  []int
	s    map[int]struct{} // candidate vertices still eligible to branch on
	uncov int

	ctx   context.Context
	start time.Time
	trace *resultio.TraceWriter

	nodesExplored int64
	timedOut      bool
}

// recordIncumbent replaces opt with a shorter soln and emits a trace entry.
func (e *engine) recordIncumbent() error {
	e.opt = append([]int(nil), e.soln...)
	if e.trace != nil {
		if err := e.trace.Record(time.Since(e.start), len(e.opt)); err != nil {
			return err
		}
	}
	return nil
}

// branch implements the recursive search described for the exact solver:
// deadline check, feasibility exit, lower-bound prune, highest-degree
// pivot selection, then the Include/Exclude cases.
func (e *engine) branch() error {
	e.nodesExplored++

	if err := e.ctx.Err(); err != nil {
		e.timedOut = true
		return nil
	}

	if e.uncov == 0 {
		if len(e.soln) < len(e.opt) {
			return e.recordIncumbent()
		}
		return nil
	}

	lowerCover, err := heuristics.GreedyBad(e.g)
	if err != nil {
		return err
	}
	lb := len(lowerCover) / 2
	if len(e.soln)+lb >= len(e.opt) || lb > len(e.s) {
		return nil
	}

	u := e.pickPivot()
	delete(e.s, u)

	if err := e.branchInclude(u); err != nil {
		return err
	}
	if err := e.branch(); err != nil { // Case Exclude: recurse without mutation.
		return err
	}

	e.s[u] = struct{}{}
	return nil
}

// pickPivot returns the candidate vertex of maximum residual degree,
// breaking ties by ascending id for determinism.
func (e *engine) pickPivot() int {
	best := -1
	for v := range e.s {
		if best == -1 || e.g.Degree(v) > e.g.Degree(best) || (e.g.Degree(v) == e.g.Degree(best) && v < best) {
			best = v
		}
	}
	return best
}

// branchInclude covers the Include case: push u into the cover, isolate
// it, recurse, then restore the graph and pop u — skipping entirely when
// including u cannot help (u isolated already, or u's sole neighbor
// dominates it).
func (e *engine) branchInclude(u int) error {
	neighbors := e.g.Neighbors(u)
	if len(neighbors) == 0 {
		return nil
	}
	if len(neighbors) == 1 && e.g.Degree(neighbors[0]) > 1 {
		return nil
	}

	e.soln = append(e.soln, u)
	e.uncov -= len(neighbors)
	saved := e.g.Isolate(u)

	if err := e.branch(); err != nil {
		return err
	}

	e.g.Restore(u, saved)
	e.uncov += len(neighbors)
	e.soln = e.soln[:len(e.soln)-1]
	return nil
}
