package bnb

import (
	"context"
	"time"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/resultio"
	"github.com/SumithraSriram/vertexcover/solver"
)

// Solver is the exact branch-and-bound vertex-cover algorithm. It mutates
// Graph during Solve via matched Isolate/Restore pairs and leaves it
// observationally unchanged once Solve returns.
type Solver struct {
	Graph *graph.Graph
	Trace *resultio.TraceWriter
}

// New returns a Solver over g, writing improvement events to tw. tw may
// be nil to skip trace emission (used by tests).
func New(g *graph.Graph, tw *resultio.TraceWriter) *Solver {
	return &Solver{Graph: g, Trace: tw}
}

// Solve runs the search until either the cover space is exhausted or ctx
// is canceled/expires, returning the best cover found either way.
func (s *Solver) Solve(ctx context.Context) (solver.Result, error) {
	if s.Graph == nil {
		return solver.Result{}, ErrNilGraph
	}

	start := time.Now()
	n := s.Graph.NumVertices()

	e := &engine{
		g:     s.Graph,
		opt:   make([]int, n),
		s:     make(map[int]struct{}),
		uncov: s.Graph.NumEdges(),
		ctx:   ctx,
		start: start,
		trace: s.Trace,
	}
	for i := 0; i < n; i++ {
		e.opt[i] = i
	}
	for i := 0; i < n; i++ {
		if s.Graph.Degree(i) > 0 {
			e.s[i] = struct{}{}
		}
	}

	if s.Trace != nil {
		if err := s.Trace.Record(time.Since(start), len(e.opt)); err != nil {
			return solver.Result{}, err
		}
	}

	if err := e.branch(); err != nil {
		return solver.Result{}, err
	}

	elapsed := time.Since(start)
	return solver.Result{
		Cover: e.opt,
		Trace: []solver.TraceEntry{{Elapsed: elapsed, Size: len(e.opt)}},
		Stats: solver.Stats{
			Elapsed:       elapsed,
			NodesExplored: e.nodesExplored,
			TimedOut:      e.timedOut,
		},
	}, nil
}
