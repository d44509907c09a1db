package ls1

import (
	"context"
	"time"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/heuristics"
	"github.com/SumithraSriram/vertexcover/internal/rngutil"
	"github.com/SumithraSriram/vertexcover/resultio"
	"github.com/SumithraSriram/vertexcover/solver"
)

// Solver is the cover-space iterated local search (LS1) algorithm.
type Solver struct {
	Graph *graph.Graph
	Trace *resultio.TraceWriter
	Seed  int64
}

// New returns a Solver over g seeded with seed, writing improvement
// events to tw. tw may be nil to skip trace emission (used by tests).
func New(g *graph.Graph, tw *resultio.TraceWriter, seed int64) *Solver {
	return &Solver{Graph: g, Trace: tw, Seed: seed}
}

// Solve runs the search until ctx is done and returns the smallest valid
// cover observed.
func (s *Solver) Solve(ctx context.Context) (solver.Result, error) {
	if s.Graph == nil {
		return solver.Result{}, ErrNilGraph
	}

	start := time.Now()
	initial, err := heuristics.GetBest(s.Graph)
	if err != nil {
		return solver.Result{}, err
	}

	rng := rngutil.FromSeed(s.Seed)
	e := newEngine(s.Graph, initial, rng, ctx, start, s.Trace)

	if s.Trace != nil {
		if err := s.Trace.Record(time.Since(start), len(e.minVC)); err != nil {
			return solver.Result{}, err
		}
	}

	if err := e.run(); err != nil {
		return solver.Result{}, err
	}

	cover := sortedIntKeys(e.minVC)

	elapsed := time.Since(start)
	return solver.Result{
		Cover: cover,
		Trace: []solver.TraceEntry{{Elapsed: elapsed, Size: len(cover)}},
		Stats: solver.Stats{
			Elapsed:    elapsed,
			Iterations: e.iterations,
			TimedOut:   ctx.Err() != nil,
		},
	}, nil
}
