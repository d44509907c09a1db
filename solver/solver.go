// Package solver declares the common surface every vertex-cover algorithm
// implements, so cmd/mvc can dispatch through one code path instead of four
// hand-rolled branches.
package solver

import (
	"context"
	"time"
)

// TraceEntry is one "best so far" improvement event, matching the trace
// file format: elapsed seconds since solve start, and the cover size at
// that moment.
type TraceEntry struct {
	Elapsed time.Duration
	Size    int
}

// Stats carries diagnostics a solver collected during its run. Fields that
// don't apply to a given algorithm are left at their zero value.
type Stats struct {
	Elapsed        time.Duration
	NodesExplored  int64 // bnb only
	Iterations     int64 // ls1 / ls2 only
	TimedOut       bool
}

// Result is what every Solver returns: the best cover found (0-based
// vertex ids), a trace, and run diagnostics. Trace holds a single entry,
// the elapsed time and cover size at the end of the run; the individual
// improvement events are written only to the solver's TraceWriter.
type Result struct {
	Cover []int
	Trace []TraceEntry
	Stats Stats
}

// Solver is implemented by heuristics.Solver, bnb.Solver, ls1.Solver, and
// ls2.Solver. Solve must honor ctx's deadline by returning the best cover
// found so far rather than blocking past it.
type Solver interface {
	Solve(ctx context.Context) (Result, error)
}
