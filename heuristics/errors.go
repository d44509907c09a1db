package heuristics

import "errors"

// ErrNilGraph is returned by every builder when g is nil.
var ErrNilGraph = errors.New("heuristics: graph is nil")

// ErrIncompleteCover is what Solver.Solve prints to standard output if the
// constructed cover fails its own coverage audit, indicating a builder bug
// rather than a reachable runtime condition. Solve does not return it.
var ErrIncompleteCover = errors.New("heuristics: constructed cover does not cover all edges")
