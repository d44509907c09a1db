/*
Package ls1 implements a cover-space iterated local search for vertex
cover: starting from heuristics.GetBest, it alternates a drop phase
(remove a random cover vertex, opening up uncovered edges) with a swap
phase (trade one cover vertex for one of an uncovered edge's endpoints,
guided by edge weights that accumulate on edges that stay uncovered
across swaps). A single-swap taboo prevents immediately undoing the last
trade.

The search runs until its context is done and reports the smallest
cover observed at any point, not necessarily the one held when time runs
out.
*/
package ls1
