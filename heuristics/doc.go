/*
Package heuristics implements three independent constructive vertex-cover
builders plus a "best of three" selector.

  - GreedyBad is a deliberately weak builder: repeatedly take a
    minimum-positive-degree vertex and its minimum-degree neighbor, cover
    both. It exists as a lower-bound signal for package bnb — a bigger
    cover from a valid 2-approximation-family heuristic gives a tighter
    H/2 <= OPT bound.
  - Heuristic1 is the textbook 2-approximation: repeatedly take any
    uncovered edge and add both endpoints.
  - Heuristic2 and Heuristic3 prioritize edges touching a degree-1
    vertex, differing only in whether Heuristic2 retargets such an edge
    toward the higher-degree side before deciding which endpoints to add.
  - GetBest runs all three and returns the smallest cover.

None of the four guarantee optimality. All of them read-only their input
graph; a fresh working copy is built internally, so the caller's *graph.Graph
is never mutated.
*/
package heuristics
