/*
Package bnb implements an exact branch-and-bound vertex-cover solver: a
depth-first search over "include vertex u in the cover / exclude it"
choices, pruned by a lower bound derived from heuristics.GreedyBad and
bounded by a wall-clock deadline.

The search mutates its Graph in place via Isolate/Restore pairs rather
than cloning on each branch; Restore always undoes exactly what the
matching Isolate did, so the graph is observationally unchanged once
Solve returns. Branching always picks the vertex of highest residual
degree among those not yet decided, and deliberately uses the weaker of
the two available heuristics for its bound — a bigger heuristic cover
gives a tighter lower bound via the H/2 <= OPT relation.
*/
package bnb
