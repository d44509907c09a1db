/*
Package ls2 implements an independent-set-space iterated local search for
vertex cover: it searches for a large independent set S (the complement
of the reported cover) using a 2-improvement local search — replace one
solution vertex with two mutually non-adjacent, newly-1-tight
neighbors — interleaved with perturbation kicks that remove a random
handful of vertices and greedily re-add distance-2 candidates. A
protection counter delays the probabilistic acceptance of
non-improving kicks, giving each kick a chance to be locally improved
before it's judged.

"Tightness" of a vertex outside S counts its neighbors currently inside
S; a vertex is free when its tightness is zero, i.e. it could be added
to S without creating an edge inside S.
*/
package ls2
