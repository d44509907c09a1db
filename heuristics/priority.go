package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// priorityBuilder implements the shared machinery behind Heuristic2 and
// Heuristic3: both maintain a "priority" set of uncovered edges that touch
// a vertex of current working degree 1, and a "regular" set for everything
// else, promoting edges into priority as neighbors get resolved down to a
// single remaining working neighbor.
//
// retarget controls the one behavioral difference: Heuristic2 retargets a
// priority edge toward the non-degree-1 endpoint's max-degree neighbor
// before deciding which endpoints to cover; Heuristic3 does not.
func priorityBuilder(g *graph.Graph, retarget bool) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()

	// work[i] is i's current set of unresolved neighbors. Unlike a
	// graph.Graph clone, entries are removed unilaterally: resolving an
	// edge through vertex a strips a from every original neighbor's
	// working set, but never touches work[a] itself directly — only as a
	// side effect of other vertices being resolved. This mirrors the
	// reference algorithm's own asymmetric bookkeeping.
	work := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		nbrs := g.Neighbors(i)
		set := make(map[int]struct{}, len(nbrs))
		for _, j := range nbrs {
			set[j] = struct{}{}
		}
		work[i] = set
	}

	priority := make(map[graph.EdgeKey]struct{})
	regular := make(map[graph.EdgeKey]struct{})
	for _, pair := range g.Edges() {
		a, b := pair[0], pair[1]
		if g.Degree(a) == 1 || g.Degree(b) == 1 {
			priority[graph.Key(a, b)] = struct{}{}
		} else {
			regular[graph.Key(a, b)] = struct{}{}
		}
	}

	var cover []int
	for len(priority) > 0 || len(regular) > 0 {
		var a, b int
		if len(priority) > 0 {
			a, b = takeAny(priority)
			if retarget {
				if len(work[a]) == 1 {
					a, b = b, maxDegreeNeighbor(work, b)
				} else if len(work[b]) == 1 {
					b, a = a, maxDegreeNeighbor(work, a)
				}
			}
		} else {
			a, b = takeAny(regular)
		}

		if len(work[a]) > 1 {
			cover = append(cover, a)
		}
		if len(work[b]) > 1 || len(work[a]) == 1 {
			cover = append(cover, b)
		}

		resolve(g, work, priority, regular, a)
		resolve(g, work, priority, regular, b)
	}
	return cover, nil
}

// maxDegreeNeighbor picks, among pivot's working neighbors, the one with
// the largest working degree (smallest id on ties).
func maxDegreeNeighbor(work []map[int]struct{}, pivot int) int {
	best := -1
	for j := range work[pivot] {
		if best == -1 || len(work[j]) > len(work[best]) || (len(work[j]) == len(work[best]) && j < best) {
			best = j
		}
	}
	return best
}

// resolve processes vertex a as a just-covered (or just-excluded, per the
// isolation rule) edge endpoint: every original neighbor j of a loses a
// from its working set, a's incident edges leave both tracked sets, and
// any neighbor left with exactly one working neighbor gets its remaining
// edge promoted from regular to priority.
func resolve(g *graph.Graph, work []map[int]struct{}, priority, regular map[graph.EdgeKey]struct{}, a int) {
	for _, j := range g.Neighbors(a) {
		key := graph.Key(a, j)
		delete(priority, key)
		delete(regular, key)
		delete(work[j], a)

		if len(work[j]) == 1 {
			var only int
			for k := range work[j] {
				only = k
			}
			pEdge := graph.Key(j, only)
			if _, ok := regular[pEdge]; ok {
				delete(regular, pEdge)
				priority[pEdge] = struct{}{}
			}
		}
	}
}

// takeAny returns one element of an edge set, decoded to its endpoints:
// the smallest key, so the choice does not depend on Go's randomized map
// iteration order. An empty set yields (0, 0).
func takeAny(set map[graph.EdgeKey]struct{}) (a, b int) {
	first := true
	var min graph.EdgeKey
	for k := range set {
		if first || k < min {
			min, first = k, false
		}
	}
	return min.Decode()
}
