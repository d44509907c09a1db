package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// GreedyBad repeatedly covers a minimum-positive-degree vertex and its
// minimum-degree neighbor, until no uncovered edges remain. It produces
// intentionally weak covers: package bnb uses |GreedyBad(G)|/2 as a lower
// bound on OPT, and a weaker heuristic yields a larger (tighter) bound.
//
// Complexity: O(V^2) per pass in the worst case, O(V) passes.
func GreedyBad(g *graph.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	work := g.Clone()
	n := work.NumVertices()

	var cover []int
	for work.NumEdges() > 0 {
		v := -1
		for i := 0; i < n; i++ {
			if work.Degree(i) == 0 {
				continue
			}
			if v == -1 || work.Degree(i) < work.Degree(v) {
				v = i
			}
		}
		if v == -1 {
			break
		}

		minNeigh := -1
		for _, u := range work.Neighbors(v) {
			if minNeigh == -1 || work.Degree(u) < work.Degree(minNeigh) {
				minNeigh = u
			}
		}

		for _, endpoint := range [2]int{v, minNeigh} {
			cover = append(cover, endpoint)
			work.Isolate(endpoint)
		}
	}
	return cover, nil
}
