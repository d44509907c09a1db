package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// Heuristic1 is the textbook 2-approximation for vertex cover: while
// uncovered edges remain, take any one, add both endpoints to the cover,
// and remove every edge incident to either. |Heuristic1(G)| <= 2*OPT.
//
// Complexity: each pass rescans the vertices from 0 for one that still has
// an edge, O(V) per pass, with at most V/2 passes.
func Heuristic1(g *graph.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	work := g.Clone()
	n := work.NumVertices()

	var cover []int
	for work.NumEdges() > 0 {
		u := -1
		for i := 0; i < n; i++ {
			if work.Degree(i) > 0 {
				u = i
				break
			}
		}
		if u == -1 {
			break
		}
		v := work.Neighbors(u)[0]

		cover = append(cover, u, v)
		work.Isolate(u)
		work.Isolate(v)
	}
	return cover, nil
}
