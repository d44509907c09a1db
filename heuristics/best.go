package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// GetBest runs Heuristic1, Heuristic2, and Heuristic3 and returns the
// smallest of the three covers. Ties favor whichever ran first.
func GetBest(g *graph.Graph) ([]int, error) {
	builders := [...]func(*graph.Graph) ([]int, error){Heuristic1, Heuristic2, Heuristic3}

	var best []int
	for _, build := range builders {
		cover, err := build(g)
		if err != nil {
			return nil, err
		}
		if best == nil || len(cover) < len(best) {
			best = cover
		}
	}
	return best, nil
}
