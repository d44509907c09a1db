package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// Heuristic3 is Heuristic2 without the retargeting step: it still
// prioritizes edges touching a degree-1 vertex, but covers the edge's
// endpoints as found.
//
// Complexity: O(V + E) amortized.
func Heuristic3(g *graph.Graph) ([]int, error) {
	return priorityBuilder(g, false)
}
