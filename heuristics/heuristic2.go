package heuristics

import "github.com/SumithraSriram/vertexcover/graph"

// Heuristic2 prioritizes edges incident to a vertex of current working
// degree 1, retargeting toward the other endpoint's highest-working-degree
// neighbor before deciding which vertices to cover. The retargeting step
// tends to pick up high-degree vertices earlier, covering more edges per
// step than Heuristic3 on graphs with a long tail of degree-1 vertices.
//
// Complexity: O(V + E) amortized.
func Heuristic2(g *graph.Graph) ([]int, error) {
	return priorityBuilder(g, true)
}
