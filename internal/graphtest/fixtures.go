// Package graphtest builds the small fixture graphs named in the project's
// testable-scenarios list (triangle, path, star, K5, ...) so every solver
// package can share one definition instead of repeating literal adjacency.
package graphtest

import "github.com/SumithraSriram/vertexcover/graph"

// Triangle returns K3: OPT = 2.
func Triangle() *graph.Graph {
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	return g
}

// PathP4 returns a 4-vertex path 0-1-2-3: OPT = 2 ({1,2}).
func PathP4() *graph.Graph {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	return g
}

// StarK1n returns a star with one hub (vertex 0) and the given number of
// leaves (vertices 1..leaves): OPT = 1.
func StarK1n(leaves int) *graph.Graph {
	g := graph.New(leaves + 1)
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}
	return g
}

// Complete returns K_n, the complete graph on n vertices: OPT = n-1.
func Complete(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

// TwoDisjointEdges returns two vertex-disjoint edges: OPT = 2.
func TwoDisjointEdges() *graph.Graph {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	return g
}

// EmptyEdges returns n isolated vertices and no edges: OPT = 0.
func EmptyEdges(n int) *graph.Graph {
	return graph.New(n)
}
