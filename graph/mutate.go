package graph

// Isolate removes v from the graph's live adjacency: every neighbor u of v
// loses v from its neighbor set, v's own neighbor set is cleared, and the
// corresponding entries leave the canonical edge map. It returns the
// removed neighbor ids (sorted) so the caller can later undo the operation
// with Restore.
//
// This is the only mutation primitive the branch-and-bound solver needs;
// "including" a vertex in the cover isolates it, and backtracking restores
// it. The graph must be byte-identical after a matched Isolate/Restore pair.
func (g *Graph) Isolate(v int) []int {
	neighbors := g.Neighbors(v)
	for _, u := range neighbors {
		delete(g.adj[u], v)
		delete(g.edges, Key(v, u))
	}
	g.adj[v] = make(map[int]struct{})
	return neighbors
}

// Restore reverses a prior Isolate(v), reinstating v's edges to exactly the
// neighbor ids returned by that call.
func (g *Graph) Restore(v int, neighbors []int) {
	g.adj[v] = make(map[int]struct{}, len(neighbors))
	for _, u := range neighbors {
		g.adj[v][u] = struct{}{}
		g.adj[u][v] = struct{}{}
		g.edges[Key(v, u)] = false
	}
}
