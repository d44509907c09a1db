package graph

// CheckCoverage audits a candidate cover against the live edge set. It
// resets every edge marker to false, then for each vertex in cover walks
// its neighbors and marks the incident edge the first time it is seen.
// size is len(cover); coveredCount is the number of distinct edges marked.
// A cover is valid iff coveredCount == g.NumEdges().
func (g *Graph) CheckCoverage(cover []int) (size, coveredCount int) {
	for k := range g.edges {
		g.edges[k] = false
	}
	for _, v := range cover {
		for u := range g.adj[v] {
			key := Key(v, u)
			if !g.edges[key] {
				g.edges[key] = true
				coveredCount++
			}
		}
	}
	return len(cover), coveredCount
}
