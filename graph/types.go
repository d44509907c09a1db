package graph

// EdgeKey canonically identifies an undirected edge regardless of the order
// its endpoints are supplied in. Two vertex ids are packed into the low and
// high 32 bits of a uint64, which is injective as long as every vertex id
// fits in 32 bits — the packing invariant enforced by Load (see ErrSizeExceeded).
type EdgeKey uint64

// maxVertexID is the largest vertex count Load accepts: ids 0..maxVertexID-1
// all fit in the 32 bits the edge-key packing gives each endpoint.
const maxVertexID = 1 << 32

// Key returns the canonical edge key for the unordered pair (a, b).
func Key(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey(uint64(a) | uint64(b)<<32)
}

// Graph is the mutable adjacency-set representation shared by every solver.
// Vertices are dense integers in [0, NumVertices()). edges mirrors the
// adjacency as a map of canonical EdgeKey to a boolean marker; the marker is
// only meaningful during CheckCoverage and otherwise sits at false.
type Graph struct {
	adj   []map[int]struct{}
	edges map[EdgeKey]bool
}

// New returns an edgeless graph over n vertices.
func New(n int) *Graph {
	g := &Graph{
		adj:   make([]map[int]struct{}, n),
		edges: make(map[EdgeKey]bool),
	}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}
	return g
}

// NumVertices returns N, the number of vertices the graph was built with.
func (g *Graph) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of distinct undirected edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Decode splits an EdgeKey back into its (low, high) endpoints.
func (k EdgeKey) Decode() (a, b int) {
	return int(uint64(k) & 0xffffffff), int(uint64(k) >> 32)
}

// Edges returns every current edge as a canonical (min, max) pair. Order is
// unspecified; callers that need a stable order should sort the result.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.edges))
	for k := range g.edges {
		a, b := k.Decode()
		out = append(out, [2]int{a, b})
	}
	return out
}

// Degree returns the current number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// HasEdge reports whether (a, b) is currently an edge.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Neighbors returns a sorted copy of v's current neighbor ids. The sort
// keeps tie-breaking in the local-search packages reproducible across runs,
// independent of Go's randomized map iteration order.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sortInts(out)
	return out
}

// AddEdge inserts the undirected edge (a, b), creating it in both
// adjacency sets and in the canonical edge map. Self-loops are rejected;
// the instance format is trusted not to contain them (see graph.Load), but
// AddEdge is also used directly by tests building small fixture graphs.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		return
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.edges[Key(a, b)] = false
}

// Clone returns a deep copy. Heuristics run against a clone so the caller's
// graph is left untouched; only bnb mutates a graph in place.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		adj:   make([]map[int]struct{}, len(g.adj)),
		edges: make(map[EdgeKey]bool, len(g.edges)),
	}
	for i, nbrs := range g.adj {
		cp := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		out.adj[i] = cp
	}
	for k, v := range g.edges {
		out.edges[k] = v
	}
	return out
}

// sortInts sorts a slice of vertex ids ascending. Degree lists are small
// enough in practice that an insertion sort beats pulling in "sort" here.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
