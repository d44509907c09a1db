package graph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/internal/graphtest"
)

func TestKeyCanonicalizesOrder(t *testing.T) {
	assert.Equal(t, graph.Key(3, 7), graph.Key(7, 3))
	assert.NotEqual(t, graph.Key(3, 7), graph.Key(3, 8))
}

func TestAddEdgeSymmetric(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(1, 2)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.Degree(2))
	assert.Equal(t, 1, g.NumEdges())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := graph.New(2)
	g.AddEdge(0, 0)
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.Degree(0))
}

func TestNeighborsSorted(t *testing.T) {
	g := graph.New(5)
	g.AddEdge(0, 4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 3)
	assert.Equal(t, []int{1, 3, 4}, g.Neighbors(0))
}

func TestCloneIsIndependent(t *testing.T) {
	g := graphtest.Triangle()
	clone := g.Clone()
	clone.Isolate(0)
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 0, clone.Degree(0))
}

func TestIsolateRestoreRoundTrip(t *testing.T) {
	g := graphtest.Triangle()
	before := snapshot(g)

	saved := g.Isolate(0)
	assert.ElementsMatch(t, []int{1, 2}, saved)
	assert.Equal(t, 0, g.Degree(0))
	assert.Equal(t, 1, g.NumEdges())

	g.Restore(0, saved)
	assert.Equal(t, before, snapshot(g))
}

func TestCheckCoverage(t *testing.T) {
	g := graphtest.Triangle()
	size, covered := g.CheckCoverage([]int{0, 1})
	assert.Equal(t, 2, size)
	assert.Equal(t, 3, covered)

	size, covered = g.CheckCoverage([]int{0})
	assert.Equal(t, 1, size)
	assert.Equal(t, 2, covered)
}

func TestCheckCoverageEmptyGraph(t *testing.T) {
	g := graphtest.EmptyEdges(3)
	size, covered := g.CheckCoverage(nil)
	assert.Equal(t, 0, size)
	assert.Equal(t, 0, covered)
}

func TestLoadParsesInstanceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.graph")
	require.NoError(t, os.WriteFile(path, []byte("3 3 0\n2 3\n1 3\n1 2\n"), 0o644))

	g, err := graph.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(1, 2))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := graph.Load(filepath.Join(t.TempDir(), "missing.graph"))
	assert.ErrorIs(t, err, graph.ErrInputUnreadable)
}

func TestLoadInvalidHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.graph")
	require.NoError(t, os.WriteFile(path, []byte("not-a-number\n"), 0o644))

	_, err := graph.Load(path)
	assert.ErrorIs(t, err, graph.ErrInvalidFormat)
}

func snapshot(g *graph.Graph) map[int][]int {
	out := make(map[int][]int, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		out[v] = g.Neighbors(v)
	}
	return out
}
