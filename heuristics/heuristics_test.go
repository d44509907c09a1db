package heuristics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/internal/graphtest"
)

var builders = map[string]func(*graph.Graph) ([]int, error){
	"GreedyBad":  GreedyBad,
	"Heuristic1": Heuristic1,
	"Heuristic2": Heuristic2,
	"Heuristic3": Heuristic3,
}

func TestBuildersRejectNilGraph(t *testing.T) {
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			_, err := build(nil)
			assert.ErrorIs(t, err, ErrNilGraph)
		})
	}
}

func assertValidCover(t *testing.T, g *graph.Graph, cover []int) {
	t.Helper()
	_, coveredCount := g.CheckCoverage(cover)
	assert.Equal(t, g.NumEdges(), coveredCount, "cover must touch every edge")
}

func TestBuildersProduceValidCovers(t *testing.T) {
	fixtures := map[string]*graph.Graph{
		"triangle":   graphtest.Triangle(),
		"path4":      graphtest.PathP4(),
		"star":       graphtest.StarK1n(5),
		"k5":         graphtest.Complete(5),
		"twoedges":   graphtest.TwoDisjointEdges(),
		"emptyedges": graphtest.EmptyEdges(4),
	}
	for fname, g := range fixtures {
		for bname, build := range builders {
			t.Run(fname+"/"+bname, func(t *testing.T) {
				cover, err := build(g)
				require.NoError(t, err)
				assertValidCover(t, g, cover)
			})
		}
	}
}

func TestBuildersDoNotMutateInput(t *testing.T) {
	g := graphtest.PathP4()
	before := g.Clone()
	for _, build := range builders {
		_, err := build(g)
		require.NoError(t, err)
	}
	assert.Equal(t, before.NumEdges(), g.NumEdges())
	for i := 0; i < g.NumVertices(); i++ {
		assert.ElementsMatch(t, before.Neighbors(i), g.Neighbors(i))
	}
}

// Property 4: every heuristic is a 2-approximation, i.e. |cover| <= 2*OPT.
// OPT is known for each fixture by construction.
func TestTwoApproximationBound(t *testing.T) {
	cases := []struct {
		name string
		g    *graph.Graph
		opt  int
	}{
		{"triangle", graphtest.Triangle(), 2},
		{"path4", graphtest.PathP4(), 2},
		{"star", graphtest.StarK1n(5), 1},
		{"k5", graphtest.Complete(5), 4},
		{"twoedges", graphtest.TwoDisjointEdges(), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for bname, build := range builders {
				if bname == "GreedyBad" {
					continue // bnb's lower-bound helper; only the three cover builders are checked here
				}
				cover, err := build(tc.g)
				require.NoError(t, err)
				assert.LessOrEqualf(t, len(cover), 2*tc.opt, "%s exceeded 2*OPT", bname)
			}
		})
	}
}

// Property 5: GetBest never exceeds any individual heuristic's cover size.
func TestGetBestDominatesIndividualHeuristics(t *testing.T) {
	for name, g := range map[string]*graph.Graph{
		"triangle": graphtest.Triangle(),
		"path4":    graphtest.PathP4(),
		"star":     graphtest.StarK1n(6),
		"k6":       graphtest.Complete(6),
	} {
		t.Run(name, func(t *testing.T) {
			best, err := GetBest(g)
			require.NoError(t, err)

			h1, _ := Heuristic1(g)
			h2, _ := Heuristic2(g)
			h3, _ := Heuristic3(g)

			assert.LessOrEqual(t, len(best), len(h1))
			assert.LessOrEqual(t, len(best), len(h2))
			assert.LessOrEqual(t, len(best), len(h3))
			assertValidCover(t, g, best)
		})
	}
}

func TestSolverReportsHeuristic3Output(t *testing.T) {
	g := graphtest.PathP4()
	s := New(g, nil)

	res, err := s.Solve(context.Background())
	require.NoError(t, err)

	want, err := Heuristic3(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, res.Cover)
	assert.Len(t, res.Trace, 1)
	assert.Equal(t, len(want), res.Trace[0].Size)
}

func TestSolverRejectsNilGraph(t *testing.T) {
	s := New(nil, nil)
	_, err := s.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNilGraph)
}
