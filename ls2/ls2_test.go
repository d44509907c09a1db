package ls2

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/heuristics"
	"github.com/SumithraSriram/vertexcover/internal/graphtest"
	"github.com/SumithraSriram/vertexcover/internal/rngutil"
)

func solveFor(t *testing.T, g *graph.Graph, budget time.Duration, seed int64) []int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	s := New(g, nil, seed)
	res, err := s.Solve(ctx)
	require.NoError(t, err)
	return res.Cover
}

func TestSolveProducesValidCover(t *testing.T) {
	cases := map[string]*graph.Graph{
		"triangle":   graphtest.Triangle(),
		"path4":      graphtest.PathP4(),
		"star":       graphtest.StarK1n(6),
		"k5":         graphtest.Complete(5),
		"twoedges":   graphtest.TwoDisjointEdges(),
		"emptyedges": graphtest.EmptyEdges(4),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			cover := solveFor(t, g, 20*time.Millisecond, 3)
			_, coveredCount := g.CheckCoverage(cover)
			assert.Equal(t, g.NumEdges(), coveredCount)
		})
	}
}

// Property 8: cur.s and opt are always independent sets — no two
// members are adjacent — at every point an engine could report them.
func assertIndependent(t *testing.T, g *graph.Graph, set map[int]struct{}) {
	t.Helper()
	for u := range set {
		for _, v := range g.Neighbors(u) {
			_, vInSet := set[v]
			assert.Falsef(t, vInSet, "vertices %d and %d are adjacent but both in the independent set", u, v)
		}
	}
}

func TestIndependentSetInvariantHoldsThroughSearch(t *testing.T) {
	g := graphtest.Complete(6)
	initial, err := heuristics.GetBest(g)
	require.NoError(t, err)

	rng := rngutil.FromSeed(11)
	e := newEngine(g, initial, rng, context.Background(), time.Now(), nil)
	e.twoImprovement(e.cur)
	e.protection = len(e.cur.s)
	assertIndependent(t, g, e.cur.s)

	for i := 0; i < 15; i++ {
		newSol := e.perturb()
		e.twoImprovement(newSol)
		assertIndependent(t, g, newSol.s)
		if len(newSol.s) > len(e.cur.s) {
			e.cur = newSol
		}
	}
	assertIndependent(t, g, e.opt)
}

// Property 9: identical graph, seed, and iteration count produce an
// identical sequence of perturb/improve decisions.
func TestEngineIsDeterministicGivenSameSeed(t *testing.T) {
	run := func() map[int]struct{} {
		g := graphtest.Complete(6)
		initial, err := heuristics.GetBest(g)
		require.NoError(t, err)

		rng := rngutil.FromSeed(99)
		e := newEngine(g, initial, rng, context.Background(), time.Now(), nil)
		e.twoImprovement(e.cur)
		e.protection = len(e.cur.s)
		for i := 0; i < 15; i++ {
			newSol := e.perturb()
			e.twoImprovement(newSol)
			if len(newSol.s) > len(e.cur.s) {
				e.cur = newSol
				e.protection = len(e.cur.s)
			} else if e.protection > 0 {
				e.protection--
			}
		}
		return e.opt
	}

	assert.Equal(t, run(), run())
}

func TestSolveRejectsNilGraph(t *testing.T) {
	s := New(nil, nil, 0)
	_, err := s.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNilGraph)
}
