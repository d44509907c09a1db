package bnb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/internal/graphtest"
)

func TestSolveFindsOptimalCover(t *testing.T) {
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
		{"emptyedges", graphtest.EmptyEdges(4), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.g, nil)
			res, err := s.Solve(context.Background())
			require.NoError(t, err)
			assert.False(t, res.Stats.TimedOut)
			assert.Len(t, res.Cover, tc.opt)

			_, coveredCount := tc.g.CheckCoverage(res.Cover)
			assert.Equal(t, tc.g.NumEdges(), coveredCount)
		})
	}
}

func TestSolveRestoresGraphExactly(t *testing.T) {
	g := graphtest.Complete(6)
	before := g.Clone()

	s := New(g, nil)
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, before.NumEdges(), g.NumEdges())
	for i := 0; i < g.NumVertices(); i++ {
		assert.ElementsMatch(t, before.Neighbors(i), g.Neighbors(i))
	}
}

func TestSolveRejectsNilGraph(t *testing.T) {
	s := New(nil, nil)
	_, err := s.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestSolveHonorsDeadline(t *testing.T) {
	g := graphtest.Complete(9)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	s := New(g, nil)
	res, err := s.Solve(ctx)
	require.NoError(t, err)
	assert.True(t, res.Stats.TimedOut)
	// Even a timed-out run returns a valid cover: the trivial all-vertices
	// incumbent seeded at the start.
	_, coveredCount := g.CheckCoverage(res.Cover)
	assert.Equal(t, g.NumEdges(), coveredCount)
}
