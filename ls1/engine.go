package ls1

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/resultio"
)

const initialEdgeWeight = 0.05

// engine holds all search state for one Solve call.
type engine struct {
	g *graph.Graph

	vc    map[int]struct{}
	minVC map[int]struct{}
	edgeW map[graph.EdgeKey]float64
	taboo graph.EdgeKey

	uncovered map[graph.EdgeKey]struct{}
	nodeW     []float64 // reusable scratch, indexed by vertex id

	rng   *rand.Rand
	ctx   context.Context
	start time.Time
	trace *resultio.TraceWriter

	iterations int64
}

func newEngine(g *graph.Graph, initial []int, rng *rand.Rand, ctx context.Context, start time.Time, tw *resultio.TraceWriter) *engine {
	vc := make(map[int]struct{}, len(initial))
	for _, v := range initial {
		vc[v] = struct{}{}
	}
	edgeW := make(map[graph.EdgeKey]float64, g.NumEdges())
	for _, e := range g.Edges() {
		edgeW[graph.Key(e[0], e[1])] = initialEdgeWeight
	}

	return &engine{
		g:         g,
		vc:        vc,
		minVC:     cloneSet(vc),
		edgeW:     edgeW,
		uncovered: make(map[graph.EdgeKey]struct{}),
		nodeW:     make([]float64, g.NumVertices()),
		rng:       rng,
		ctx:       ctx,
		start:     start,
		trace:     tw,
	}
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// sortedIntKeys returns m's keys in ascending order. Go randomizes map
// iteration order per process, so every offset-into-a-set draw and every
// first-encountered tie-break below goes through this (or sortedEdgeKeys)
// instead of ranging over the map directly — otherwise the same rng seed
// would resolve to a different element on different runs.
func sortedIntKeys(s map[int]struct{}) []int {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedEdgeKeys(s map[graph.EdgeKey]struct{}) []graph.EdgeKey {
	keys := make([]graph.EdgeKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// randomIntKey returns a uniformly random key of an int-keyed set by
// drawing an offset and indexing into its sorted key order.
func randomIntKey(s map[int]struct{}, rng *rand.Rand) int {
	keys := sortedIntKeys(s)
	return keys[rng.Intn(len(keys))]
}

func randomEdgeKey(s map[graph.EdgeKey]struct{}, rng *rand.Rand) graph.EdgeKey {
	keys := sortedEdgeKeys(s)
	return keys[rng.Intn(len(keys))]
}

// run executes the main loop until ctx is done, leaving minVC holding the
// smallest cover observed.
func (e *engine) run() error {
	for e.ctx.Err() == nil {
		e.iterations++
		if err := e.dropPhase(); err != nil {
			return err
		}
		if len(e.uncovered) == 0 {
			return nil // dropPhase bailed out early: ctx expired, or the cover is empty (no edges)
		}
		e.swapPhase()
	}
	return nil
}

// dropPhase removes random cover vertices until an uncovered edge
// appears, recording a new incumbent each time the cover shrinks.
func (e *engine) dropPhase() error {
	for len(e.uncovered) == 0 {
		if e.ctx.Err() != nil {
			return nil
		}
		if len(e.vc) == 0 {
			return nil // nothing left to drop: the graph has no edges
		}
		if len(e.vc) < len(e.minVC) {
			e.minVC = cloneSet(e.vc)
			if e.trace != nil {
				if err := e.trace.Record(time.Since(e.start), len(e.minVC)); err != nil {
					return err
				}
			}
		}

		r := randomIntKey(e.vc, e.rng)
		for _, v := range e.g.Neighbors(r) {
			if _, inVC := e.vc[v]; !inVC {
				e.uncovered[graph.Key(r, v)] = struct{}{}
			}
		}
		if len(e.uncovered) > 0 {
			e.taboo = graph.Key(0, 0)
			for k := range e.edgeW {
				e.edgeW[k] = initialEdgeWeight
			}
		}
		delete(e.vc, r)
	}
	return nil
}

// swapPhase picks a random uncovered edge, swaps in its better endpoint
// for a cover vertex, and ages the remaining uncovered edges' weights.
func (e *engine) swapPhase() {
	edge := randomEdgeKey(e.uncovered, e.rng)
	a, b := e.vertexPairToExchange(edge)

	delete(e.vc, b)
	for _, v := range e.g.Neighbors(b) {
		if _, inVC := e.vc[v]; !inVC {
			e.uncovered[graph.Key(b, v)] = struct{}{}
		}
	}

	e.vc[a] = struct{}{}
	for _, v := range e.g.Neighbors(a) {
		delete(e.uncovered, graph.Key(a, v))
	}

	e.taboo = graph.Key(a, b)

	for k := range e.uncovered {
		e.edgeW[k]++
	}
}

// vertexPairToExchange picks (a, b) with a an endpoint of e and b a cover
// vertex, maximizing gain(a,b) = nodeW(a) - nodeW(b) + edgeW(a,b), taboo
// swaps excluded, first-encountered wins ties.
func (e *engine) vertexPairToExchange(edge graph.EdgeKey) (a, b int) {
	ea, eb := edge.Decode()
	candidates := [2]int{ea, eb}

	e.refreshNodeWeight(candidates[0])
	e.refreshNodeWeight(candidates[1])
	vcKeys := sortedIntKeys(e.vc)
	for _, u := range vcKeys {
		e.refreshNodeWeight(u)
	}

	maxGain := math.Inf(-1)
	for _, i := range candidates {
		for _, j := range vcKeys {
			cand := graph.Key(i, j)
			if cand == e.taboo {
				continue
			}
			gain := e.nodeW[i] - e.nodeW[j]
			if w, ok := e.edgeW[cand]; ok {
				gain += w
			}
			if gain > maxGain {
				maxGain = gain
				a, b = i, j
			}
		}
	}
	return a, b
}

// refreshNodeWeight recomputes nodeW(u) = sum of edgeW(u,v) over
// neighbors v currently outside the cover.
func (e *engine) refreshNodeWeight(u int) {
	var total float64
	for _, v := range e.g.Neighbors(u) {
		if _, inVC := e.vc[v]; !inVC {
			total += e.edgeW[graph.Key(u, v)]
		}
	}
	e.nodeW[u] = total
}
