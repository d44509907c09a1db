// Command mvc runs one of four vertex-cover algorithms against an input
// instance file and writes its trace and solution to an output
// directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SumithraSriram/vertexcover/bnb"
	"github.com/SumithraSriram/vertexcover/graph"
	"github.com/SumithraSriram/vertexcover/heuristics"
	"github.com/SumithraSriram/vertexcover/ls1"
	"github.com/SumithraSriram/vertexcover/ls2"
	"github.com/SumithraSriram/vertexcover/resultio"
	"github.com/SumithraSriram/vertexcover/solver"
)

func main() {
	instPath := flag.String("inst", "input.txt", "input instance file")
	alg := flag.String("alg", "BnB", "algorithm: BnB, Approx, LS1, or LS2")
	cutoff := flag.Int("time", 600, "wall-clock time budget in seconds")
	seed := flag.Int("seed", 0, "RNG seed (LS1/LS2 only)")
	outDir := flag.String("out", "output", "output directory")
	quiet := flag.Bool("quiet", false, "suppress the progress banner")
	flag.Parse()

	if err := run(*instPath, *alg, *cutoff, *seed, *outDir, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(instPath, alg string, cutoffSeconds, seed int, outDir string, quiet bool) error {
	g, err := graph.Load(instPath)
	if err != nil {
		return fmt.Errorf("mvc: %w", err)
	}

	base, err := resultio.Basename(instPath)
	if err != nil {
		return fmt.Errorf("mvc: %w", err)
	}

	algTag, err := algorithmTag(alg)
	if err != nil {
		return fmt.Errorf("mvc: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mvc: creating output directory: %w", err)
	}

	tracePath, solPath := resultio.Paths(outDir, base, algTag, cutoffSeconds, seed)
	tw, err := resultio.OpenTrace(tracePath)
	if err != nil {
		return fmt.Errorf("mvc: %w", err)
	}
	defer tw.Close()

	if !quiet {
		fmt.Printf("mvc: running %s on %s (N=%d, M=%d), cutoff=%ds\n", alg, instPath, g.NumVertices(), g.NumEdges(), cutoffSeconds)
	}

	s := buildSolver(g, algTag, tw, seed)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cutoffSeconds)*time.Second)
	defer cancel()

	res, err := s.Solve(ctx)
	if err != nil {
		return fmt.Errorf("mvc: %w", err)
	}

	if err := resultio.WriteSolution(solPath, res.Cover); err != nil {
		return fmt.Errorf("mvc: %w", err)
	}

	if !quiet {
		fmt.Printf("mvc: done, cover size %d (elapsed %s)\n", len(res.Cover), res.Stats.Elapsed)
	}
	return nil
}

func algorithmTag(alg string) (resultio.Algorithm, error) {
	switch alg {
	case "BnB":
		return resultio.AlgBnB, nil
	case "Approx":
		return resultio.AlgApprox, nil
	case "LS1":
		return resultio.AlgLS1, nil
	case "LS2":
		return resultio.AlgLS2, nil
	default:
		return "", fmt.Errorf("unknown -alg %q (want BnB, Approx, LS1, or LS2)", alg)
	}
}

func buildSolver(g *graph.Graph, alg resultio.Algorithm, tw *resultio.TraceWriter, seed int) solver.Solver {
	switch alg {
	case resultio.AlgApprox:
		return heuristics.New(g, tw)
	case resultio.AlgLS1:
		return ls1.New(g, tw, int64(seed))
	case resultio.AlgLS2:
		return ls2.New(g, tw, int64(seed))
	default:
		return bnb.New(g, tw)
	}
}
