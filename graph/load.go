package graph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load parses an instance file in this format: a header line "N M W" (vertex count, edge count, unused), then N
// lines of whitespace-separated 1-based neighbor ids, one line per vertex.
// Ids are converted to 0-based internally. Redundant listings of the same
// edge (it appears on both endpoints' lines, as the format guarantees)
// collapse naturally since AddEdge is idempotent on the edge map.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: opening %q: %w", path, ErrInputUnreadable)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("graph: %q has no header line: %w", path, ErrInvalidFormat)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 2 {
		return nil, fmt.Errorf("graph: %q header %q: %w", path, scanner.Text(), ErrInvalidFormat)
	}
	n, err := strconv.Atoi(header[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("graph: %q vertex count %q: %w", path, header[0], ErrInvalidFormat)
	}
	if n > maxVertexID {
		return nil, fmt.Errorf("graph: %q declares N=%d: %w", path, n, ErrSizeExceeded)
	}

	g := New(n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			// A vertex with no remaining neighbors may simply have an
			// empty (or absent, at EOF) line; treat absence as empty.
			break
		}
		for _, tok := range strings.Fields(scanner.Text()) {
			j, err := strconv.Atoi(tok)
			if err != nil || j < 1 || j > n {
				return nil, fmt.Errorf("graph: %q vertex %d neighbor token %q: %w", path, i+1, tok, ErrInvalidFormat)
			}
			g.AddEdge(i, j-1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading %q: %w", path, ErrInputUnreadable)
	}

	return g, nil
}
