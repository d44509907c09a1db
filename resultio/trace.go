package resultio

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// TraceWriter appends one "best so far" event per improvement to a trace
// file, in "<elapsed_seconds>,<current_best_size>" lines.
type TraceWriter struct {
	f *os.File
	w *bufio.Writer
}

// OpenTrace creates (truncating) the trace file at path for writing.
func OpenTrace(path string) (*TraceWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("resultio: opening trace file: %w", err)
	}
	return &TraceWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// Record appends one improvement event.
func (tw *TraceWriter) Record(elapsed time.Duration, bestSize int) error {
	_, err := fmt.Fprintf(tw.w, "%.6f,%d\n", elapsed.Seconds(), bestSize)
	if err != nil {
		return fmt.Errorf("resultio: writing trace entry: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file. Safe to
// call via defer immediately after a successful OpenTrace.
func (tw *TraceWriter) Close() error {
	if err := tw.w.Flush(); err != nil {
		tw.f.Close()
		return fmt.Errorf("resultio: flushing trace file: %w", err)
	}
	if err := tw.f.Close(); err != nil {
		return fmt.Errorf("resultio: closing trace file: %w", err)
	}
	return nil
}
