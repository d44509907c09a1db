package graph

import "errors"

// Sentinel errors returned by Load. Callers should use errors.Is to branch
// on the kind of failure rather than matching error text.
var (
	// ErrInputUnreadable indicates the instance file could not be opened or read.
	ErrInputUnreadable = errors.New("graph: input file could not be opened or read")

	// ErrInvalidFormat indicates the header or an adjacency line failed to parse.
	ErrInvalidFormat = errors.New("graph: malformed instance file")

	// ErrSizeExceeded indicates N exceeds the packing capacity of the edge key.
	ErrSizeExceeded = errors.New("graph: vertex count exceeds edge-key packing capacity")
)
