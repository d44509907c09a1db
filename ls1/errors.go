package ls1

import "errors"

// ErrNilGraph is returned by New when g is nil.
var ErrNilGraph = errors.New("ls1: graph is nil")
