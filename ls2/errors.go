package ls2

import "errors"

// ErrNilGraph is returned by New when g is nil.
var ErrNilGraph = errors.New("ls2: graph is nil")
