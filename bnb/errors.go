package bnb

import "errors"

// ErrNilGraph is returned by New when g is nil.
var ErrNilGraph = errors.New("bnb: graph is nil")
