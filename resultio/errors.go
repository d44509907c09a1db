package resultio

import "errors"

// ErrBasenameTooShort is returned by Basename when the input path's file
// name has no room for a trailing extension to strip.
var ErrBasenameTooShort = errors.New("resultio: input file name too short to strip an extension")
