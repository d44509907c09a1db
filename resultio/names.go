package resultio

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Basename strips the trailing six characters (the size of an extension
// like ".graph") from an input path's file name, yielding the B used to
// build output file names.
func Basename(inputPath string) (string, error) {
	name := filepath.Base(inputPath)
	if len(name) <= 6 {
		return "", ErrBasenameTooShort
	}
	return name[:len(name)-6], nil
}

// Algorithm identifies which solver produced a result, for output naming.
type Algorithm string

const (
	AlgBnB    Algorithm = "BnB"
	AlgApprox Algorithm = "Approx"
	AlgLS1    Algorithm = "LS1"
	AlgLS2    Algorithm = "LS2"
)

// Paths computes the (trace, solution) file paths for a run. cutoff and
// seed are ignored where the algorithm tag doesn't use them (Approx uses
// neither; BnB uses cutoff only).
func Paths(dir string, base string, alg Algorithm, cutoffSeconds, seed int) (tracePath, solPath string) {
	var tag string
	switch alg {
	case AlgApprox:
		tag = string(alg)
	case AlgBnB:
		tag = fmt.Sprintf("%s_%s", alg, strconv.Itoa(cutoffSeconds))
	case AlgLS1, AlgLS2:
		tag = fmt.Sprintf("%s_%s_%s", alg, strconv.Itoa(cutoffSeconds), strconv.Itoa(seed))
	default:
		tag = string(alg)
	}
	stem := fmt.Sprintf("%s_%s", base, tag)
	return filepath.Join(dir, stem+".trace"), filepath.Join(dir, stem+".sol")
}
