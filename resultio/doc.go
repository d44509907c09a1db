/*
Package resultio writes the two output files each solver produces: a
trace of "best so far" improvement events and a final solution listing.
Callers never touch *os.File directly — TraceWriter owns the handle for
the duration of a solve and is always closed via defer immediately after
a successful Open, releasing it on every exit path including a deadline
expiry.

Output path naming follows the basename/algorithm-tag convention: for an
input file whose basename (stripped of its trailing six-character
extension) is B, algorithm tag A, and applicable cutoff/seed suffixes,
files land at <dir>/B_A[_cutoff][_seed].trace and the matching .sol.
*/
package resultio
