// Package simplex implements the two-phase-free tableau simplex method
// for small linear programs (Dantzig's pivoting rule with Bland-style
// ratio test). It is a straight port of the reference solver's own LP
// tableau, kept for parity with the original program's source tree but
// not wired into any of the four vertex-cover solvers: none of them
// formulate or solve an LP relaxation. No package in this module imports
// simplex; it exists purely as a preserved, self-contained utility.
package simplex
