// Package graph implements the mutable adjacency-set graph shared by every
// vertex-cover solver in this module.
//
// Vertices are dense integers in [0, N). Each vertex carries a neighbor set;
// the companion edge map is keyed by the canonical (min, max) pair and is
// only ever used for the coverage self-audit (CheckCoverage), never as the
// adjacency source of truth.
//
// Graph is logically immutable once loaded, with one exception: the
// branch-and-bound solver in package bnb mutates a Graph's neighborhoods
// in place during search and must restore them exactly on backtrack.
// Isolate / Restore exist for that purpose; GreedyBad and Heuristic1 in
// package heuristics also call Isolate, on their own clones.
package graph
