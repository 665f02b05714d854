// Package workpool centralises the bounded-concurrency policy used at every
// fan-out site in parabel: across trees, across sibling subtrees, across the
// routing-classifier/children fork-join pair, across per-label one-vs-rest
// sub-problems, and across per-row normalisation passes.
//
// Every call to Run or MapIndexed creates its own golang.org/x/sync/errgroup.Group
// capped with SetLimit, rather than spawning goroutines ad hoc. The cap applies
// per call: nested calls (one per recursion level) each get their own cap, so
// the forest's total number of goroutines is not bounded by a single limit.
package workpool
