// Package linear trains a one-vs-rest multi-label linear classifier over a
// sparse feature matrix: for each output label, it fits a binary linear
// model separating that label's positive rows from the rest of the node's
// examples, then maps the fitted weights back into the caller's global
// feature coordinate space.
//
// The numerical solver is treated as swappable: the coordinate-space
// bookkeeping (classifier.go) is kept separate from the actual optimisation
// (solver.go), a plain gradient-descent fit over logistic or squared-hinge
// loss with L1 or L2 regularisation.
package linear
