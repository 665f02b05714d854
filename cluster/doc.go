// Package cluster implements balanced spherical 2-means partitioning, used
// to recursively split a label space in two: given a matrix whose rows are
// L2-normalised label centroids, Split assigns every row to one of exactly
// two clusters whose sizes differ by at most one, iterating until
// assignments stabilise or the configured tolerance is reached.
package cluster
