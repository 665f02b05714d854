package cluster

import "errors"

// Sentinel errors for the cluster package.
var (
	// ErrInvalidMaxIter indicates HyperParam.KMeansMaxIter <= 0.
	ErrInvalidMaxIter = errors.New("cluster: k_means_max_iter must be positive")

	// ErrInvalidEpsilon indicates HyperParam.Epsilon <= 0.
	ErrInvalidEpsilon = errors.New("cluster: epsilon must be positive")
)
