package linear

import "errors"

// Sentinel errors for the linear package.
var (
	// ErrInvalidC indicates HyperParam.C <= 0.
	ErrInvalidC = errors.New("linear: C must be positive")

	// ErrInvalidEpsilon indicates HyperParam.Epsilon <= 0.
	ErrInvalidEpsilon = errors.New("linear: epsilon must be positive")

	// ErrInvalidMaxIter indicates HyperParam.MaxIter <= 0.
	ErrInvalidMaxIter = errors.New("linear: max_iter must be positive")

	// ErrInvalidWeightThreshold indicates HyperParam.WeightThreshold < 0.
	ErrInvalidWeightThreshold = errors.New("linear: weight_threshold must be non-negative")

	// ErrInvalidLoss indicates an unrecognised Loss value.
	ErrInvalidLoss = errors.New("linear: unrecognised loss variant")

	// ErrInvalidRegularization indicates an unrecognised Regularization value.
	ErrInvalidRegularization = errors.New("linear: unrecognised regularization variant")

	// ErrDimensionMismatch indicates featureMatrix/indexToFeature shapes disagree.
	ErrDimensionMismatch = errors.New("linear: feature matrix and index_to_feature disagree in size")

	// ErrSolverNonConvergence marks a single label's fit as not having
	// reached the configured tolerance within max_iter. It is never
	// returned from Train: the caller recovers locally and keeps that
	// label's last iterate, surfaced instead via
	// MultiLabelClassifier.Converged.
	ErrSolverNonConvergence = errors.New("linear: solver did not converge within max_iter")
)
