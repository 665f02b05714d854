package parabel

import "errors"

// Sentinel errors for the parabel package.
var (
	// ErrInvalidNTrees indicates HyperParam.NTrees <= 0.
	ErrInvalidNTrees = errors.New("parabel: n_trees must be positive")

	// ErrInvalidMinBranchSize indicates HyperParam.MinBranchSize <= 1.
	ErrInvalidMinBranchSize = errors.New("parabel: min_branch_size must be greater than 1")

	// ErrInvalidMaxDepth indicates HyperParam.MaxDepth <= 0.
	ErrInvalidMaxDepth = errors.New("parabel: max_depth must be positive")

	// ErrInvalidCentroidThreshold indicates HyperParam.CentroidThreshold < 0.
	ErrInvalidCentroidThreshold = errors.New("parabel: centroid_threshold must be non-negative")

	// ErrMalformedDataset indicates the feature/label list lengths disagree,
	// or the dataset is empty.
	ErrMalformedDataset = errors.New("parabel: feature_lists and label_sets must agree in length and be non-empty")

	// ErrFeatureIndexOutOfRange indicates a feature index >= n_features.
	ErrFeatureIndexOutOfRange = errors.New("parabel: feature index out of range")

	// ErrLabelIndexOutOfRange indicates a label index >= n_labels.
	ErrLabelIndexOutOfRange = errors.New("parabel: label index out of range")
)
