package parabel

import (
	"github.com/rs/zerolog"

	"github.com/clusterr/parabel/cluster"
	"github.com/clusterr/parabel/linear"
)

// HyperParam configures a full forest-training run.
type HyperParam struct {
	// NTrees is the number of independent trees in the forest.
	NTrees int

	// MinBranchSize is the minimum label count a node must hold to
	// attempt a branch split; below it the node becomes a leaf.
	MinBranchSize int

	// MaxDepth bounds recursion depth; a node at MaxDepth is always a leaf.
	MaxDepth int

	// CentroidThreshold is the absolute-value floor used to prune label
	// centroid entries after L2 normalisation.
	CentroidThreshold float64

	// Linear configures the one-vs-rest classifier trained at every node.
	Linear linear.HyperParam

	// Cluster configures the balanced 2-means label clusterer.
	Cluster cluster.HyperParam

	// ConcurrencyLimit caps goroutines at every fan-out site (across
	// trees, siblings, labels, rows). <= 0 uses workpool.DefaultLimit.
	ConcurrencyLimit int

	// Logger receives Debug-level lifecycle events (forest start/end).
	// Defaults to a no-op logger; never consulted for control flow.
	Logger zerolog.Logger
}

// DefaultHyperParam returns the recognised-option defaults.
func DefaultHyperParam() HyperParam {
	return HyperParam{
		NTrees:            3,
		MinBranchSize:     100,
		MaxDepth:          20,
		CentroidThreshold: 0,
		Linear:            linear.DefaultHyperParam(),
		Cluster:           cluster.DefaultHyperParam(),
		ConcurrencyLimit:  0,
		Logger:            zerolog.Nop(),
	}
}

// Validate reports the first violated bound, or nil if hp is well-formed.
func (hp HyperParam) Validate() error {
	switch {
	case hp.NTrees <= 0:
		return ErrInvalidNTrees
	case hp.MinBranchSize <= 1:
		return ErrInvalidMinBranchSize
	case hp.MaxDepth <= 0:
		return ErrInvalidMaxDepth
	case hp.CentroidThreshold < 0:
		return ErrInvalidCentroidThreshold
	}
	if err := hp.Linear.Validate(); err != nil {
		return err
	}
	return hp.Cluster.Validate()
}
