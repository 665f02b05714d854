package parabel

import (
	"github.com/google/uuid"

	"github.com/clusterr/parabel/linear"
)

// Model is the trained forest: one independent tree per NTrees, plus the
// original feature-space dimensionality every classifier's weights are
// expressed in.
type Model struct {
	Trees     []Tree
	NFeatures int

	// RunID correlates this model with the training run that produced it,
	// e.g. for matching up Logger output from the same Train call.
	RunID uuid.UUID
}

// Tree owns its root node; everything below is reached by walking Children.
type Tree struct {
	Root TreeNode
}

// TreeNode is either a BranchNode or a LeafNode.
type TreeNode interface {
	isTreeNode()
}

// BranchNode routes an example toward one or more children: Classifier has
// one output per entry of Children, in the same order.
type BranchNode struct {
	Classifier *linear.MultiLabelClassifier
	Children   []TreeNode
}

func (BranchNode) isTreeNode() {}

// LeafNode scores an example against every label it holds: Classifier has
// one output per entry of Labels, in the same order.
type LeafNode struct {
	Classifier *linear.MultiLabelClassifier
	Labels     []int
}

func (LeafNode) isTreeNode() {}
