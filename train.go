package parabel

import (
	"context"

	"github.com/google/uuid"

	"github.com/clusterr/parabel/internal/workpool"
	"github.com/clusterr/parabel/linear"
	"github.com/clusterr/parabel/sparsemat"
)

// Train validates ds and hp, then builds a Model: n_trees independent trees,
// each recursively partitioning the label space and fitting one-vs-rest
// linear classifiers along the way. Every tree is trained concurrently,
// bounded by hp.ConcurrencyLimit.
func Train(ctx context.Context, ds *DataSet, hp HyperParam) (*Model, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if err := hp.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := hp.Logger
	log.Debug().Str("run_id", runID.String()).Int("n_trees", hp.NTrees).Int("n_labels", ds.NLabels).Msg("training forest")

	normalized, err := l2NormalizedDataset(ctx, ds, hp.ConcurrencyLimit)
	if err != nil {
		return nil, err
	}

	allLabels, err := newLabelClusterFromDataset(normalized, hp.CentroidThreshold)
	if err != nil {
		return nil, err
	}
	allExamples, err := newTrainingExamplesFromDataset(normalized)
	if err != nil {
		return nil, err
	}

	progress := NewProgress(uint64(allLabels.Len()) * uint64(hp.NTrees))

	trainer := &treeTrainer{
		allExamples: allExamples,
		hp:          hp,
		progress:    progress,
	}

	trees, err := workpool.MapIndexed(ctx, hp.ConcurrencyLimit, hp.NTrees, func(ctx context.Context, _ int) (Tree, error) {
		root, err := trainer.trainSubtree(ctx, 1, allExamples, allLabels)
		if err != nil {
			return Tree{}, err
		}
		return Tree{Root: root}, nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("run_id", runID.String()).Msg("training complete")
	return &Model{Trees: trees, NFeatures: ds.NFeatures, RunID: runID}, nil
}

// l2NormalizedDataset returns a copy of ds with every feature list
// L2-normalised, computed in parallel across rows. LabelSets are shared,
// not copied.
func l2NormalizedDataset(ctx context.Context, ds *DataSet, concurrencyLimit int) (*DataSet, error) {
	normalized, err := workpool.MapIndexed(ctx, concurrencyLimit, len(ds.FeatureLists), func(_ context.Context, i int) (sparsemat.Vector, error) {
		return sparsemat.L2Normalize(ds.FeatureLists[i]), nil
	})
	if err != nil {
		return nil, err
	}
	return &DataSet{
		NFeatures:    ds.NFeatures,
		NLabels:      ds.NLabels,
		FeatureLists: normalized,
		LabelSets:    ds.LabelSets,
	}, nil
}

// treeTrainer holds the state shared read-only across one tree's recursion:
// the root example set (for sample-size adaptation), hyperparameters, and
// the forest-wide progress counter.
type treeTrainer struct {
	allExamples *TrainingExamples
	hp          HyperParam
	progress    *Progress
}

// trainSubtree decides branch vs leaf for one node and recurses.
func (tt *treeTrainer) trainSubtree(ctx context.Context, depth int, examples *TrainingExamples, labelCluster *LabelCluster) (TreeNode, error) {
	if depth < tt.hp.MaxDepth && labelCluster.Len() >= tt.hp.MinBranchSize {
		childClusters, err := labelCluster.Split(tt.hp.Cluster)
		if err != nil {
			return nil, err
		}
		if len(childClusters) > 1 {
			return tt.trainBranchNode(ctx, depth, examples, childClusters)
		}
	}
	return tt.trainLeafNode(ctx, examples, labelCluster.Labels)
}

func (tt *treeTrainer) trainBranchNode(ctx context.Context, depth int, examples *TrainingExamples, childClusters []*LabelCluster) (TreeNode, error) {
	tt.progress.AddTotal(uint64(len(childClusters)))

	exampleIndexLists, err := workpool.MapIndexed(ctx, tt.hp.ConcurrencyLimit, len(childClusters), func(_ context.Context, i int) ([]int, error) {
		return examples.FindExamplesWithLabels(childClusters[i].Labels), nil
	})
	if err != nil {
		return nil, err
	}

	var children []TreeNode
	var classifier *linear.MultiLabelClassifier
	err = workpool.Run(ctx, tt.hp.ConcurrencyLimit,
		func(ctx context.Context) error {
			var err error
			children, err = tt.trainChildNodes(ctx, depth, examples, childClusters, exampleIndexLists)
			return err
		},
		func(ctx context.Context) error {
			var err error
			classifier, err = tt.trainClassifier(ctx, examples, positivesByChildIndex(exampleIndexLists))
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return BranchNode{Classifier: classifier, Children: children}, nil
}

func (tt *treeTrainer) trainChildNodes(ctx context.Context, depth int, examples *TrainingExamples, childClusters []*LabelCluster, exampleIndexLists [][]int) ([]TreeNode, error) {
	return workpool.MapIndexed(ctx, tt.hp.ConcurrencyLimit, len(childClusters), func(ctx context.Context, i int) (TreeNode, error) {
		childExamples, err := examples.TakeExamplesByIndices(exampleIndexLists[i])
		if err != nil {
			return nil, err
		}
		return tt.trainSubtree(ctx, depth+1, childExamples, childClusters[i])
	})
}

func (tt *treeTrainer) trainLeafNode(ctx context.Context, examples *TrainingExamples, labels []int) (TreeNode, error) {
	exampleIndexLists, err := workpool.MapIndexed(ctx, tt.hp.ConcurrencyLimit, len(labels), func(_ context.Context, i int) ([]int, error) {
		return examples.FindExamplesWithLabel(labels[i]), nil
	})
	if err != nil {
		return nil, err
	}

	labelToPositives := make(map[int][]int, len(labels))
	for i, label := range labels {
		labelToPositives[label] = exampleIndexLists[i]
	}

	classifier, err := tt.trainClassifier(ctx, examples, labelToPositives)
	if err != nil {
		return nil, err
	}
	return LeafNode{Classifier: classifier, Labels: labels}, nil
}

// trainClassifier adapts hp.Linear's C to this node's share of the root
// example set, fits the classifier, and reports progress for every label it
// covers (child count for a routing classifier, leaf-label count for a leaf).
func (tt *treeTrainer) trainClassifier(ctx context.Context, examples *TrainingExamples, labelToPositives map[int][]int) (*linear.MultiLabelClassifier, error) {
	hp := tt.hp.Linear.Adapted(examples.Len(), tt.allExamples.Len())
	classifier, err := linear.Train(ctx, examples.FeatureMatrix, labelToPositives, examples.IndexToFeature, tt.hp.ConcurrencyLimit, hp)
	if err != nil {
		return nil, err
	}
	tt.progress.Add(uint64(len(labelToPositives)))
	return classifier, nil
}

// positivesByChildIndex keys each child's example list by its position in
// the children list: a routing classifier's K outputs are the children
// themselves, not label ids.
func positivesByChildIndex(exampleIndexLists [][]int) map[int][]int {
	out := make(map[int][]int, len(exampleIndexLists))
	for i, list := range exampleIndexLists {
		out[i] = list
	}
	return out
}
