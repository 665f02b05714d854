package parabel

import (
	"sort"

	"github.com/clusterr/parabel/cluster"
	"github.com/clusterr/parabel/sparsemat"
)

// LabelCluster holds a subset of the label space plus each label's centroid
// feature vector, both indexed in lockstep: FeatureMatrix.Row(i) is the
// centroid of Labels[i].
type LabelCluster struct {
	Labels        []int
	FeatureMatrix *sparsemat.Matrix
}

func newLabelCluster(labels []int, featureMatrix *sparsemat.Matrix) *LabelCluster {
	return &LabelCluster{Labels: labels, FeatureMatrix: featureMatrix}
}

// newLabelClusterFromDataset computes every label's centroid (the
// L2-normalised sum of feature vectors of examples carrying that label),
// prunes it with threshold, and returns the root LabelCluster over the
// dataset's full label space. ds's feature lists are assumed already
// L2-normalised.
func newLabelClusterFromDataset(ds *DataSet, threshold float64) (*LabelCluster, error) {
	labels, centroids := computeLabelCentroids(ds, threshold)
	matrix, err := sparsemat.NewFromRows(centroids, ds.NFeatures)
	if err != nil {
		return nil, err
	}
	return newLabelCluster(labels, matrix), nil
}

// computeLabelCentroids groups feature vectors by label, sums them per
// feature, then L2-normalises and prunes each sum. The returned labels are
// sorted ascending and centroids are index-aligned with them: map iteration
// order is randomized per run, so the sort is what makes two calls on
// identical input produce identical output.
func computeLabelCentroids(ds *DataSet, threshold float64) ([]int, []sparsemat.Vector) {
	sums := make(map[int]map[sparsemat.Index]float32)
	for i, features := range ds.FeatureLists {
		for label := range ds.LabelSets[i] {
			featureToSum, ok := sums[label]
			if !ok {
				featureToSum = make(map[sparsemat.Index]float32)
				sums[label] = featureToSum
			}
			for _, p := range features {
				featureToSum[p.Index] += float32(p.Value)
			}
		}
	}

	labels := make([]int, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	centroids := make([]sparsemat.Vector, len(labels))
	for i, label := range labels {
		featureToSum := sums[label]
		v := make(sparsemat.Vector, 0, len(featureToSum))
		for idx, val := range featureToSum {
			v = append(v, sparsemat.Pair{Index: idx, Value: sparsemat.Value(val)})
		}
		v = sparsemat.L2Normalize(v)
		v = sparsemat.PruneWithThreshold(v, sparsemat.Value(threshold))
		v = sparsemat.SortByIndex(v)

		centroids[i] = v
	}
	return labels, centroids
}

// Len reports the number of labels in the cluster.
func (lc *LabelCluster) Len() int {
	return len(lc.Labels)
}

// Split partitions the cluster into two balanced sub-clusters via cluster.Split.
// It returns (nil, nil) when the underlying clusterer reports a degenerate
// result (too few labels to split, or everything landed in one group);
// callers treat that as "stop branching, train a leaf". Sub-cluster feature
// matrices are row selections only (columns are not shrunk), since centroids
// live in the dataset's global feature space and siblings must remain
// comparable when re-split against one another.
func (lc *LabelCluster) Split(hp cluster.HyperParam) ([]*LabelCluster, error) {
	indexGroups, err := cluster.Split(lc.FeatureMatrix, hp)
	if err != nil {
		return nil, err
	}
	if len(indexGroups) <= 1 {
		return nil, nil
	}

	out := make([]*LabelCluster, len(indexGroups))
	for i, indices := range indexGroups {
		child, err := lc.takeLabelsByIndices(indices)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func (lc *LabelCluster) takeLabelsByIndices(indices []int) (*LabelCluster, error) {
	newLabels := make([]int, len(indices))
	for i, idx := range indices {
		newLabels[i] = lc.Labels[idx]
	}
	newMatrix, err := lc.FeatureMatrix.CopyOuterDims(indices)
	if err != nil {
		return nil, err
	}
	return newLabelCluster(newLabels, newMatrix), nil
}
