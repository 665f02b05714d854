package parabel

import "github.com/clusterr/parabel/sparsemat"

// TrainingExamples is the per-subtree view of the training set: a row-major
// feature matrix in local (node-scoped) column order, a map back to global
// feature indices, and each row's label set by shared reference.
type TrainingExamples struct {
	FeatureMatrix  *sparsemat.Matrix
	IndexToFeature []int
	LabelSets      []LabelSet
}

func newTrainingExamples(featureMatrix *sparsemat.Matrix, indexToFeature []int, labelSets []LabelSet) *TrainingExamples {
	return &TrainingExamples{
		FeatureMatrix:  featureMatrix,
		IndexToFeature: indexToFeature,
		LabelSets:      labelSets,
	}
}

// newTrainingExamplesFromDataset appends a bias column (value 1, global
// index ds.NFeatures) to every example so the linear solver never needs to
// model an explicit intercept, then builds the root TrainingExamples over
// the whole dataset. ds's feature lists are assumed already L2-normalised
// and sorted; the bias column's index exceeds every real feature index, so
// appending preserves sort order.
func newTrainingExamplesFromDataset(ds *DataSet) (*TrainingExamples, error) {
	biasIndex := sparsemat.Index(ds.NFeatures)
	rows := make([]sparsemat.Vector, len(ds.FeatureLists))
	for i, fv := range ds.FeatureLists {
		row := make(sparsemat.Vector, len(fv), len(fv)+1)
		copy(row, fv)
		row = append(row, sparsemat.Pair{Index: biasIndex, Value: 1})
		rows[i] = row
	}

	nLocalFeatures := ds.NFeatures + 1
	matrix, err := sparsemat.NewFromRows(rows, nLocalFeatures)
	if err != nil {
		return nil, err
	}

	indexToFeature := make([]int, nLocalFeatures)
	for i := range indexToFeature {
		indexToFeature[i] = i
	}

	return newTrainingExamples(matrix, indexToFeature, ds.LabelSets), nil
}

// Len reports the number of training examples in this view.
func (te *TrainingExamples) Len() int {
	return te.FeatureMatrix.Rows()
}

// NFeatures reports the local (node-scoped) feature dimensionality.
func (te *TrainingExamples) NFeatures() int {
	return te.FeatureMatrix.Cols()
}

// FindExamplesWithLabel returns, ascending, the row indices whose label set
// contains label.
func (te *TrainingExamples) FindExamplesWithLabel(label int) []int {
	var out []int
	for i, ls := range te.LabelSets {
		if ls.Contains(label) {
			out = append(out, i)
		}
	}
	return out
}

// FindExamplesWithLabels returns, ascending, the row indices whose label set
// intersects labels. An example may satisfy more than one child's label set;
// it appears in every matching child's result.
func (te *TrainingExamples) FindExamplesWithLabels(labels []int) []int {
	var out []int
	for i, ls := range te.LabelSets {
		if ls.IntersectsAny(labels) {
			out = append(out, i)
		}
	}
	return out
}

// TakeExamplesByIndices returns a new TrainingExamples restricted to the
// given rows, with dead columns compacted out of the feature matrix.
// IndexToFeature is recomposed through the receiver's own map, so it always
// refers to original (dataset-global) feature indices regardless of how
// many times column-shrinking has already happened along this subtree's
// ancestry. Label sets are shared by reference, not copied.
func (te *TrainingExamples) TakeExamplesByIndices(indices []int) (*TrainingExamples, error) {
	selected, err := te.FeatureMatrix.CopyOuterDims(indices)
	if err != nil {
		return nil, err
	}
	shrunk, oldColOf := selected.ShrinkColumnIndices()

	newIndexToFeature := make([]int, len(oldColOf))
	for newCol, oldCol := range oldColOf {
		newIndexToFeature[newCol] = te.IndexToFeature[oldCol]
	}

	newLabelSets := make([]LabelSet, len(indices))
	for i, rowIdx := range indices {
		newLabelSets[i] = te.LabelSets[rowIdx]
	}

	return newTrainingExamples(shrunk, newIndexToFeature, newLabelSets), nil
}
