package parabel

import (
	"testing"

	"github.com/clusterr/parabel/sparsemat"
	"github.com/stretchr/testify/require"
)

func fixtureTrainingExamples(t *testing.T) *TrainingExamples {
	t.Helper()
	ds := &DataSet{
		NFeatures: 4,
		NLabels:   3,
		FeatureLists: []sparsemat.Vector{
			{{Index: 0, Value: 1}, {Index: 2, Value: 2}},
			{{Index: 1, Value: 1}, {Index: 3, Value: 2}},
			{{Index: 0, Value: 1}, {Index: 3, Value: 2}},
		},
		LabelSets: []LabelSet{
			NewLabelSet(0, 1),
			NewLabelSet(0, 2),
			NewLabelSet(1, 2),
		},
	}
	te, err := newTrainingExamplesFromDataset(ds)
	require.NoError(t, err)
	return te
}

// TestNewTrainingExamplesFromDatasetAppendsBiasColumn checks the bias
// invariant: every row gains a local column whose global index is
// n_features and whose value is 1.
func TestNewTrainingExamplesFromDatasetAppendsBiasColumn(t *testing.T) {
	te := fixtureTrainingExamples(t)
	require.Equal(t, 5, te.NFeatures()) // 4 real features + bias
	require.Equal(t, []int{0, 1, 2, 3, 4}, te.IndexToFeature)

	for i := 0; i < te.Len(); i++ {
		row, err := te.FeatureMatrix.Row(i)
		require.NoError(t, err)
		last := row[len(row)-1]
		require.EqualValues(t, 4, last.Index)
		require.EqualValues(t, 1, last.Value)
	}
}

func TestFindExamplesWithLabel(t *testing.T) {
	te := fixtureTrainingExamples(t)
	require.Equal(t, []int{0, 1}, te.FindExamplesWithLabel(0))
	require.Equal(t, []int{0, 2}, te.FindExamplesWithLabel(1))
	require.Equal(t, []int{1, 2}, te.FindExamplesWithLabel(2))
}

func TestFindExamplesWithLabelsUnion(t *testing.T) {
	te := fixtureTrainingExamples(t)
	// label 0 alone hits rows {0,1}; label 2 alone hits rows {1,2}; union sound.
	got := te.FindExamplesWithLabels([]int{0, 2})
	require.ElementsMatch(t, []int{0, 1, 2}, got)
}

// TestTakeExamplesByIndicesRemapsFeatures checks feature-remap transitivity
// and global-index preservation across a chain of two shrinkings.
func TestTakeExamplesByIndicesRemapsFeatures(t *testing.T) {
	te := fixtureTrainingExamples(t)

	first, err := te.TakeExamplesByIndices([]int{0, 2}) // rows use local cols {0,2,4} and {0,3,4}
	require.NoError(t, err)
	require.Equal(t, 2, first.Len())

	for _, globalIdx := range first.IndexToFeature {
		require.Contains(t, []int{0, 2, 3, 4}, globalIdx)
	}

	second, err := first.TakeExamplesByIndices([]int{0})
	require.NoError(t, err)
	require.Equal(t, 1, second.Len())
	for _, globalIdx := range second.IndexToFeature {
		require.Contains(t, []int{0, 2, 4}, globalIdx)
	}

	// label sets are shared by reference with the root, not copied.
	require.True(t, second.LabelSets[0].Contains(0))
}
