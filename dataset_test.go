package parabel

import (
	"testing"

	"github.com/clusterr/parabel/sparsemat"
	"github.com/stretchr/testify/require"
)

func TestLabelSetContainsAndIntersects(t *testing.T) {
	s := NewLabelSet(0, 2)
	require.True(t, s.Contains(0))
	require.False(t, s.Contains(1))
	require.True(t, s.IntersectsAny([]int{5, 2}))
	require.False(t, s.IntersectsAny([]int{5, 6}))
}

func fixtureDataSet() *DataSet {
	return &DataSet{
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
}

func TestDataSetValidateAcceptsWellFormed(t *testing.T) {
	require.NoError(t, fixtureDataSet().Validate())
}

func TestDataSetValidateRejectsLengthMismatch(t *testing.T) {
	ds := fixtureDataSet()
	ds.LabelSets = ds.LabelSets[:2]
	require.ErrorIs(t, ds.Validate(), ErrMalformedDataset)
}

func TestDataSetValidateRejectsEmpty(t *testing.T) {
	ds := &DataSet{NFeatures: 1, NLabels: 1}
	require.ErrorIs(t, ds.Validate(), ErrMalformedDataset)
}

func TestDataSetValidateRejectsOutOfRangeFeature(t *testing.T) {
	ds := fixtureDataSet()
	ds.FeatureLists[0] = sparsemat.Vector{{Index: 9, Value: 1}}
	require.ErrorIs(t, ds.Validate(), ErrFeatureIndexOutOfRange)
}

func TestDataSetValidateRejectsOutOfRangeLabel(t *testing.T) {
	ds := fixtureDataSet()
	ds.LabelSets[0] = NewLabelSet(99)
	require.ErrorIs(t, ds.Validate(), ErrLabelIndexOutOfRange)
}
