package parabel

import "github.com/clusterr/parabel/sparsemat"

// LabelSet is the set of label indices assigned to one training example.
type LabelSet map[int]struct{}

// NewLabelSet builds a LabelSet from a list of label indices.
func NewLabelSet(labels ...int) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Contains reports whether label is a member of s.
func (s LabelSet) Contains(label int) bool {
	_, ok := s[label]
	return ok
}

// IntersectsAny reports whether s shares at least one label with labels.
func (s LabelSet) IntersectsAny(labels []int) bool {
	for _, l := range labels {
		if s.Contains(l) {
			return true
		}
	}
	return false
}

// DataSet is the immutable input to Train: one sparse feature vector and one
// label set per training example.
type DataSet struct {
	// NFeatures is the count of distinct features, excluding the bias
	// column Train appends internally.
	NFeatures int

	// NLabels is the count of distinct labels.
	NLabels int

	// FeatureLists holds example i's sparse feature vector at index i.
	// Every index must be < NFeatures.
	FeatureLists []sparsemat.Vector

	// LabelSets holds example i's label set at index i. Every label must
	// be < NLabels.
	LabelSets []LabelSet
}

// Validate checks the well-formedness invariants Train assumes: equal,
// non-zero length of FeatureLists/LabelSets, and every feature/label index
// within its declared bound.
func (ds *DataSet) Validate() error {
	if len(ds.FeatureLists) == 0 || len(ds.FeatureLists) != len(ds.LabelSets) {
		return ErrMalformedDataset
	}
	for _, fv := range ds.FeatureLists {
		for _, p := range fv {
			if int(p.Index) >= ds.NFeatures {
				return ErrFeatureIndexOutOfRange
			}
		}
	}
	for _, ls := range ds.LabelSets {
		for label := range ls {
			if label >= ds.NLabels {
				return ErrLabelIndexOutOfRange
			}
		}
	}
	return nil
}
