package cluster

// HyperParam configures the balanced 2-means clusterer. k is fixed at 2 and
// balanced assignment is always on; neither is a knob, so neither appears
// as a field.
type HyperParam struct {
	// KMeansMaxIter bounds the number of assignment/update iterations.
	KMeansMaxIter int

	// Epsilon is the convergence tolerance on the change in total
	// objective (sum of each row's similarity to its assigned centroid)
	// between consecutive iterations.
	Epsilon float64
}

// DefaultHyperParam returns conservative defaults suitable for most label
// spaces.
func DefaultHyperParam() HyperParam {
	return HyperParam{
		KMeansMaxIter: 300,
		Epsilon:       1e-4,
	}
}

// Validate reports the first violated bound, or nil if hp is well-formed.
func (hp HyperParam) Validate() error {
	if hp.KMeansMaxIter <= 0 {
		return ErrInvalidMaxIter
	}
	if hp.Epsilon <= 0 {
		return ErrInvalidEpsilon
	}
	return nil
}
