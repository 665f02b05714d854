package linear

import (
	"context"
	"sort"

	"github.com/clusterr/parabel/internal/workpool"
	"github.com/clusterr/parabel/sparsemat"
)

// MultiLabelClassifier is the fitted one-vs-rest model for one tree node: a
// sparse weight vector per label, expressed in the caller's global feature
// coordinate space, plus bias-free inference via Score.
type MultiLabelClassifier struct {
	// Labels holds the global label id each row of Weights corresponds to.
	Labels []int

	// Weights holds one sparse weight vector per label, sorted ascending
	// by (global) feature index, already pruned below WeightThreshold.
	Weights []sparsemat.Vector

	// Converged reports, per label, whether the solver reached Epsilon
	// within MaxIter. A false entry is not an error: the caller keeps the
	// last iterate and may choose to log it.
	Converged []bool
}

// Train fits one binary classifier per entry of labelToPositives against
// featureMatrix, in parallel across labels bounded by concurrencyLimit (<= 0
// uses workpool.DefaultLimit).
//
// featureMatrix rows are the node's training examples in local (node-scoped)
// column order; indexToFeature translates a local column index back to the
// caller's global feature id, so the returned Weights can be merged across
// tree nodes that each saw a different feature subset. hp.C is used as
// given; callers needing per-node scaling call hp.Adapted beforehand.
func Train(ctx context.Context, featureMatrix *sparsemat.Matrix, labelToPositives map[int][]int, indexToFeature []int, concurrencyLimit int, hp HyperParam) (*MultiLabelClassifier, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	if len(indexToFeature) != featureMatrix.Cols() {
		return nil, ErrDimensionMismatch
	}

	labels := make([]int, 0, len(labelToPositives))
	for label := range labelToPositives {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	rows := make([]sparsemat.Vector, featureMatrix.Rows())
	for i := range rows {
		row, err := featureMatrix.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	type fit struct {
		weights   sparsemat.Vector
		converged bool
	}

	fits, err := workpool.MapIndexed(ctx, concurrencyLimit, len(labels), func(_ context.Context, i int) (fit, error) {
		result := fitOneVsRest(rows, featureMatrix.Cols(), labelToPositives[labels[i]], hp)
		return fit{
			weights:   toGlobalSparseVector(result.weights, indexToFeature, hp.WeightThreshold),
			converged: result.converged,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	out := &MultiLabelClassifier{
		Labels:    labels,
		Weights:   make([]sparsemat.Vector, len(labels)),
		Converged: make([]bool, len(labels)),
	}
	for i, f := range fits {
		out.Weights[i] = f.weights
		out.Converged[i] = f.converged
	}
	return out, nil
}

// toGlobalSparseVector prunes entries whose magnitude falls below threshold,
// remaps local column indices to global feature ids, and returns the result
// sorted ascending by (global) index.
func toGlobalSparseVector(dense []float64, indexToFeature []int, threshold float64) sparsemat.Vector {
	out := make(sparsemat.Vector, 0, len(dense))
	for localIdx, w := range dense {
		if absFloat64(w) < threshold {
			continue
		}
		out = append(out, sparsemat.Pair{
			Index: sparsemat.Index(indexToFeature[localIdx]),
			Value: sparsemat.Value(w),
		})
	}
	return sparsemat.SortByIndex(out)
}

func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Score returns the raw margin w.x for the classifier fitted to labelIdx
// (an index into Labels/Weights, not a label id).
func (c *MultiLabelClassifier) Score(labelIdx int, row sparsemat.Vector) float64 {
	return sparsemat.Dot(c.Weights[labelIdx], row)
}

