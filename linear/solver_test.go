package linear

import (
	"testing"

	"github.com/clusterr/parabel/sparsemat"
	"github.com/stretchr/testify/require"
)

// TestFitOneVsRestSeparatesLinearly checks that a trivially linearly
// separable problem (positives all load on feature 0, negatives on feature
// 1) converges and scores positives above negatives.
func TestFitOneVsRestSeparatesLinearly(t *testing.T) {
	rows := []sparsemat.Vector{
		{{Index: 0, Value: 1}},
		{{Index: 0, Value: 1}},
		{{Index: 1, Value: 1}},
		{{Index: 1, Value: 1}},
	}
	hp := DefaultHyperParam()
	hp.MaxIter = 500

	result := fitOneVsRest(rows, 2, []int{0, 1}, hp)
	require.True(t, result.converged)
	require.Greater(t, denseSparseDot(result.weights, rows[0]), denseSparseDot(result.weights, rows[2]))
}

// TestFitOneVsRestLogisticLoss exercises the logistic branch of
// lossGradientCoefficient end to end.
func TestFitOneVsRestLogisticLoss(t *testing.T) {
	rows := []sparsemat.Vector{
		{{Index: 0, Value: 2}},
		{{Index: 0, Value: 1}},
		{{Index: 1, Value: 2}},
		{{Index: 1, Value: 1}},
	}
	hp := DefaultHyperParam()
	hp.Loss = LossLogistic
	hp.MaxIter = 500

	result := fitOneVsRest(rows, 2, []int{0, 1}, hp)
	require.Greater(t, denseSparseDot(result.weights, rows[0]), denseSparseDot(result.weights, rows[2]))
}

// TestFitOneVsRestL1Regularization exercises the L1 subgradient branch; it
// should still separate, possibly with a sparser weight vector.
func TestFitOneVsRestL1Regularization(t *testing.T) {
	rows := []sparsemat.Vector{
		{{Index: 0, Value: 1}, {Index: 2, Value: 0.01}},
		{{Index: 0, Value: 1}, {Index: 2, Value: 0.02}},
		{{Index: 1, Value: 1}},
		{{Index: 1, Value: 1}},
	}
	hp := DefaultHyperParam()
	hp.Regularization = RegularizationL1
	hp.MaxIter = 500

	result := fitOneVsRest(rows, 3, []int{0, 1}, hp)
	require.Greater(t, denseSparseDot(result.weights, rows[0]), denseSparseDot(result.weights, rows[2]))
}

func TestSigmoidBounds(t *testing.T) {
	require.InDelta(t, 0.5, sigmoid(0), 1e-9)
	require.Greater(t, sigmoid(10), 0.99)
	require.Less(t, sigmoid(-10), 0.01)
}

func TestSign(t *testing.T) {
	require.Equal(t, 1.0, sign(2))
	require.Equal(t, -1.0, sign(-2))
	require.Equal(t, 0.0, sign(0))
}
