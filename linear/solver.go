package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/clusterr/parabel/sparsemat"
)

// solverResult is one label's fitted weights in the feature matrix's local
// column space, plus whether the gradient norm reached hp.Epsilon within
// hp.MaxIter iterations.
type solverResult struct {
	weights   []float64
	converged bool
}

// fitOneVsRest fits a single binary linear model distinguishing the rows in
// positives from every other row of rows, via full-batch gradient descent on
// reg(w) + C*sum(loss). It never returns an error: a non-converged fit is
// signalled through solverResult.converged and the caller (classifier.go)
// treats it as recoverable.
//
// This inner loop never polls for cancellation; only the fan-out across
// labels (in Train) is subject to the shared errgroup context.
func fitOneVsRest(rows []sparsemat.Vector, nCols int, positives []int, hp HyperParam) solverResult {
	n := len(rows)
	y := make([]float64, n)
	for i := range y {
		y[i] = -1
	}
	for _, i := range positives {
		y[i] = 1
	}

	w := make([]float64, nCols)
	grad := make([]float64, nCols)
	const eta0 = 0.5

	converged := false
	for iter := 0; iter < hp.MaxIter; iter++ {
		floats.Scale(0, grad)

		for i, row := range rows {
			s := denseSparseDot(w, row)
			coeff := lossGradientCoefficient(hp.Loss, y[i], s)
			if coeff == 0 {
				continue
			}
			for _, p := range row {
				grad[p.Index] += hp.C * coeff * float64(p.Value)
			}
		}

		switch hp.Regularization {
		case RegularizationL2:
			floats.Add(grad, w)
		case RegularizationL1:
			for j := range grad {
				grad[j] += sign(w[j])
			}
		}

		gradNorm := floats.Norm(grad, 2)
		if gradNorm < hp.Epsilon {
			converged = true
			break
		}

		eta := eta0 / (1 + float64(iter))
		floats.AddScaled(w, -eta, grad)
	}

	return solverResult{weights: w, converged: converged}
}

// lossGradientCoefficient returns the scalar c such that d(loss)/dw = c*x
// for a single example with label y and margin score s = w.x.
func lossGradientCoefficient(loss Loss, y, s float64) float64 {
	switch loss {
	case LossSquaredHinge:
		margin := 1 - y*s
		if margin <= 0 {
			return 0
		}
		return -2 * y * margin
	case LossLogistic:
		// d/dw log(1+exp(-y*s)) = -y*sigmoid(-y*s)
		return -y * sigmoid(-y*s)
	default:
		return 0
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func denseSparseDot(w []float64, row sparsemat.Vector) float64 {
	var sum float64
	for _, p := range row {
		sum += w[p.Index] * float64(p.Value)
	}
	return sum
}
