package linear

// Loss selects the per-example loss function fit by the solver.
type Loss int

const (
	// LossSquaredHinge is the L2-SVM loss max(0, 1 - y*s)^2.
	LossSquaredHinge Loss = iota
	// LossLogistic is the logistic loss log(1 + exp(-y*s)).
	LossLogistic
)

// Regularization selects the weight-vector penalty fit by the solver.
type Regularization int

const (
	// RegularizationL2 penalises 0.5*||w||^2 (ridge).
	RegularizationL2 Regularization = iota
	// RegularizationL1 penalises ||w||_1 (lasso), via subgradient descent.
	RegularizationL1
)

// HyperParam configures the one-vs-rest linear trainer.
type HyperParam struct {
	Loss            Loss
	Regularization  Regularization
	C               float64 // regularisation strength; minimises reg(w) + C*sum(loss)
	Epsilon         float64 // convergence tolerance on gradient norm
	MaxIter         int     // iteration cap
	WeightThreshold float64 // prune |weight| < WeightThreshold from the fitted model

	// AdaptToSampleSize enables Adapted's C-scaling.
	AdaptToSampleSize bool
}

// DefaultHyperParam returns conservative defaults suitable for most nodes.
func DefaultHyperParam() HyperParam {
	return HyperParam{
		Loss:              LossSquaredHinge,
		Regularization:    RegularizationL2,
		C:                 1.0,
		Epsilon:           1e-2,
		MaxIter:           1000,
		WeightThreshold:   1e-5,
		AdaptToSampleSize: true,
	}
}

// Validate reports the first violated bound, or nil if hp is well-formed.
func (hp HyperParam) Validate() error {
	if hp.C <= 0 {
		return ErrInvalidC
	}
	if hp.Epsilon <= 0 {
		return ErrInvalidEpsilon
	}
	if hp.MaxIter <= 0 {
		return ErrInvalidMaxIter
	}
	if hp.WeightThreshold < 0 {
		return ErrInvalidWeightThreshold
	}
	if hp.Loss != LossSquaredHinge && hp.Loss != LossLogistic {
		return ErrInvalidLoss
	}
	if hp.Regularization != RegularizationL2 && hp.Regularization != RegularizationL1 {
		return ErrInvalidRegularization
	}
	return nil
}

// Adapted returns hp with C scaled proportionally to how small this node's
// example count is relative to the whole training set (C' = C * nodeN /
// totalN), so the effective per-example penalty stays stable across tree
// depth. A no-op when AdaptToSampleSize is false or totalN is zero.
func (hp HyperParam) Adapted(nodeN, totalN int) HyperParam {
	if !hp.AdaptToSampleSize || totalN == 0 {
		return hp
	}
	out := hp
	out.C = hp.C * float64(nodeN) / float64(totalN)
	return out
}
