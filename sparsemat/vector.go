package sparsemat

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SortByIndex sorts v ascending by Index in place and also returns v, so
// callers can chain it: `v = SortByIndex(accumulated)`. Callers are
// responsible for not feeding in duplicate indices; SortByIndex does not
// deduplicate, it only orders.
func SortByIndex(v Vector) Vector {
	sort.Slice(v, func(i, j int) bool { return v[i].Index < v[j].Index })
	return v
}

// PruneWithThreshold returns a new Vector containing only the entries of v
// whose absolute value is >= t. It never mutates v. Because the predicate is
// a pure filter over a fixed input, PruneWithThreshold is monotonic: raising
// t can only remove entries, never add them.
func PruneWithThreshold(v Vector, t Value) Vector {
	out := make(Vector, 0, len(v))
	for _, p := range v {
		if absValue(p.Value) >= t {
			out = append(out, p)
		}
	}
	return out
}

// L2Normalize returns a new Vector with every entry divided by the L2 norm
// of v. If the norm is zero (v is empty or all-zero), L2Normalize returns an
// empty Vector. After normalisation the sum of squares of the result is 1
// within floating-point tolerance.
func L2Normalize(v Vector) Vector {
	if len(v) == 0 {
		return Vector{}
	}

	vals := make([]float64, len(v))
	for i, p := range v {
		vals[i] = float64(p.Value)
	}
	norm := floats.Norm(vals, 2)
	if norm == 0 {
		return Vector{}
	}

	out := make(Vector, len(v))
	for i, p := range v {
		out[i] = Pair{Index: p.Index, Value: Value(float64(p.Value) / norm)}
	}
	return out
}

// Dot computes the dot product of two sparse vectors assumed sorted
// ascending by Index with no duplicate indices. It runs a merge-join in
// O(len(a)+len(b)) without materialising a dense buffer.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			sum += float64(a[i].Value) * float64(b[j].Value)
			i++
			j++
		}
	}
	return sum
}

func absValue(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// SumSquares reports the sum of squared entries of v; exposed for tests that
// check the L2 invariant directly without reimplementing the computation via
// math.Sqrt/pow.
func SumSquares(v Vector) float64 {
	var sum float64
	for _, p := range v {
		sum += float64(p.Value) * float64(p.Value)
	}
	return sum
}
