package sparsemat

// Index identifies a feature or a label. It is always non-negative; the
// 32-bit width matches the wire/in-memory footprint expected of datasets
// with hundreds of thousands to millions of distinct features or labels.
type Index uint32

// Value is a single (dense or sparse-entry) floating point value.
type Value float32

// Pair is one non-zero entry of a sparse vector or matrix row.
type Pair struct {
	Index Index
	Value Value
}

// Vector is a sparse vector: a sequence of Pairs sorted ascending by Index,
// with no duplicate indices. Most package functions assume this invariant
// holds on input and preserve it on output; order one with SortByIndex if
// the source data is unsorted (SortByIndex does not merge duplicate indices).
type Vector []Pair
