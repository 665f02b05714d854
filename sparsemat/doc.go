// Package sparsemat implements the row-major sparse matrix primitives used
// throughout parabel: label centroids, per-example feature vectors, and the
// per-node feature matrices handed to the linear classifier trainer.
//
// A Matrix stores only non-zero (Index, Value) pairs per row, compressed in
// classic CSR layout (row pointer / column index / data arrays). Rows are
// kept sorted by column index with no duplicate indices, which lets Dot,
// L2Normalize and the merge-style set operations run in linear time without
// a dense scratch buffer.
//
// The package never panics on malformed caller input (empty rows, an
// out-of-range row/column index); see errors.go for the sentinel errors
// returned instead.
package sparsemat
