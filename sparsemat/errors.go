package sparsemat

import "errors"

// Sentinel errors for the sparsemat package. Every message is prefixed with
// "sparsemat: " for consistent grepping across logs.
var (
	// ErrRowOutOfRange indicates a row index outside [0, Rows()).
	ErrRowOutOfRange = errors.New("sparsemat: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, Cols()).
	ErrColOutOfRange = errors.New("sparsemat: column index out of range")

	// ErrUnsortedVector indicates a caller-supplied sparse vector was not
	// sorted ascending by index, or contained a duplicate index.
	ErrUnsortedVector = errors.New("sparsemat: vector is not sorted or has duplicate indices")

	// ErrNegativeDimension indicates a negative row or column count was
	// requested when constructing a Matrix.
	ErrNegativeDimension = errors.New("sparsemat: negative dimension")
)
