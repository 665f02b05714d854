package sparsemat

// Matrix is a row-major compressed sparse matrix (CSR): rowPtr has Rows()+1
// entries, and row i's entries live in colIdx[rowPtr[i]:rowPtr[i+1]] /
// data[rowPtr[i]:rowPtr[i+1]], sorted ascending by column index with no
// duplicates.
type Matrix struct {
	nRows, nCols int
	rowPtr       []int
	colIdx       []Index
	data         []Value
}

// NewFromRows builds a Matrix from per-row sparse vectors. Each row must
// already be sorted ascending by index with no duplicates (ErrUnsortedVector
// otherwise); every index must be < nCols (ErrColOutOfRange otherwise). The
// supplied rows are copied into the matrix's own backing arrays.
func NewFromRows(rows []Vector, nCols int) (*Matrix, error) {
	if nCols < 0 {
		return nil, ErrNegativeDimension
	}

	nnz := 0
	for _, row := range rows {
		nnz += len(row)
	}

	m := &Matrix{
		nRows:  len(rows),
		nCols:  nCols,
		rowPtr: make([]int, len(rows)+1),
		colIdx: make([]Index, 0, nnz),
		data:   make([]Value, 0, nnz),
	}

	for i, row := range rows {
		var prev Index
		for k, p := range row {
			if p.Index >= Index(nCols) {
				return nil, ErrColOutOfRange
			}
			if k > 0 && p.Index <= prev {
				return nil, ErrUnsortedVector
			}
			prev = p.Index
			m.colIdx = append(m.colIdx, p.Index)
			m.data = append(m.data, p.Value)
		}
		m.rowPtr[i+1] = len(m.colIdx)
	}

	return m, nil
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int { return m.nRows }

// Cols reports the number of columns.
func (m *Matrix) Cols() int { return m.nCols }

// NNZ reports the total number of stored non-zero entries.
func (m *Matrix) NNZ() int { return len(m.data) }

// Row returns row i as a sparse Vector. The returned slice is a fresh copy;
// the matrix's backing storage is never aliased, so callers are free to
// mutate the result.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.nRows {
		return nil, ErrRowOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	pairs := make(Vector, hi-lo)
	for k := lo; k < hi; k++ {
		pairs[k-lo] = Pair{Index: m.colIdx[k], Value: m.data[k]}
	}
	return pairs, nil
}

// CopyOuterDims returns a new Matrix whose row j equals the receiver's row
// rows[j], for every j. Column count is unchanged and the non-zero pattern
// of each selected row is preserved exactly.
func (m *Matrix) CopyOuterDims(rows []int) (*Matrix, error) {
	out := &Matrix{
		nRows:  len(rows),
		nCols:  m.nCols,
		rowPtr: make([]int, len(rows)+1),
	}
	for _, r := range rows {
		if r < 0 || r >= m.nRows {
			return nil, ErrRowOutOfRange
		}
	}
	for j, r := range rows {
		lo, hi := m.rowPtr[r], m.rowPtr[r+1]
		out.colIdx = append(out.colIdx, m.colIdx[lo:hi]...)
		out.data = append(out.data, m.data[lo:hi]...)
		out.rowPtr[j+1] = len(out.colIdx)
	}
	return out, nil
}

// ShrinkColumnIndices drops every column that is empty across all rows of
// the receiver and returns the compacted matrix together with a dense
// mapping oldColOf[newCol] -> original column index. The relative order of
// retained columns is preserved.
func (m *Matrix) ShrinkColumnIndices() (*Matrix, []Index) {
	present := make([]bool, m.nCols)
	for _, c := range m.colIdx {
		present[c] = true
	}

	newColOf := make([]int, m.nCols)
	oldColOf := make([]Index, 0, m.nCols)
	for old := 0; old < m.nCols; old++ {
		if present[old] {
			newColOf[old] = len(oldColOf)
			oldColOf = append(oldColOf, Index(old))
		}
	}

	out := &Matrix{
		nRows:  m.nRows,
		nCols:  len(oldColOf),
		rowPtr: make([]int, m.nRows+1),
		colIdx: make([]Index, len(m.colIdx)),
		data:   make([]Value, len(m.data)),
	}
	copy(out.data, m.data)
	copy(out.rowPtr, m.rowPtr)
	for k, c := range m.colIdx {
		out.colIdx[k] = Index(newColOf[int(c)])
	}

	return out, oldColOf
}

// L2NormalizeRows returns a new Matrix with every row independently
// L2-normalised (see L2Normalize). A row whose norm is zero becomes empty.
func (m *Matrix) L2NormalizeRows() *Matrix {
	out := &Matrix{
		nRows:  m.nRows,
		nCols:  m.nCols,
		rowPtr: make([]int, m.nRows+1),
	}
	for i := 0; i < m.nRows; i++ {
		row, _ := m.Row(i)
		normalized := L2Normalize(row)
		out.colIdx = append(out.colIdx, extractIndices(normalized)...)
		out.data = append(out.data, extractValues(normalized)...)
		out.rowPtr[i+1] = len(out.colIdx)
	}
	return out
}

func extractIndices(v Vector) []Index {
	out := make([]Index, len(v))
	for i, p := range v {
		out[i] = p.Index
	}
	return out
}

func extractValues(v Vector) []Value {
	out := make([]Value, len(v))
	for i, p := range v {
		out[i] = p.Value
	}
	return out
}
