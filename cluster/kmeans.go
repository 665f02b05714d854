package cluster

import (
	"sort"

	"github.com/clusterr/parabel/sparsemat"
)

// identicalCosine is the cosine-similarity threshold above which the two
// farthest-apart rows in the matrix are considered indistinguishable, i.e.
// the whole cluster is degenerate and collapses to a single cluster. The
// margin allows for float32 rounding of the stored row values.
const identicalCosine = 1 - 1e-6

// Split partitions the rows of m (assumed L2-normalised, so cosine
// similarity reduces to a plain dot product) into exactly two balanced
// clusters using spherical 2-means. It returns the row indices of each
// cluster, both ascending, or a single slice containing all row indices if
// the split is degenerate (m.Rows() <= 1, or every row is effectively
// identical).
//
// Seed selection is deterministic: a two-pass farthest-pair approximation
// (row 0's farthest counterpart, then that row's farthest counterpart)
// rather than a seeded random draw.
func Split(m *sparsemat.Matrix, hp HyperParam) ([][]int, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}

	n := m.Rows()
	if n <= 1 {
		return singleCluster(n), nil
	}

	rows := make([]sparsemat.Vector, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	seedA, seedB := farthestPair(rows)
	if sparsemat.Dot(rows[seedA], rows[seedB]) >= identicalCosine {
		return singleCluster(n), nil
	}

	centroidA, centroidB := rows[seedA], rows[seedB]
	assignment := make([]bool, n) // true => cluster A
	prevObjective := 0.0
	converged := false

	for iter := 0; iter < hp.KMeansMaxIter && !converged; iter++ {
		simA := make([]float64, n)
		simB := make([]float64, n)
		for i, row := range rows {
			simA[i] = sparsemat.Dot(row, centroidA)
			simB[i] = sparsemat.Dot(row, centroidB)
		}

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			di, dj := simA[order[i]]-simB[order[i]], simA[order[j]]-simB[order[j]]
			if di != dj {
				return di > dj
			}
			return order[i] < order[j]
		})

		sizeA := (n + 1) / 2 // ceil(n/2); keeps the two clusters balanced within one
		newAssignment := make([]bool, n)
		objective := 0.0
		for rank, idx := range order {
			newAssignment[idx] = rank < sizeA
			if newAssignment[idx] {
				objective += simA[idx]
			} else {
				objective += simB[idx]
			}
		}

		same := iter > 0 && sameAssignment(assignment, newAssignment)
		assignment = newAssignment
		centroidA, centroidB = recomputeCentroids(rows, assignment)

		if same || (iter > 0 && absFloat(objective-prevObjective) < hp.Epsilon) {
			converged = true
		}
		prevObjective = objective
	}

	var clusterA, clusterB []int
	for i, inA := range assignment {
		if inA {
			clusterA = append(clusterA, i)
		} else {
			clusterB = append(clusterB, i)
		}
	}

	if len(clusterA) == 0 || len(clusterB) == 0 {
		return singleCluster(n), nil
	}
	return [][]int{clusterA, clusterB}, nil
}

func singleCluster(n int) [][]int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return [][]int{all}
}

// farthestPair returns a deterministic, low-similarity pair of row indices
// via a two-pass farthest-point walk starting from row 0.
func farthestPair(rows []sparsemat.Vector) (int, int) {
	p := farthestFrom(rows, 0)
	q := farthestFrom(rows, p)
	return p, q
}

func farthestFrom(rows []sparsemat.Vector, from int) int {
	best := -1
	bestSim := 2.0 // cosine similarity is always <= 1
	for i, row := range rows {
		if i == from {
			continue
		}
		sim := sparsemat.Dot(rows[from], row)
		if sim < bestSim || (sim == bestSim && i < best) {
			bestSim = sim
			best = i
		}
	}
	if best == -1 {
		return from
	}
	return best
}

func recomputeCentroids(rows []sparsemat.Vector, assignment []bool) (sparsemat.Vector, sparsemat.Vector) {
	return sumRows(rows, assignment, true), sumRows(rows, assignment, false)
}

func sumRows(rows []sparsemat.Vector, assignment []bool, wantA bool) sparsemat.Vector {
	sums := make(map[sparsemat.Index]float32)
	for i, row := range rows {
		if assignment[i] != wantA {
			continue
		}
		for _, p := range row {
			sums[p.Index] += float32(p.Value)
		}
	}
	sum := make(sparsemat.Vector, 0, len(sums))
	for idx, val := range sums {
		sum = append(sum, sparsemat.Pair{Index: idx, Value: sparsemat.Value(val)})
	}
	sum = sparsemat.SortByIndex(sum)
	return sparsemat.L2Normalize(sum)
}

func sameAssignment(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
