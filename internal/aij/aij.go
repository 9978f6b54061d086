// Package aij implements the Aggregation of Individual Judgments: a
// weighted geometric mean of a family of reciprocal matrices into one
// collective matrix. Grounded on
// original_source/modules/aem_com.py:_build_aij_matrix and the
// equivalent per-level aggregation loop in modules/ahp.py.
package aij

import "math"

// Aggregate combines a family of n x n reciprocal matrices using weights
// normalized internally to sum to 1 (uniform 1/K if every weight is <= 0
// or the total is 0). Entries <= 0 are skipped, equivalent to treating
// that entry's weight as 0 for that cell. The result is reciprocal
// whenever every input matrix is.
func Aggregate(matrices [][][]float64, weights []float64) [][]float64 {
	n := len(matrices[0])

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	wNorm := make([]float64, len(matrices))
	if total == 0 {
		uniform := 1.0 / float64(len(matrices))
		for i := range wNorm {
			wNorm[i] = uniform
		}
	} else {
		for i, w := range weights {
			if w > 0 {
				wNorm[i] = w / total
			}
		}
	}

	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, n)
		for j := range result[i] {
			result[i][j] = 1.0
		}
	}

	for k, matrix := range matrices {
		alphaK := wNorm[k]
		if alphaK == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				value := matrix[i][j]
				if value <= 0 {
					continue
				}
				result[i][j] *= math.Pow(value, alphaK)
			}
		}
	}

	return result
}
