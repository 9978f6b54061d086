// Package gcompi computes the Geometric Compatibility Index, the
// mean-squared log-ratio deviation between a matrix's implied pairwise
// ratios and a reference priority vector. Grounded on
// original_source/modules/gcompi.py's GcompiCalculator.
//
// The reference implementation mixes log bases between its single-matrix
// and family variants; this package picks log base 2 everywhere, per
// spec.md's Open Question resolution, and uses it consistently in both
// Single and Family.
package gcompi

import "math"

func log2Sq(x float64) float64 {
	l := math.Log2(x)
	return l * l
}

// Single computes GCOMPI(A, u) for one reciprocal matrix A against a
// positive reference vector u. Reports 0 for n <= 2. Terms where
// A[i][j]*u[j]/u[i] <= 0 are skipped rather than causing a math domain
// error.
func Single(matrix [][]float64, u []float64) float64 {
	n := len(matrix)
	if n <= 2 {
		return 0
	}

	denom := float64((n - 1) * (n - 2))
	if denom == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < n; i++ {
		ui := u[i]
		if ui <= 0 {
			continue
		}
		for j := 0; j < n; j++ {
			value := matrix[i][j] * (u[j] / ui)
			if value <= 0 {
				continue
			}
			total += log2Sq(value)
		}
	}
	return total / denom
}

// Family computes the weighted-family GCOMPI over matrices with
// non-negative weights, normalized internally to sum to 1 (uniform if
// every weight is 0). Uses the same denominator and log base as Single,
// applied exactly once across the whole family.
func Family(matrices [][][]float64, weights []float64, u []float64) float64 {
	if len(matrices) == 0 {
		return 0
	}

	n := len(matrices[0])
	if n <= 2 {
		return 0
	}

	denom := float64((n - 1) * (n - 2))
	if denom == 0 {
		return 0
	}

	wSum := 0.0
	for _, w := range weights {
		if w > 0 {
			wSum += w
		}
	}

	wNorm := make([]float64, len(matrices))
	if wSum == 0 {
		uniform := 1.0 / float64(len(matrices))
		for i := range wNorm {
			wNorm[i] = uniform
		}
	} else {
		for i, w := range weights {
			if w > 0 {
				wNorm[i] = w / wSum
			}
		}
	}

	total := 0.0
	for k, matrix := range matrices {
		alphaK := wNorm[k]
		if alphaK == 0 {
			continue
		}

		inner := 0.0
		for i := 0; i < n; i++ {
			ui := u[i]
			if ui <= 0 {
				continue
			}
			for j := 0; j < n; j++ {
				value := matrix[i][j] * (u[j] / ui)
				if value <= 0 {
					continue
				}
				inner += log2Sq(value)
			}
		}
		total += alphaK * inner
	}

	return total / denom
}
