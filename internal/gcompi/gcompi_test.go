package gcompi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func matrixFromWeights(w []float64) [][]float64 {
	n := len(w)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = w[i] / w[j]
		}
	}
	return m
}

func TestSingle_ZeroForConsistentMatrix(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	matrix := matrixFromWeights(w)

	assert.InDelta(t, 0, Single(matrix, w), 1e-9)
}

func TestSingle_ZeroForSmallN(t *testing.T) {
	matrix := [][]float64{{1, 3}, {1.0 / 3, 1}}
	assert.Equal(t, 0.0, Single(matrix, []float64{0.75, 0.25}))
}

func TestSingle_PositiveForInconsistentMatrix(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	matrix := matrixFromWeights(w)
	matrix[0][2] = 8
	matrix[2][0] = 1.0 / 8

	assert.Greater(t, Single(matrix, w), 0.0)
}

func TestFamily_UniformWhenWeightsZero(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	matrix := matrixFromWeights(w)

	family := [][][]float64{matrix, matrix}
	weighted := Family(family, []float64{0, 0}, w)
	uniform := Family(family, []float64{1, 1}, w)

	assert.InDelta(t, uniform, weighted, 1e-9)
}

func TestFamily_EmptyMatrices(t *testing.T) {
	assert.Equal(t, 0.0, Family(nil, nil, nil))
}
