package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityVector_ConsistentMatrix(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	matrix := matrixFromWeights(w)

	got := PriorityVector(matrix)

	for i := range w {
		assert.InDelta(t, w[i], got[i], 1e-9)
	}
}

func TestPriorityVector_NormalizesToOne(t *testing.T) {
	matrix := [][]float64{
		{1, 3, 5},
		{1.0 / 3, 1, 2},
		{1.0 / 5, 0.5, 1},
	}

	got := PriorityVector(matrix)

	total := 0.0
	for _, w := range got {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestConsistencyRatio_PerfectlyConsistent(t *testing.T) {
	matrix := matrixFromWeights([]float64{0.5, 0.3, 0.2})
	w := PriorityVector(matrix)

	cr := ConsistencyRatio(matrix, w)

	assert.InDelta(t, 0, cr, 1e-9)
}

func TestConsistencyRatio_SmallN(t *testing.T) {
	matrix := [][]float64{{1, 3}, {1.0 / 3, 1}}
	w := PriorityVector(matrix)

	assert.Equal(t, 0.0, ConsistencyRatio(matrix, w))
}

func TestConsistencyPercent_Clamps(t *testing.T) {
	assert.Equal(t, 100.0, ConsistencyPercent(-1))
	assert.Equal(t, 0.0, ConsistencyPercent(2))
	assert.InDelta(t, 90.0, ConsistencyPercent(0.1), 1e-9)
}

func TestRandomIndex_KnownAndUnknown(t *testing.T) {
	assert.Equal(t, 0.58, RandomIndex(3))
	assert.Equal(t, 0.0, RandomIndex(11))
}

func TestEigenvectorEstimate_AgreesWithConsistentMatrix(t *testing.T) {
	w := []float64{0.5, 0.3, 0.2}
	matrix := matrixFromWeights(w)

	got := EigenvectorEstimate(matrix)

	for i := range w {
		assert.InDelta(t, w[i], got[i], 1e-6)
	}
}

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
