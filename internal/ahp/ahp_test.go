package ahp

import (
	"testing"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func pairwise(items []string, w []float64, expertID, criterionID string) domain.PairwiseMatrix {
	return domain.PairwiseMatrix{
		Items:       items,
		Matrix:      matrixFromWeights(w),
		ExpertID:    expertID,
		CriterionID: criterionID,
	}
}

func TestSolve_EmptyCriteriaLevelIsFatal(t *testing.T) {
	model := &domain.GroupModel{}

	_, err := Solve(model)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.EmptyLevel, appErr.Code)
}

func TestSolve_GlobalWeightsNormalizeToOne(t *testing.T) {
	criteria := []string{"cost", "quality"}
	alternatives := []string{"x", "y", "z"}

	model := &domain.GroupModel{
		Experts: []domain.Expert{
			{ID: "e1", Weight: 0.5},
			{ID: "e2", Weight: 0.5},
		},
		Model: domain.Model{
			Criteria: []domain.Criterion{
				{ID: "cost", Name: "Cost"},
				{ID: "quality", Name: "Quality"},
			},
			Alternatives: []domain.Alternative{
				{ID: "x"}, {ID: "y"}, {ID: "z"},
			},
		},
		PairwiseMatrices: domain.PairwiseMatrices{
			CriteriaLevel: []domain.PairwiseMatrix{
				pairwise(criteria, []float64{0.6, 0.4}, "e1", ""),
				pairwise(criteria, []float64{0.55, 0.45}, "e2", ""),
			},
			AlternativeLevel: []domain.PairwiseMatrix{
				pairwise(alternatives, []float64{0.5, 0.3, 0.2}, "e1", "cost"),
				pairwise(alternatives, []float64{0.45, 0.35, 0.2}, "e2", "cost"),
				pairwise(alternatives, []float64{0.2, 0.3, 0.5}, "e1", "quality"),
				pairwise(alternatives, []float64{0.25, 0.3, 0.45}, "e2", "quality"),
			},
		},
	}

	result, err := Solve(model)
	require.NoError(t, err)

	total := 0.0
	for _, w := range result.GlobalAltWeights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Len(t, result.GlobalAltWeights, 3)
	assert.Len(t, result.CriteriaWeights, 2)
}

func TestSolve_SkipsCriterionWithoutAlternativeMatrices(t *testing.T) {
	criteria := []string{"cost", "quality"}
	alternatives := []string{"x", "y"}

	model := &domain.GroupModel{
		Experts: []domain.Expert{{ID: "e1", Weight: 1}},
		Model: domain.Model{
			Criteria: []domain.Criterion{
				{ID: "cost"}, {ID: "quality"},
			},
			Alternatives: []domain.Alternative{{ID: "x"}, {ID: "y"}},
		},
		PairwiseMatrices: domain.PairwiseMatrices{
			CriteriaLevel: []domain.PairwiseMatrix{
				pairwise(criteria, []float64{0.6, 0.4}, "e1", ""),
			},
			AlternativeLevel: []domain.PairwiseMatrix{
				pairwise(alternatives, []float64{0.7, 0.3}, "e1", "cost"),
			},
		},
	}

	result, err := Solve(model)
	require.NoError(t, err)

	_, hasCost := result.AltWeightsByCriterion["cost"]
	_, hasQuality := result.AltWeightsByCriterion["quality"]
	assert.True(t, hasCost)
	assert.False(t, hasQuality)
}

func TestAlignFamily_MissingItemIsFatal(t *testing.T) {
	matrices := []domain.PairwiseMatrix{
		pairwise([]string{"a", "b"}, []float64{0.6, 0.4}, "e1", ""),
		pairwise([]string{"a", "c"}, []float64{0.5, 0.5}, "e2", ""),
	}

	_, _, _, err := AlignFamily(matrices, nil)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.StructuralInvariantViolated, appErr.Code)
}
