package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupahpdss/internal/domain"
)

func consistentMatrix(w []float64) [][]float64 {
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

func TestValidate_WellFormedModelScoresHundred(t *testing.T) {
	model := &domain.GroupModel{
		Experts: []domain.Expert{{ID: "e1", Weight: 1}, {ID: "e2", Weight: 1}},
		Model: domain.Model{
			Criteria:     []domain.Criterion{{ID: "cost"}, {ID: "quality"}},
			Alternatives: []domain.Alternative{{ID: "x"}, {ID: "y"}},
		},
		Settings: domain.Settings{
			AemCom: domain.AemComSettings{Permissibility: 0.2, MaxIterations: 10},
		},
		PairwiseMatrices: domain.PairwiseMatrices{
			CriteriaLevel: []domain.PairwiseMatrix{
				{Items: []string{"cost", "quality"}, Matrix: consistentMatrix([]float64{0.6, 0.4}), ExpertID: "e1"},
			},
			AlternativeLevel: []domain.PairwiseMatrix{
				{Items: []string{"x", "y"}, Matrix: consistentMatrix([]float64{0.7, 0.3}), ExpertID: "e1", CriterionID: "cost"},
				{Items: []string{"x", "y"}, Matrix: consistentMatrix([]float64{0.4, 0.6}), ExpertID: "e1", CriterionID: "quality"},
			},
		},
	}

	report := Validate(model)
	assert.Equal(t, 100.0, report.Percentage)
	assert.Empty(t, report.Issues)
}

func TestValidate_FlagsMissingAlternativeCoverageAndZeroWeightExpert(t *testing.T) {
	model := &domain.GroupModel{
		Experts: []domain.Expert{{ID: "e1", Weight: 0}},
		Model: domain.Model{
			Criteria:     []domain.Criterion{{ID: "cost"}, {ID: "quality"}},
			Alternatives: []domain.Alternative{{ID: "x"}, {ID: "y"}},
		},
		Settings: domain.Settings{
			AemCom: domain.AemComSettings{Permissibility: 0.2, MaxIterations: 10},
		},
		PairwiseMatrices: domain.PairwiseMatrices{
			CriteriaLevel: []domain.PairwiseMatrix{
				{Items: []string{"cost", "quality"}, Matrix: consistentMatrix([]float64{0.6, 0.4}), ExpertID: "e1"},
			},
			AlternativeLevel: []domain.PairwiseMatrix{
				{Items: []string{"x", "y"}, Matrix: consistentMatrix([]float64{0.7, 0.3}), ExpertID: "e1", CriterionID: "cost"},
			},
		},
	}

	report := Validate(model)
	assert.Less(t, report.Percentage, 100.0)
	assert.True(t, len(report.Issues) >= 2)
}

func TestValidate_PercentageNeverGoesNegative(t *testing.T) {
	model := &domain.GroupModel{
		Settings: domain.Settings{AemCom: domain.AemComSettings{Permissibility: -1}},
	}

	report := Validate(model)
	assert.GreaterOrEqual(t, report.Percentage, 0.0)
}
