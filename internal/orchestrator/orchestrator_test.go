package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"
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
	return domain.PairwiseMatrix{Items: items, Matrix: matrixFromWeights(w), ExpertID: expertID, CriterionID: criterionID}
}

func baseSettings() domain.AemComSettings {
	return domain.AemComSettings{
		Permissibility: 0.2,
		MaxIterations:  20,
		InitialMode:    domain.ModeAIJ,
		StrictDecrease: true,
	}
}

func TestRunFull_SkipsLevelsNotInApplyTo(t *testing.T) {
	model := &domain.GroupModel{
		Settings: domain.Settings{AemCom: baseSettings()},
	}
	model.Settings.AemCom.ApplyTo = []string{}

	result, err := RunFull(model)
	require.NoError(t, err)
	assert.Nil(t, result.CriteriaResult)
	assert.Empty(t, result.AlternativesByCriterion)
	assert.Equal(t, 0, result.LevelsCount)
}

func TestRunFull_CriteriaLevelRequiresMatrices(t *testing.T) {
	settings := baseSettings()
	settings.ApplyTo = []string{domain.ApplyCriteria}
	model := &domain.GroupModel{Settings: domain.Settings{AemCom: settings}}

	_, err := RunFull(model)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.EmptyLevel, appErr.Code)
}

func TestRunFull_RunsCriteriaAndPerCriterionAlternatives(t *testing.T) {
	criteria := []string{"cost", "quality"}
	alternatives := []string{"x", "y", "z"}

	settings := baseSettings()
	settings.ApplyTo = []string{domain.ApplyCriteria, domain.ApplyAlternativesByCriterion}

	model := &domain.GroupModel{
		Experts: []domain.Expert{{ID: "e1", Weight: 1}},
		Model: domain.Model{
			Criteria:     []domain.Criterion{{ID: "cost"}, {ID: "quality"}},
			Alternatives: []domain.Alternative{{ID: "x"}, {ID: "y"}, {ID: "z"}},
		},
		Settings: domain.Settings{AemCom: settings},
		PairwiseMatrices: domain.PairwiseMatrices{
			CriteriaLevel: []domain.PairwiseMatrix{
				pairwise(criteria, []float64{0.6, 0.4}, "e1", ""),
			},
			AlternativeLevel: []domain.PairwiseMatrix{
				pairwise(alternatives, []float64{0.5, 0.3, 0.2}, "e1", "cost"),
			},
		},
	}

	result, err := RunFull(model)
	require.NoError(t, err)

	require.NotNil(t, result.CriteriaResult)
	require.Contains(t, result.AlternativesByCriterion, "cost")
	assert.NotContains(t, result.AlternativesByCriterion, "quality")
	assert.Equal(t, 2, result.LevelsCount)
}
