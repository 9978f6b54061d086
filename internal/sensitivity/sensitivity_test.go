package sensitivity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupahpdss/internal/domain"
)

func sampleModel() *domain.GroupModel {
	return &domain.GroupModel{
		Model: domain.Model{
			Criteria: []domain.Criterion{
				{ID: "cost", Name: "Cost"},
				{ID: "quality", Name: "Quality"},
			},
			Alternatives: []domain.Alternative{{ID: "x"}, {ID: "y"}},
		},
	}
}

func sampleResult() *domain.AhpResult {
	return &domain.AhpResult{
		CriteriaWeights: map[string]float64{"cost": 0.6, "quality": 0.4},
		AltWeightsByCriterion: map[string]map[string]float64{
			"cost":    {"x": 0.7, "y": 0.3},
			"quality": {"x": 0.4, "y": 0.6},
		},
		GlobalAltWeights: map[string]float64{
			"x": 0.6*0.7 + 0.4*0.4,
			"y": 0.6*0.3 + 0.4*0.6,
		},
	}
}

func TestAnalyze_EmptyReportWhenNoGlobalWeights(t *testing.T) {
	result := &domain.AhpResult{GlobalAltWeights: map[string]float64{}}
	report := Analyze(sampleModel(), result)

	assert.Empty(t, report.CriteriaSensitivity)
	assert.Empty(t, report.CriticalThresholds)
}

func TestAnalyze_ReturnsOneSensitivityEntryPerCriterion(t *testing.T) {
	report := Analyze(sampleModel(), sampleResult())

	assert.Len(t, report.CriteriaSensitivity, 2)
	for _, entry := range report.CriteriaSensitivity {
		assert.Contains(t, []string{"low", "medium", "high"}, entry.Level)
	}
}

func TestAnalyze_RankingStabilityReflectsTopTwoGap(t *testing.T) {
	report := Analyze(sampleModel(), sampleResult())

	top, second := "x", "y"
	gap := sampleResult().GlobalAltWeights[top] - sampleResult().GlobalAltWeights[second]
	assert.InDelta(t, gap, report.RankingStability.TopTwoGap, 1e-9)
	assert.NotEmpty(t, report.RankingStability.Recommendation)
}

func TestAnalyze_SingleAlternativeIsTriviallyStable(t *testing.T) {
	result := &domain.AhpResult{
		CriteriaWeights:       map[string]float64{"cost": 1},
		AltWeightsByCriterion: map[string]map[string]float64{"cost": {"x": 1}},
		GlobalAltWeights:      map[string]float64{"x": 1},
	}

	report := Analyze(sampleModel(), result)
	assert.True(t, report.RankingStability.IsStable)
	assert.Equal(t, 100.0, report.RankingStability.StabilityScore)
	assert.Nil(t, report.CriticalThresholds)
}
