// Package sensitivity produces a non-core reporting layer over an
// already-computed AhpResult: how much a +/-10% nudge to each
// criterion's weight would move the top alternative, how stable the
// current ranking is, and the weight threshold at which the runner-up
// would overtake it. Grounded on the teacher's
// models/ahp/ahp_sensitivity.go analyzeCriteriaSensitivity,
// calculateRankingStability and findCriticalThresholds, generalized
// from its dto.AHPInput/AHPOutput pair to internal/domain types.
package sensitivity

import (
	"math"
	"sort"

	"groupahpdss/internal/domain"
)

const perturbation = 0.10

// CriterionSensitivity reports how sensitive the top alternative's
// global weight is to a perturbation of one criterion's weight.
type CriterionSensitivity struct {
	CriterionID      string  `json:"criterion_id"`
	CriterionName    string  `json:"criterion_name"`
	CurrentWeight    float64 `json:"current_weight"`
	ImpactIfIncrease float64 `json:"impact_if_increase"`
	ImpactIfDecrease float64 `json:"impact_if_decrease"`
	Score            float64 `json:"score"`
	Level            string  `json:"level"`
}

// RankingStability summarizes the gap between the top two alternatives.
type RankingStability struct {
	IsStable        bool    `json:"is_stable"`
	StabilityScore  float64 `json:"stability_score"`
	TopTwoGap       float64 `json:"top_two_gap"`
	MinWeightChange float64 `json:"min_weight_change"`
	Recommendation  string  `json:"recommendation"`
}

// CriticalThreshold is the criterion weight at which the runner-up
// would overtake the current top alternative.
type CriticalThreshold struct {
	CriterionID     string  `json:"criterion_id"`
	CurrentWeight   float64 `json:"current_weight"`
	ThresholdWeight float64 `json:"threshold_weight"`
	AffectedRanking string  `json:"affected_ranking"`
}

// Report bundles every sensitivity finding for one AHP result.
type Report struct {
	CriteriaSensitivity []CriterionSensitivity `json:"criteria_sensitivity"`
	RankingStability    RankingStability       `json:"ranking_stability"`
	CriticalThresholds  []CriticalThreshold    `json:"critical_thresholds"`
}

type rankedAlternative struct {
	id     string
	weight float64
}

// Analyze runs the full sensitivity suite over a solved group model.
// It returns an empty report when no alternative has a global weight.
// With a single alternative, the ranking is reported as trivially stable
// and no critical thresholds are produced.
func Analyze(model *domain.GroupModel, result *domain.AhpResult) Report {
	ranking := rankAlternatives(result.GlobalAltWeights)

	var report Report
	if len(ranking) == 0 {
		return report
	}

	report.CriteriaSensitivity = criteriaSensitivity(model, result, ranking)
	report.RankingStability = rankingStability(ranking)
	report.CriticalThresholds = criticalThresholds(model, result, ranking)
	return report
}

func rankAlternatives(weights map[string]float64) []rankedAlternative {
	ranking := make([]rankedAlternative, 0, len(weights))
	for id, w := range weights {
		ranking = append(ranking, rankedAlternative{id: id, weight: w})
	}
	sort.Slice(ranking, func(i, j int) bool {
		return ranking[i].weight > ranking[j].weight
	})
	return ranking
}

func criteriaSensitivity(model *domain.GroupModel, result *domain.AhpResult, ranking []rankedAlternative) []CriterionSensitivity {
	topAlt := ranking[0].id

	items := make([]CriterionSensitivity, 0, len(model.Model.Criteria))
	for _, criterion := range model.Model.Criteria {
		currentWeight, ok := result.CriteriaWeights[criterion.ID]
		if !ok {
			continue
		}

		increase := simulateWeightChange(result, criterion.ID, perturbation, topAlt)
		decrease := simulateWeightChange(result, criterion.ID, -perturbation, topAlt)
		score := math.Abs(increase) + math.Abs(decrease)

		level := "low"
		switch {
		case score > 0.10:
			level = "high"
		case score > 0.05:
			level = "medium"
		}

		items = append(items, CriterionSensitivity{
			CriterionID:      criterion.ID,
			CriterionName:    criterion.Name,
			CurrentWeight:    currentWeight,
			ImpactIfIncrease: increase,
			ImpactIfDecrease: decrease,
			Score:            score,
			Level:            level,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	return items
}

// simulateWeightChange perturbs one criterion's weight by changePercent,
// renormalizes the criteria weights, and reports how the named
// alternative's recomputed global weight would move.
func simulateWeightChange(result *domain.AhpResult, criterionID string, changePercent float64, altID string) float64 {
	modified := make(map[string]float64, len(result.CriteriaWeights))
	for id, w := range result.CriteriaWeights {
		if id == criterionID {
			modified[id] = w * (1 + changePercent)
		} else {
			modified[id] = w
		}
	}

	total := 0.0
	for _, w := range modified {
		total += w
	}
	if total <= 0 {
		return 0
	}
	for id := range modified {
		modified[id] /= total
	}

	newWeight := 0.0
	for criterionID, local := range result.AltWeightsByCriterion {
		newWeight += modified[criterionID] * local[altID]
	}

	return newWeight - result.GlobalAltWeights[altID]
}

func rankingStability(ranking []rankedAlternative) RankingStability {
	if len(ranking) < 2 {
		return RankingStability{
			IsStable:       true,
			StabilityScore: 100,
			Recommendation: "only one alternative has a global weight; ranking is trivially stable",
		}
	}

	gap := ranking[0].weight - ranking[1].weight
	stability := RankingStability{
		TopTwoGap:       gap,
		MinWeightChange: gap * 2,
		StabilityScore:  math.Min(100, gap*500),
	}

	switch {
	case gap > 0.15:
		stability.IsStable = true
		stability.Recommendation = "ranking is highly stable; the top alternative is clearly dominant"
	case gap > 0.05:
		stability.IsStable = true
		stability.Recommendation = "ranking is moderately stable; review alternatives close to the top"
	default:
		stability.IsStable = false
		stability.Recommendation = "ranking is sensitive; small judgment changes could flip the top choice"
	}
	return stability
}

func criticalThresholds(model *domain.GroupModel, result *domain.AhpResult, ranking []rankedAlternative) []CriticalThreshold {
	if len(ranking) < 2 {
		return nil
	}

	top, second := ranking[0], ranking[1]
	gap := top.weight - second.weight

	var thresholds []CriticalThreshold
	for _, criterion := range model.Model.Criteria {
		local, ok := result.AltWeightsByCriterion[criterion.ID]
		if !ok {
			continue
		}

		currentWeight, ok := result.CriteriaWeights[criterion.ID]
		if !ok {
			continue
		}

		topLocal := local[top.id]
		secondLocal := local[second.id]
		if secondLocal <= topLocal {
			continue
		}

		localGap := secondLocal - topLocal
		threshold := currentWeight + (gap / localGap)
		if threshold <= 0 || threshold >= 1 {
			continue
		}

		thresholds = append(thresholds, CriticalThreshold{
			CriterionID:     criterion.ID,
			CurrentWeight:   currentWeight,
			ThresholdWeight: threshold,
			AffectedRanking: second.id + " overtakes " + top.id,
		})
	}
	return thresholds
}
