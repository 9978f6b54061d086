// Package ahp implements the classical group-AHP solver: aggregate
// expert matrices per hierarchy level, extract priorities and
// consistency, and roll per-criterion alternative weights up into a
// global, normalized ranking. Grounded on
// original_source/modules/ahp.py's aggregation loop and the teacher's
// models/ahp/ahp_model.go Validate/Compute pattern.
package ahp

import (
	"fmt"

	"groupahpdss/internal/aij"
	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"
	"groupahpdss/internal/numerics"
)

// Solve runs the classical AHP procedure over a validated group model:
// criteria weights and consistency, per-criterion local alternative
// weights and consistency, and the normalized global alternative
// ranking.
func Solve(model *domain.GroupModel) (*domain.AhpResult, error) {
	if len(model.PairwiseMatrices.CriteriaLevel) == 0 {
		return nil, apperr.New(apperr.EmptyLevel, "criteria-level matrices are required and none were supplied")
	}

	criteriaItems, criteriaFamily, expertWeights, err := AlignFamily(model.PairwiseMatrices.CriteriaLevel, model.Experts)
	if err != nil {
		return nil, err
	}

	collective := aij.Aggregate(criteriaFamily, expertWeights)
	criteriaWeights := numerics.PriorityVector(collective)
	criteriaCR := numerics.ConsistencyRatio(collective, criteriaWeights)
	criteriaCRPercent := numerics.ConsistencyPercent(criteriaCR)

	result := &domain.AhpResult{
		CriteriaWeights:         itemWeights(criteriaItems, criteriaWeights),
		CriteriaCR:              criteriaCR,
		CriteriaCRPercent:       criteriaCRPercent,
		AltWeightsByCriterion:   make(map[string]map[string]float64),
		AltCRByCriterion:        make(map[string]float64),
		AltCRPercentByCriterion: make(map[string]float64),
		GlobalAltWeights:        make(map[string]float64),
	}

	byCriterion := make(map[string][]domain.PairwiseMatrix)
	for _, m := range model.PairwiseMatrices.AlternativeLevel {
		byCriterion[m.CriterionID] = append(byCriterion[m.CriterionID], m)
	}

	globalTotal := 0.0
	for _, criterion := range model.Model.Criteria {
		matrices, ok := byCriterion[criterion.ID]
		if !ok || len(matrices) == 0 {
			continue
		}

		altItems, altFamily, altWeights, err := AlignFamily(matrices, model.Experts)
		if err != nil {
			return nil, err
		}

		altCollective := aij.Aggregate(altFamily, altWeights)
		localWeights := numerics.PriorityVector(altCollective)
		localCR := numerics.ConsistencyRatio(altCollective, localWeights)

		result.AltWeightsByCriterion[criterion.ID] = itemWeights(altItems, localWeights)
		result.AltCRByCriterion[criterion.ID] = localCR
		result.AltCRPercentByCriterion[criterion.ID] = numerics.ConsistencyPercent(localCR)

		cWeight := criteriaWeightFor(result.CriteriaWeights, criterion.ID)
		for i, altID := range altItems {
			contribution := cWeight * localWeights[i]
			result.GlobalAltWeights[altID] += contribution
			globalTotal += contribution
		}
	}

	if globalTotal > 0 {
		for id := range result.GlobalAltWeights {
			result.GlobalAltWeights[id] /= globalTotal
		}
	}

	return result, nil
}

func criteriaWeightFor(weights map[string]float64, id string) float64 {
	return weights[id]
}

func itemWeights(items []string, weights []float64) map[string]float64 {
	out := make(map[string]float64, len(items))
	for i, id := range items {
		out[id] = weights[i]
	}
	return out
}

// expertWeightByID resolves an expert's weight by id, defaulting to 1 for
// unknown or anonymous experts so a single-expert family without an
// experts array still aggregates uniformly.
func expertWeightByID(experts []domain.Expert, id string) float64 {
	for _, e := range experts {
		if e.ID == id {
			return e.Weight
		}
	}
	return 1
}

// AlignFamily takes the canonical item order from the first matrix and
// permutes every other matrix in the family to match it by item id,
// failing if an item is missing from any matrix. It also resolves each
// matrix's expert weight, defaulting to 1 when the expert is unlisted.
func AlignFamily(matrices []domain.PairwiseMatrix, experts []domain.Expert) ([]string, [][][]float64, []float64, error) {
	canonical := append([]string(nil), matrices[0].Items...)
	n := len(canonical)

	family := make([][][]float64, len(matrices))
	weights := make([]float64, len(matrices))

	for k, m := range matrices {
		index := make(map[string]int, len(m.Items))
		for i, id := range m.Items {
			index[id] = i
		}

		aligned := make([][]float64, n)
		for i, id := range canonical {
			srcI, ok := index[id]
			if !ok {
				return nil, nil, nil, apperr.New(apperr.StructuralInvariantViolated,
					fmt.Sprintf("expert %q matrix is missing item %q", m.ExpertID, id))
			}
			row := make([]float64, n)
			for j, jd := range canonical {
				srcJ, ok := index[jd]
				if !ok {
					return nil, nil, nil, apperr.New(apperr.StructuralInvariantViolated,
						fmt.Sprintf("expert %q matrix is missing item %q", m.ExpertID, jd))
				}
				row[j] = m.Matrix[srcI][srcJ]
			}
			aligned[i] = row
		}

		family[k] = aligned
		weights[k] = expertWeightByID(experts, m.ExpertID)
	}

	return canonical, family, weights, nil
}
