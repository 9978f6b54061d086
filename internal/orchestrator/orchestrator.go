// Package orchestrator drives AEM-COM across the hierarchy levels named
// in settings.aem_com.apply_to: the criteria level, and once per
// criterion at the alternative level. Grounded on
// original_source/modules/aem_com.py:run_full.
package orchestrator

import (
	"groupahpdss/internal/aemcom"
	"groupahpdss/internal/ahp"
	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"
)

// RunFull visits the hierarchy levels named in apply_to, in the order
// the spec fixes: criteria level first, then alternative levels in the
// declared order of the criteria list, skipping any criterion with no
// alternative-level matrices.
func RunFull(model *domain.GroupModel) (*domain.AemComGlobalResult, error) {
	applyTo := model.ApplyToSet()
	settings := model.Settings.AemCom

	result := &domain.AemComGlobalResult{
		AlternativesByCriterion: make(map[string]*domain.AemComRunResult),
	}

	if applyTo[domain.ApplyCriteria] {
		if len(model.PairwiseMatrices.CriteriaLevel) == 0 {
			return nil, apperr.New(apperr.EmptyLevel, "criteria-level matrices are required and none were supplied")
		}

		items, family, weights, err := ahp.AlignFamily(model.PairwiseMatrices.CriteriaLevel, model.Experts)
		if err != nil {
			return nil, err
		}

		var provided [][]float64
		if len(model.PairwiseMatrices.CollectiveLevel) > 0 {
			provided = model.PairwiseMatrices.CollectiveLevel[0].Matrix
		}

		run, err := aemcom.Run(items, family, weights, provided, settings)
		if err != nil {
			return nil, err
		}

		result.CriteriaResult = run
		result.TotalIterations += run.Iterations
		result.LevelsCount++
	}

	if applyTo[domain.ApplyAlternativesByCriterion] {
		byCriterion := make(map[string][]domain.PairwiseMatrix)
		for _, m := range model.PairwiseMatrices.AlternativeLevel {
			byCriterion[m.CriterionID] = append(byCriterion[m.CriterionID], m)
		}

		for _, criterion := range model.Model.Criteria {
			matrices, ok := byCriterion[criterion.ID]
			if !ok || len(matrices) == 0 {
				continue
			}

			items, family, weights, err := ahp.AlignFamily(matrices, model.Experts)
			if err != nil {
				return nil, err
			}

			run, err := aemcom.Run(items, family, weights, nil, settings)
			if err != nil {
				return nil, err
			}

			result.AlternativesByCriterion[criterion.ID] = run
			result.TotalIterations += run.Iterations
			result.LevelsCount++
		}
	}

	return result, nil
}
