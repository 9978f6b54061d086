// Package engine wires ingest, the AHP solver and the AEM-COM
// orchestrator into the single Solve entry point the CLI and the HTTP
// API both call, so the two edges never duplicate the pipeline order.
package engine

import (
	"groupahpdss/internal/ahp"
	"groupahpdss/internal/config"
	"groupahpdss/internal/document"
	"groupahpdss/internal/domain"
	"groupahpdss/internal/ingest"
	"groupahpdss/internal/orchestrator"
)

// Solve parses an input document, fills in any omitted settings.aem_com
// fields from cfg's defaults, runs the classical AHP solver and the
// AEM-COM orchestrator, and renders the spec.md §6 output document.
//
// ahpResult is nil only when settings.aem_com.apply_to does not include
// "criteria" and no criteria-level matrices were supplied at all -- in
// that case AEM-COM may still have run over a criterion's
// alternative-level matrices while the classical ranking is skipped.
func Solve(data []byte, cfg *config.Config, opts document.Options) (*document.Document, error) {
	model, err := ingest.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	if cfg != nil {
		cfg.ApplyDefaults(&model.Settings.AemCom)
	}

	ahpResult, err := solveAhp(model)
	if err != nil {
		return nil, err
	}

	aemResult, err := orchestrator.RunFull(model)
	if err != nil {
		return nil, err
	}

	return document.Build(model, ahpResult, aemResult, opts), nil
}

// solveAhp runs the classical AHP ranking when criteria-level matrices
// are present, and returns a nil result (not an error) when they are
// not -- a document may drive AEM-COM alone without ever wanting a
// ranking, e.g. apply_to = ["alternatives_by_criterion"] only.
func solveAhp(model *domain.GroupModel) (*domain.AhpResult, error) {
	if len(model.PairwiseMatrices.CriteriaLevel) == 0 {
		return nil, nil
	}
	return ahp.Solve(model)
}
