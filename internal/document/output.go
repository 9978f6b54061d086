// Package document builds the spec.md §6 output JSON document: the input
// echoed back, plus result.aem_com = {summary, details} and the optional
// validation/sensitivity sections. Grounded on the input wire shape in
// internal/ingest/document.go, mirrored here for the response side so
// internal/httpapi and cmd/cli share one rendering path.
package document

import (
	"time"

	"groupahpdss/internal/domain"
	"groupahpdss/internal/sensitivity"
	"groupahpdss/internal/validator"
)

// Problem, Expert, Item, Model, Settings and PairwiseMatrices echo the
// input document shape (spec.md §6) so the output mirrors its input.
type Problem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
}

type Expert struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Weight float64 `json:"weight"`
}

type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Model struct {
	Criteria     []Item `json:"criteria"`
	Alternatives []Item `json:"alternatives"`
}

type AemComSettings struct {
	Permissibility float64  `json:"permissibility"`
	ApplyTo        []string `json:"apply_to"`
	MaxIterations  int      `json:"max_iterations"`
	InitialMode    string   `json:"initial_mode"`
	StrictDecrease bool     `json:"strict_decrease"`
}

type Settings struct {
	AhpScale string         `json:"ahp_scale"`
	AemCom   AemComSettings `json:"aem_com"`
}

type PairwiseMatrix struct {
	ExpertID    string      `json:"expert_id,omitempty"`
	CriterionID string      `json:"criterion_id,omitempty"`
	Items       []string    `json:"items"`
	Matrix      [][]float64 `json:"matrix"`
}

type PairwiseMatrices struct {
	CriteriaLevel    []PairwiseMatrix `json:"criteria_level"`
	AlternativeLevel []PairwiseMatrix `json:"alternative_level"`
	CollectiveLevel  []PairwiseMatrix `json:"collective_level,omitempty"`
}

// AhpResult mirrors domain.AhpResult with JSON tags for the response.
type AhpResult struct {
	CriteriaWeights         map[string]float64            `json:"criteria_weights"`
	CriteriaCR              float64                        `json:"criteria_cr"`
	CriteriaCRPercent       float64                        `json:"criteria_cr_percent"`
	AltWeightsByCriterion   map[string]map[string]float64 `json:"alt_weights_by_criterion"`
	AltCRByCriterion        map[string]float64             `json:"alt_cr_by_criterion"`
	AltCRPercentByCriterion map[string]float64             `json:"alt_cr_percent_by_criterion"`
	GlobalAltWeights        map[string]float64             `json:"global_alt_weights"`
}

// AemComIterationRecord mirrors domain.AemComIterationRecord.
type AemComIterationRecord struct {
	Iteration   int       `json:"iteration"`
	PairIndex   [2]int    `json:"pair_index"`
	PairItems   [2]string `json:"pair_items"`
	TRS         float64   `json:"t_rs"`
	OldValue    float64   `json:"old_value"`
	NewValue    float64   `json:"new_value"`
	GCompiValue float64   `json:"gcompi_value"`
}

// AemComRunResult mirrors domain.AemComRunResult.
type AemComRunResult struct {
	Items             []string                `json:"items"`
	InitialMatrix     [][]float64              `json:"initial_matrix"`
	FinalMatrix       [][]float64              `json:"final_matrix"`
	InitialPriorities []float64                `json:"initial_priorities"`
	FinalPriorities   []float64                `json:"final_priorities"`
	GroupPriorities   []float64                `json:"group_priorities"`
	GCompiInitial     float64                  `json:"gcompi_initial"`
	GCompiFinal       float64                  `json:"gcompi_final"`
	GCompiMin         float64                  `json:"gcompi_min"`
	Iterations        int                      `json:"iterations"`
	History           []AemComIterationRecord  `json:"history"`
}

// AemComDetails mirrors domain.AemComGlobalResult.
type AemComDetails struct {
	CriteriaResult          *AemComRunResult            `json:"criteria_result,omitempty"`
	AlternativesByCriterion map[string]*AemComRunResult `json:"alternatives_by_criterion,omitempty"`
	TotalIterations         int                         `json:"total_iterations"`
	LevelsCount             int                         `json:"levels_count"`
}

// AemComSummary is the compact result.aem_com.summary object spec.md §6
// names explicitly: permissibility plus the totals across every level the
// orchestrator visited.
type AemComSummary struct {
	Permissibility     float64 `json:"permissibility"`
	GCompiInitialTotal float64 `json:"gcompi_initial_total"`
	GCompiFinalTotal   float64 `json:"gcompi_final_total"`
	GCompiMinTotal     float64 `json:"gcompi_min_total"`
	DeltaTotal         float64 `json:"delta_total"`
	ImprovementTotal   float64 `json:"improvement_total"`
	GeneratedAt        string  `json:"generated_at"`
}

// AemComSection is result.aem_com = {summary, details}.
type AemComSection struct {
	Summary AemComSummary `json:"summary"`
	Details AemComDetails `json:"details"`
}

// Result is the `result` object of the output document.
type Result struct {
	Ahp         *AhpResult          `json:"ahp,omitempty"`
	AemCom      AemComSection       `json:"aem_com"`
	Validation  *validator.Report   `json:"validation,omitempty"`
	Sensitivity *sensitivity.Report `json:"sensitivity,omitempty"`
}

// Document is the full spec.md §6 output document: the input echoed back
// plus a Result.
type Document struct {
	Problem          Problem          `json:"problem"`
	Experts          []Expert         `json:"experts"`
	Model            Model            `json:"model"`
	Settings         Settings         `json:"settings"`
	PairwiseMatrices PairwiseMatrices `json:"pairwise_matrices"`
	Result           Result           `json:"result"`
}

// Options controls which optional sections Build attaches to the
// result, letting the CLI's --sensitivity flag and the HTTP API's
// ?sensitivity=true query param opt in independently.
type Options struct {
	IncludeValidation  bool
	IncludeSensitivity bool
}

// Build assembles the output document for one solved group model. ahp
// may be nil if the criteria level was empty and no ranking was
// produced; aemResult is always present once the orchestrator has run.
func Build(model *domain.GroupModel, ahpResult *domain.AhpResult, aemResult *domain.AemComGlobalResult, opts Options) *Document {
	doc := &Document{
		Problem:          fromProblem(model.Problem),
		Experts:          fromExperts(model.Experts),
		Model:            fromModel(model.Model),
		Settings:         fromSettings(model.Settings),
		PairwiseMatrices: fromPairwiseMatrices(model.PairwiseMatrices),
		Result: Result{
			AemCom: fromAemComGlobalResult(aemResult, model.Settings.AemCom.Permissibility),
		},
	}

	if ahpResult != nil {
		doc.Result.Ahp = fromAhpResult(ahpResult)
		if opts.IncludeSensitivity {
			report := sensitivity.Analyze(model, ahpResult)
			doc.Result.Sensitivity = &report
		}
	}

	if opts.IncludeValidation {
		report := validator.Validate(model)
		doc.Result.Validation = &report
	}

	return doc
}

func fromProblem(p domain.Problem) Problem {
	return Problem{ID: p.ID, Name: p.Name, Description: p.Description, Goal: p.Goal}
}

func fromExperts(experts []domain.Expert) []Expert {
	out := make([]Expert, 0, len(experts))
	for _, e := range experts {
		out = append(out, Expert{ID: e.ID, Name: e.Name, Role: e.Role, Weight: e.Weight})
	}
	return out
}

func fromItems(items []domain.Criterion) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}

func fromAlternatives(items []domain.Alternative) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}

func fromModel(m domain.Model) Model {
	return Model{Criteria: fromItems(m.Criteria), Alternatives: fromAlternatives(m.Alternatives)}
}

func fromSettings(s domain.Settings) Settings {
	return Settings{
		AhpScale: s.AhpScale,
		AemCom: AemComSettings{
			Permissibility: s.AemCom.Permissibility,
			ApplyTo:        s.AemCom.ApplyTo,
			MaxIterations:  s.AemCom.MaxIterations,
			InitialMode:    string(s.AemCom.InitialMode),
			StrictDecrease: s.AemCom.StrictDecrease,
		},
	}
}

func fromPairwiseMatrix(m domain.PairwiseMatrix) PairwiseMatrix {
	return PairwiseMatrix{
		ExpertID:    m.ExpertID,
		CriterionID: m.CriterionID,
		Items:       m.Items,
		Matrix:      m.Matrix,
	}
}

func fromPairwiseMatrixSlice(in []domain.PairwiseMatrix) []PairwiseMatrix {
	out := make([]PairwiseMatrix, 0, len(in))
	for _, m := range in {
		out = append(out, fromPairwiseMatrix(m))
	}
	return out
}

func fromPairwiseMatrices(m domain.PairwiseMatrices) PairwiseMatrices {
	return PairwiseMatrices{
		CriteriaLevel:    fromPairwiseMatrixSlice(m.CriteriaLevel),
		AlternativeLevel: fromPairwiseMatrixSlice(m.AlternativeLevel),
		CollectiveLevel:  fromPairwiseMatrixSlice(m.CollectiveLevel),
	}
}

func fromAhpResult(r *domain.AhpResult) *AhpResult {
	return &AhpResult{
		CriteriaWeights:         r.CriteriaWeights,
		CriteriaCR:              r.CriteriaCR,
		CriteriaCRPercent:       r.CriteriaCRPercent,
		AltWeightsByCriterion:   r.AltWeightsByCriterion,
		AltCRByCriterion:        r.AltCRByCriterion,
		AltCRPercentByCriterion: r.AltCRPercentByCriterion,
		GlobalAltWeights:        r.GlobalAltWeights,
	}
}

func fromIterationRecords(in []domain.AemComIterationRecord) []AemComIterationRecord {
	out := make([]AemComIterationRecord, 0, len(in))
	for _, rec := range in {
		out = append(out, AemComIterationRecord{
			Iteration:   rec.Iteration,
			PairIndex:   rec.PairIndex,
			PairItems:   rec.PairItems,
			TRS:         rec.TRS,
			OldValue:    rec.OldValue,
			NewValue:    rec.NewValue,
			GCompiValue: rec.GCompiValue,
		})
	}
	return out
}

func fromRunResult(r *domain.AemComRunResult) *AemComRunResult {
	if r == nil {
		return nil
	}
	return &AemComRunResult{
		Items:             r.Items,
		InitialMatrix:     r.InitialMatrix,
		FinalMatrix:       r.FinalMatrix,
		InitialPriorities: r.InitialPriorities,
		FinalPriorities:   r.FinalPriorities,
		GroupPriorities:   r.GroupPriorities,
		GCompiInitial:     r.GCompiInitial,
		GCompiFinal:       r.GCompiFinal,
		GCompiMin:         r.GCompiMin,
		Iterations:        r.Iterations,
		History:           fromIterationRecords(r.History),
	}
}

// fromAemComGlobalResult renders the details section and derives the
// summary totals spec.md §6 names: sums of gcompi_initial/final/min
// across every level the orchestrator visited, plus their delta and a
// percentage improvement.
func fromAemComGlobalResult(g *domain.AemComGlobalResult, permissibility float64) AemComSection {
	section := AemComSection{
		Summary: AemComSummary{
			Permissibility: permissibility,
			GeneratedAt:    time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	if g == nil {
		return section
	}

	details := AemComDetails{
		TotalIterations:         g.TotalIterations,
		LevelsCount:             g.LevelsCount,
		AlternativesByCriterion: make(map[string]*AemComRunResult, len(g.AlternativesByCriterion)),
	}

	var initialTotal, finalTotal, minTotal float64
	accumulate := func(r *domain.AemComRunResult) {
		initialTotal += r.GCompiInitial
		finalTotal += r.GCompiFinal
		minTotal += r.GCompiMin
	}

	if g.CriteriaResult != nil {
		details.CriteriaResult = fromRunResult(g.CriteriaResult)
		accumulate(g.CriteriaResult)
	}
	for id, r := range g.AlternativesByCriterion {
		details.AlternativesByCriterion[id] = fromRunResult(r)
		accumulate(r)
	}

	section.Details = details
	section.Summary.GCompiInitialTotal = initialTotal
	section.Summary.GCompiFinalTotal = finalTotal
	section.Summary.GCompiMinTotal = minTotal
	section.Summary.DeltaTotal = initialTotal - finalTotal
	if initialTotal > 0 {
		section.Summary.ImprovementTotal = (initialTotal - finalTotal) / initialTotal * 100
	}
	return section
}
