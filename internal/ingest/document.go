// Package ingest parses the spec.md §6 input JSON document into the
// closed set of internal/domain types, validating structural invariants
// up front so every downstream package works over typed, already-checked
// values. Grounded on the teacher's AHPModel.Validate and
// original_source/modules/context_generator.py's load-from-JSON shape.
package ingest

import (
	"encoding/json"
	"fmt"
	"math"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"
)

// wire document shape -- mirrors spec.md §6 field names exactly.

type wireDocument struct {
	Problem          wireProblem          `json:"problem"`
	Experts          []wireExpert         `json:"experts"`
	Model            wireModel            `json:"model"`
	Settings         wireSettings         `json:"settings"`
	PairwiseMatrices wirePairwiseMatrices `json:"pairwise_matrices"`
}

type wireProblem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
}

type wireExpert struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Weight float64 `json:"weight"`
}

type wireItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type wireModel struct {
	Criteria     []wireItem `json:"criteria"`
	Alternatives []wireItem `json:"alternatives"`
}

type wireAemComSettings struct {
	Permissibility float64  `json:"permissibility"`
	ApplyTo        []string `json:"apply_to"`
	MaxIterations  int      `json:"max_iterations"`
	InitialMode    string   `json:"initial_mode"`
	StrictDecrease bool     `json:"strict_decrease"`
}

type wireSettings struct {
	AhpScale string             `json:"ahp_scale"`
	AemCom   wireAemComSettings `json:"aem_com"`
}

type wirePairwiseMatrix struct {
	ExpertID    string      `json:"expert_id"`
	CriterionID string      `json:"criterion_id,omitempty"`
	Items       []string    `json:"items"`
	Matrix      [][]float64 `json:"matrix"`
}

type wirePairwiseMatrices struct {
	CriteriaLevel     []wirePairwiseMatrix `json:"criteria_level"`
	AlternativeLevel  []wirePairwiseMatrix `json:"alternative_level"`
	CollectiveMatrix  *wirePairwiseMatrix  `json:"collective_matrix,omitempty"`
	CollectiveLevel   []wirePairwiseMatrix `json:"collective_level,omitempty"`
}

// reciprocalTolerance bounds how far A[j][i] may drift from 1/A[i][j]
// before the document is rejected as structurally invalid.
const reciprocalTolerance = 1e-6

const (
	saatyLower = 1.0 / 9.0
	saatyUpper = 9.0
)

// ParseDocument decodes and validates a spec.md §6 input document into a
// domain.GroupModel. Every structural problem (bad JSON, wrong matrix
// shape, broken reciprocity, out-of-range entries) is reported as an
// *apperr.Error tagged InputMalformed or StructuralInvariantViolated.
func ParseDocument(data []byte) (*domain.GroupModel, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Wrap(apperr.InputMalformed, "invalid JSON document", err)
	}

	model := &domain.GroupModel{
		Problem: domain.Problem{
			ID:          doc.Problem.ID,
			Name:        doc.Problem.Name,
			Description: doc.Problem.Description,
			Goal:        doc.Problem.Goal,
		},
		Model: domain.Model{
			Criteria:     toCriteria(doc.Model.Criteria),
			Alternatives: toAlternatives(doc.Model.Alternatives),
		},
		Settings: domain.Settings{
			AhpScale: doc.Settings.AhpScale,
			AemCom: domain.AemComSettings{
				Permissibility: doc.Settings.AemCom.Permissibility,
				ApplyTo:        doc.Settings.AemCom.ApplyTo,
				MaxIterations:  doc.Settings.AemCom.MaxIterations,
				InitialMode:    domain.InitialMode(doc.Settings.AemCom.InitialMode),
				StrictDecrease: doc.Settings.AemCom.StrictDecrease,
			},
		},
	}

	for _, e := range doc.Experts {
		model.Experts = append(model.Experts, domain.Expert{
			ID: e.ID, Name: e.Name, Role: e.Role, Weight: e.Weight,
		})
	}

	criteriaLevel, err := toPairwiseMatrices(doc.PairwiseMatrices.CriteriaLevel)
	if err != nil {
		return nil, err
	}
	alternativeLevel, err := toPairwiseMatrices(doc.PairwiseMatrices.AlternativeLevel)
	if err != nil {
		return nil, err
	}

	var collectiveLevel []domain.PairwiseMatrix
	if doc.PairwiseMatrices.CollectiveMatrix != nil {
		m, err := toPairwiseMatrix(*doc.PairwiseMatrices.CollectiveMatrix)
		if err != nil {
			return nil, err
		}
		collectiveLevel = append(collectiveLevel, m)
	}
	if len(doc.PairwiseMatrices.CollectiveLevel) > 0 {
		more, err := toPairwiseMatrices(doc.PairwiseMatrices.CollectiveLevel)
		if err != nil {
			return nil, err
		}
		collectiveLevel = append(collectiveLevel, more...)
	}

	model.PairwiseMatrices = domain.PairwiseMatrices{
		CriteriaLevel:    criteriaLevel,
		AlternativeLevel: alternativeLevel,
		CollectiveLevel:  collectiveLevel,
	}

	return model, nil
}

func toCriteria(items []wireItem) []domain.Criterion {
	out := make([]domain.Criterion, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Criterion{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}

func toAlternatives(items []wireItem) []domain.Alternative {
	out := make([]domain.Alternative, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Alternative{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out
}

func toPairwiseMatrices(in []wirePairwiseMatrix) ([]domain.PairwiseMatrix, error) {
	out := make([]domain.PairwiseMatrix, 0, len(in))
	for _, w := range in {
		m, err := toPairwiseMatrix(w)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func toPairwiseMatrix(w wirePairwiseMatrix) (domain.PairwiseMatrix, error) {
	n := len(w.Items)
	if len(w.Matrix) != n {
		return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
			fmt.Sprintf("matrix for expert %q has %d rows, expected %d (one per item)", w.ExpertID, len(w.Matrix), n))
	}
	for i, row := range w.Matrix {
		if len(row) != n {
			return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
				fmt.Sprintf("matrix for expert %q row %d has %d columns, expected %d", w.ExpertID, i, len(row), n))
		}
	}

	for i := 0; i < n; i++ {
		if math.Abs(w.Matrix[i][i]-1.0) > reciprocalTolerance {
			return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
				fmt.Sprintf("matrix for expert %q has non-unit diagonal at %d", w.ExpertID, i))
		}
		for j := i + 1; j < n; j++ {
			a, b := w.Matrix[i][j], w.Matrix[j][i]
			if a <= 0 || b <= 0 {
				return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
					fmt.Sprintf("matrix for expert %q has non-positive entry at (%d,%d)", w.ExpertID, i, j))
			}
			if a < saatyLower-reciprocalTolerance || a > saatyUpper+reciprocalTolerance {
				return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
					fmt.Sprintf("matrix for expert %q entry (%d,%d)=%g outside Saaty range [1/9,9]", w.ExpertID, i, j, a))
			}
			if math.Abs(a*b-1.0) > reciprocalTolerance*math.Max(1, a) {
				return domain.PairwiseMatrix{}, apperr.New(apperr.StructuralInvariantViolated,
					fmt.Sprintf("matrix for expert %q entries (%d,%d)/(%d,%d) are not reciprocal", w.ExpertID, i, j, j, i))
			}
		}
	}

	matrix := make([][]float64, n)
	for i, row := range w.Matrix {
		matrix[i] = append([]float64(nil), row...)
	}

	return domain.PairwiseMatrix{
		Items:       append([]string(nil), w.Items...),
		Matrix:      matrix,
		ExpertID:    w.ExpertID,
		CriterionID: w.CriterionID,
	}, nil
}
