// Package validator produces a non-fatal quality report for a group
// model: a 0-100 score and a list of human-readable issues. Unlike
// internal/ingest's structural checks, nothing here aborts a run --
// every finding only lowers the reported score. Grounded on the
// teacher's AHPModel.Validate, generalized from its single-hierarchy
// checks to the full group/expert/settings shape.
package validator

import (
	"fmt"

	"groupahpdss/internal/aij"
	"groupahpdss/internal/domain"
	"groupahpdss/internal/numerics"
)

// inconsistencyThreshold is the CR above which a matrix is flagged,
// following Saaty's common 0.1 cutoff.
const inconsistencyThreshold = 0.1

// Report is the outcome of validating a group model: a percentage score
// starting at 100 and reduced by one deduction per issue, and the
// ordered list of issues found.
type Report struct {
	Percentage float64  `json:"percentage"`
	Issues     []string `json:"issues"`
}

func (r *Report) flag(deduction float64, format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
	r.Percentage -= deduction
}

// Validate inspects a group model for common quality problems that do
// not violate a structural invariant but still weaken the result: zero
// expert weights, criteria with no alternative-level matrices, inconsistent
// matrices, and settings outside typical ranges.
func Validate(model *domain.GroupModel) Report {
	report := Report{Percentage: 100}

	if len(model.Experts) == 0 {
		report.flag(5, "no experts declared; pairwise matrices will be treated as equally weighted")
	}
	for _, e := range model.Experts {
		if e.Weight <= 0 {
			report.flag(3, "expert %q has non-positive weight %.4g and will not influence aggregation", e.ID, e.Weight)
		}
	}

	if len(model.Model.Criteria) < 2 {
		report.flag(10, "fewer than two criteria declared; AHP ranking is not meaningful")
	}
	if len(model.Model.Alternatives) < 2 {
		report.flag(10, "fewer than two alternatives declared; AHP ranking is not meaningful")
	}

	for _, m := range model.PairwiseMatrices.CriteriaLevel {
		checkMatrixConsistency(&report, "criteria-level", m)
	}
	for _, m := range model.PairwiseMatrices.AlternativeLevel {
		checkMatrixConsistency(&report, fmt.Sprintf("alternative-level (criterion %q)", m.CriterionID), m)
	}

	coveredCriteria := make(map[string]bool)
	for _, m := range model.PairwiseMatrices.AlternativeLevel {
		coveredCriteria[m.CriterionID] = true
	}
	for _, criterion := range model.Model.Criteria {
		if !coveredCriteria[criterion.ID] {
			report.flag(5, "criterion %q has no alternative-level matrices; it will be excluded from the global ranking", criterion.ID)
		}
	}

	settings := model.Settings.AemCom
	if settings.Permissibility <= 0 {
		report.flag(5, "permissibility is non-positive; AEM-COM steps will be clamped to no movement")
	} else if settings.Permissibility < 0.05 || settings.Permissibility > 0.5 {
		report.flag(2, "permissibility %.4g is outside the typical 0.05-0.5 range", settings.Permissibility)
	}
	if settings.MaxIterations <= 0 {
		report.flag(2, "max_iterations is unset; AEM-COM will run until the candidate set is exhausted")
	}

	if report.Percentage < 0 {
		report.Percentage = 0
	}
	return report
}

func checkMatrixConsistency(report *Report, label string, m domain.PairwiseMatrix) {
	n := m.Size()
	if n == 0 {
		report.flag(5, "%s matrix for expert %q has no items", label, m.ExpertID)
		return
	}

	weights := numerics.PriorityVector(m.Matrix)
	cr := numerics.ConsistencyRatio(m.Matrix, weights)
	if cr > inconsistencyThreshold {
		report.flag(4, "%s matrix for expert %q has CR %.3f, above the %.2f threshold", label, m.ExpertID, cr, inconsistencyThreshold)
	}
}

// AggregateConsistency reports the CR of the AIJ-aggregated collective
// matrix for a family: a single post-aggregation consistency figure
// without re-running the full solver. Nothing in this repository calls
// it.
func AggregateConsistency(matrices [][][]float64, weights []float64) float64 {
	collective := aij.Aggregate(matrices, weights)
	priorities := numerics.PriorityVector(collective)
	return numerics.ConsistencyRatio(collective, priorities)
}
