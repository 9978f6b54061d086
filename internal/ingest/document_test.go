package ingest

import (
	"testing"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
	"problem": {"id": "p1", "name": "Pick a vendor", "description": "", "goal": "maximize value"},
	"experts": [{"id": "e1", "name": "Alice", "role": "lead", "weight": 0.6}, {"id": "e2", "name": "Bob", "role": "", "weight": 0.4}],
	"model": {
		"criteria": [{"id": "cost", "name": "Cost"}, {"id": "quality", "name": "Quality"}],
		"alternatives": [{"id": "x", "name": "X"}, {"id": "y", "name": "Y"}]
	},
	"settings": {
		"ahp_scale": "saaty",
		"aem_com": {"permissibility": 0.3, "apply_to": ["criteria", "alternatives_by_criterion"], "max_iterations": 20, "initial_mode": "aij", "strict_decrease": true}
	},
	"pairwise_matrices": {
		"criteria_level": [
			{"expert_id": "e1", "items": ["cost", "quality"], "matrix": [[1, 3], [0.3333333333333333, 1]]}
		],
		"alternative_level": [
			{"expert_id": "e1", "criterion_id": "cost", "items": ["x", "y"], "matrix": [[1, 2], [0.5, 1]]}
		]
	}
}`

func TestParseDocument_ValidDocument(t *testing.T) {
	model, err := ParseDocument([]byte(validDocument))
	require.NoError(t, err)

	assert.Equal(t, "p1", model.Problem.ID)
	assert.Len(t, model.Experts, 2)
	assert.Len(t, model.Model.Criteria, 2)
	assert.Equal(t, domain.InitialMode("aij"), model.Settings.AemCom.InitialMode)
	require.Len(t, model.PairwiseMatrices.CriteriaLevel, 1)
	assert.Equal(t, []string{"cost", "quality"}, model.PairwiseMatrices.CriteriaLevel[0].Items)
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.InputMalformed, appErr.Code)
}

func TestParseDocument_NonSquareMatrixIsRejected(t *testing.T) {
	doc := `{"pairwise_matrices": {"criteria_level": [
		{"expert_id": "e1", "items": ["cost", "quality"], "matrix": [[1, 3]]}
	]}}`

	_, err := ParseDocument([]byte(doc))
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.StructuralInvariantViolated, appErr.Code)
}

func TestParseDocument_NonReciprocalEntryIsRejected(t *testing.T) {
	doc := `{"pairwise_matrices": {"criteria_level": [
		{"expert_id": "e1", "items": ["cost", "quality"], "matrix": [[1, 3], [3, 1]]}
	]}}`

	_, err := ParseDocument([]byte(doc))
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.StructuralInvariantViolated, appErr.Code)
}

func TestParseDocument_OutOfSaatyRangeIsRejected(t *testing.T) {
	doc := `{"pairwise_matrices": {"criteria_level": [
		{"expert_id": "e1", "items": ["cost", "quality"], "matrix": [[1, 12], [0.08333333333333333, 1]]}
	]}}`

	_, err := ParseDocument([]byte(doc))
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.StructuralInvariantViolated, appErr.Code)
}
