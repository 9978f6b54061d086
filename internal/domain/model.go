// Package domain holds the closed set of record types the rest of the
// engine operates on. Values here are constructed exclusively by
// internal/ingest from a validated input document; no package downstream
// of ingest touches raw JSON.
package domain

// Problem carries free-text identification used only for reporting.
type Problem struct {
	ID          string
	Name        string
	Description string
	Goal        string
}

// Expert is one weighted decision maker contributing pairwise judgments.
type Expert struct {
	ID     string
	Name   string
	Role   string
	Weight float64
}

// Criterion is one dimension the alternatives are judged against.
type Criterion struct {
	ID          string
	Name        string
	Description string
}

// Alternative is one of the choices being ranked.
type Alternative struct {
	ID          string
	Name        string
	Description string
}

// PairwiseMatrix is an n x n reciprocal matrix of judgments over Items, in
// the order Items lists them. ExpertID and CriterionID are optional tags:
// CriterionID is empty for criteria-level matrices, ExpertID is empty for
// a pre-supplied collective matrix.
type PairwiseMatrix struct {
	Items       []string
	Matrix      [][]float64
	ExpertID    string
	CriterionID string
}

// Size returns n, the number of items the matrix compares.
func (m *PairwiseMatrix) Size() int {
	return len(m.Items)
}

// PairwiseMatrices groups the three families a group model can carry.
type PairwiseMatrices struct {
	CriteriaLevel    []PairwiseMatrix
	AlternativeLevel []PairwiseMatrix
	CollectiveLevel  []PairwiseMatrix
}

// InitialMode selects how AEM-COM seeds the collective matrix P0 for a
// level. ModeAIJ, ModePCCM and ModeCollective are synonyms.
type InitialMode string

const (
	ModeAIJ         InitialMode = "aij"
	ModePCCM        InitialMode = "pccm"
	ModeCollective  InitialMode = "collective"
	ModeProvided    InitialMode = "provided"
	ModeFirstExpert InitialMode = "first_expert"
	ModeIdentity    InitialMode = "identity"
)

// UsesAIJ reports whether mode is one of the AIJ-initialization synonyms.
func (m InitialMode) UsesAIJ() bool {
	switch m {
	case ModeAIJ, ModePCCM, ModeCollective, "":
		return true
	default:
		return false
	}
}

// RequestsProvided reports whether mode asks for the caller-supplied
// collective matrix instead of a derived one.
func (m InitialMode) RequestsProvided() bool {
	return m == ModeProvided || m == "provided_collective_matrix"
}

const (
	ApplyCriteria               = "criteria"
	ApplyAlternativesByCriterion = "alternatives_by_criterion"
)

// AemComSettings controls the consensus-reduction engine.
type AemComSettings struct {
	Permissibility  float64
	ApplyTo         []string
	MaxIterations   int
	InitialMode     InitialMode
	StrictDecrease  bool
}

// Settings is the full set of tunables carried by the input document.
type Settings struct {
	AhpScale string
	AemCom   AemComSettings
}

// Model is the hierarchy definition: which criteria and alternatives are
// being judged.
type Model struct {
	Criteria     []Criterion
	Alternatives []Alternative
}

// GroupModel is the complete, validated input to the pipeline.
type GroupModel struct {
	Problem          Problem
	Experts          []Expert
	Model            Model
	Settings         Settings
	PairwiseMatrices PairwiseMatrices
}

// ApplyToSet returns Settings.AemCom.ApplyTo as a lookup set.
func (g *GroupModel) ApplyToSet() map[string]bool {
	set := make(map[string]bool, len(g.Settings.AemCom.ApplyTo))
	for _, v := range g.Settings.AemCom.ApplyTo {
		set[v] = true
	}
	return set
}
