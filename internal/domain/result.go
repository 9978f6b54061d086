package domain

// AhpResult is the classical-AHP output for one group model: criteria
// weights and consistency, per-criterion local alternative weights and
// consistency, and the global alternative ranking.
type AhpResult struct {
	CriteriaWeights       map[string]float64
	CriteriaCR            float64
	CriteriaCRPercent     float64
	AltWeightsByCriterion map[string]map[string]float64
	AltCRByCriterion      map[string]float64
	AltCRPercentByCriterion map[string]float64
	GlobalAltWeights      map[string]float64
}

// AemComIterationRecord is one accepted move of the AEM-COM engine.
type AemComIterationRecord struct {
	Iteration  int
	PairIndex  [2]int
	PairItems  [2]string
	TRS        float64
	OldValue   float64
	NewValue   float64
	GCompiValue float64
}

// AemComRunResult is the outcome of one AEM-COM run on one level (either
// the criteria level, or one criterion's alternative level).
type AemComRunResult struct {
	Items             []string
	InitialMatrix     [][]float64
	FinalMatrix       [][]float64
	InitialPriorities []float64
	FinalPriorities   []float64
	GroupPriorities   []float64
	GCompiInitial     float64
	GCompiFinal       float64
	GCompiMin         float64
	Iterations        int
	History           []AemComIterationRecord
}

// AemComGlobalResult assembles AEM-COM runs across every hierarchy level
// the orchestrator visited.
type AemComGlobalResult struct {
	CriteriaResult       *AemComRunResult
	AlternativesByCriterion map[string]*AemComRunResult
	TotalIterations      int
	LevelsCount          int
}
