// Package aemcom implements the AEM-COM consensus-reduction engine: a
// constrained coordinate descent over an n x n reciprocal collective
// matrix that reduces GCOMPI toward the group-target minimum while
// keeping every step inside a permissibility band. This is the core of
// the pipeline. Grounded on
// original_source/modules/aem_com.py:_run_aem_com, _build_aij_matrix and
// _build_initial_matrix, ported line-by-line into the closed domain
// types and re-using internal/numerics, internal/gcompi and
// internal/aij for the shared math.
package aemcom

import (
	"math"

	"groupahpdss/internal/aij"
	"groupahpdss/internal/apperr"
	"groupahpdss/internal/domain"
	"groupahpdss/internal/gcompi"
	"groupahpdss/internal/numerics"
)

const (
	saatyLower = 1.0 / 9.0
	saatyUpper = 9.0
)

type pair struct {
	r, s int
}

// Run executes one AEM-COM pass over a single hierarchy level: the n
// items, the family of expert (or collective) matrices being judged, the
// expert weights for that family, and the settings governing
// permissibility, iteration budget, initial seeding and strict-decrease
// rejection. provided is the optional caller-supplied collective matrix,
// consulted only when settings.InitialMode requests it.
//
// The run ends when the candidate set is empty, when max_iterations
// accepted moves have been made, or when no candidate pair has |L| > 0.
// Under strict_decrease, a run in which every remaining candidate is
// rejected ends the same way, by exhausting the candidate set; this is
// ordinary termination and Run returns a nil error.
func Run(items []string, family [][][]float64, weights []float64, provided [][]float64, settings domain.AemComSettings) (*domain.AemComRunResult, error) {
	n := len(items)

	p0, err := seedInitialMatrix(n, family, weights, provided, settings.InitialMode)
	if err != nil {
		return nil, err
	}

	v0 := numerics.PriorityVector(p0)

	if n <= 2 {
		gc := gcompi.Family(family, weights, v0)
		return &domain.AemComRunResult{
			Items:             append([]string(nil), items...),
			InitialMatrix:     cloneMatrix(p0),
			FinalMatrix:       cloneMatrix(p0),
			InitialPriorities: append([]float64(nil), v0...),
			FinalPriorities:   append([]float64(nil), v0...),
			GroupPriorities:   append([]float64(nil), v0...),
			GCompiInitial:     gc,
			GCompiFinal:       gc,
			GCompiMin:         gc,
			Iterations:        0,
			History:           nil,
		}, nil
	}

	wG := numerics.PriorityVector(aij.Aggregate(family, weights))
	gcompiMin := gcompi.Family(family, weights, wG)
	gcompiInitial := gcompi.Family(family, weights, v0)

	p := cloneMatrix(p0)
	v := append([]float64(nil), v0...)
	gcompiCurrent := gcompiInitial

	candidates := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			candidates = append(candidates, pair{i, j})
		}
	}

	var history []domain.AemComIterationRecord
	iterations := 0

	maxIterations := settings.MaxIterations

	for len(candidates) > 0 && (maxIterations <= 0 || iterations < maxIterations) {
		bestIdx := -1
		bestMag := 0.0
		for idx, c := range candidates {
			_, l := ratioAndLog(v, wG, c.r, c.s)
			mag := math.Abs(l)
			if mag > bestMag {
				bestMag = mag
				bestIdx = idx
			}
		}

		if bestIdx < 0 || bestMag <= 0 {
			break
		}

		chosen := candidates[bestIdx]
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)

		r, s := chosen.r, chosen.s
		if p[chosen.s][chosen.r] > 1 && p[chosen.r][chosen.s] <= 1 {
			r, s = chosen.s, chosen.r
		}

		outcome := attemptPair(p, v, wG, family, weights, gcompiCurrent, r, s, items, settings)
		if !outcome.accepted {
			continue
		}

		v = outcome.v
		gcompiCurrent = outcome.gcompi
		iterations++
		outcome.record.Iteration = iterations
		history = append(history, outcome.record)
	}

	return &domain.AemComRunResult{
		Items:             append([]string(nil), items...),
		InitialMatrix:     cloneMatrix(p0),
		FinalMatrix:       cloneMatrix(p),
		InitialPriorities: append([]float64(nil), v0...),
		FinalPriorities:   append([]float64(nil), v...),
		GroupPriorities:   append([]float64(nil), wG...),
		GCompiInitial:     gcompiInitial,
		GCompiFinal:       gcompiCurrent,
		GCompiMin:         gcompiMin,
		Iterations:        iterations,
		History:           history,
	}, nil
}

// stepOutcome is the result of attempting one oriented candidate pair.
// When accepted is false, p has already been rolled back to its state
// before the attempt, v and gcompi are the unchanged current values, and
// record is the zero value -- no history entry is produced for a
// rejected move.
type stepOutcome struct {
	accepted bool
	v        []float64
	gcompi   float64
	record   domain.AemComIterationRecord
}

// attemptPair computes the step for oriented pair (r, s), applies it to p
// in place, and either accepts it or -- when strict_decrease is set and
// the resulting GCOMPI does not strictly improve on gcompiCurrent --
// rejects it and rolls p back to its pre-attempt values, per spec.md §4.E
// step 6 (scenario S6).
func attemptPair(p [][]float64, v, wG []float64, family [][][]float64, weights []float64, gcompiCurrent float64, r, s int, items []string, settings domain.AemComSettings) stepOutcome {
	q, l := ratioAndLog(v, wG, r, s)
	t := stepFactor(q, l, float64(len(p)), settings.Permissibility)

	oldRS := p[r][s]
	oldSR := p[s][r]

	newRS := clampSaaty(oldRS * t)
	newSR := 1.0 / newRS

	p[r][s] = newRS
	p[s][r] = newSR

	vNew := numerics.PriorityVector(p)
	gcompiNew := gcompi.Family(family, weights, vNew)

	if settings.StrictDecrease && gcompiNew >= gcompiCurrent {
		p[r][s] = oldRS
		p[s][r] = oldSR
		return stepOutcome{accepted: false, v: v, gcompi: gcompiCurrent}
	}

	return stepOutcome{
		accepted: true,
		v:        vNew,
		gcompi:   gcompiNew,
		record: domain.AemComIterationRecord{
			PairIndex:   [2]int{r, s},
			PairItems:   [2]string{items[r], items[s]},
			TRS:         t,
			OldValue:    oldRS,
			NewValue:    newRS,
			GCompiValue: gcompiNew,
		},
	}
}

// ratioAndLog computes q_rs and L_rs = ln(q_rs) per spec.md §4.E step 1,
// for the oriented pair (r, s): q_rs = (v[r]/v[s]) / (w_G[r]/w_G[s]), with
// the group ratio taken to be the literal constant 1 when w_G[s] <= 0 (so
// q_rs reduces to the bare v-ratio, per spec.md:112), and log q = 0
// whenever q <= 0.
func ratioAndLog(v, wG []float64, r, s int) (float64, float64) {
	vRatio := ratioOrNumerator(v[r], v[s])

	groupRatio := 1.0
	if wG[s] > 0 {
		groupRatio = wG[r] / wG[s]
	}

	var q float64
	if groupRatio <= 0 {
		q = 0
	} else {
		q = vRatio / groupRatio
	}

	if q <= 0 {
		return q, 0
	}
	return q, math.Log(q)
}

func ratioOrNumerator(num, denom float64) float64 {
	if denom <= 0 {
		return num
	}
	return num / denom
}

// stepFactor computes the permissibility-clamped multiplicative step for
// an oriented pair per spec.md §4.E step 4.
func stepFactor(q, l, n, rho float64) float64 {
	if l == 0 {
		return 1
	}

	tStar := math.Pow(q, -n/2)

	if l < 0 {
		return math.Min(1+rho, tStar)
	}
	return math.Max(1/(1+rho), tStar)
}

func clampSaaty(x float64) float64 {
	if x < saatyLower {
		return saatyLower
	}
	if x > saatyUpper {
		return saatyUpper
	}
	return x
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func identityMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = 1
		}
	}
	return m
}

// seedInitialMatrix picks P0 according to initial_mode, per spec.md §4.F.
func seedInitialMatrix(n int, family [][][]float64, weights []float64, provided [][]float64, mode domain.InitialMode) ([][]float64, error) {
	if mode.RequestsProvided() {
		if provided == nil {
			return nil, apperr.New(apperr.ProvidedMatrixMissing,
				"initial_mode requests a provided collective matrix but none was supplied")
		}
		return cloneMatrix(provided), nil
	}

	switch mode {
	case domain.ModeFirstExpert:
		if len(family) == 0 {
			return nil, apperr.New(apperr.EmptyLevel, "initial_mode first_expert requires at least one matrix")
		}
		return cloneMatrix(family[0]), nil
	case domain.ModeIdentity:
		return identityMatrix(n), nil
	default:
		return aij.Aggregate(family, weights), nil
	}
}
