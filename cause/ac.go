package cause

import (
	"sort"

	"go.uber.org/zap"

	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

// IsWeakActualCause reports whether candidate is a weak actual cause of ev
// in s: AC1 (factual agreement) and AC2 (counterfactual dependence via a
// witness setting), with no minimality check. Returns ErrEmptyCandidate if
// candidate is empty.
func IsWeakActualCause(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if len(candidate) == 0 {
		return false, ErrEmptyCandidate
	}

	return isWeakActualCause(candidate, ev, s)
}

func isWeakActualCause(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if !satisfiesAC1(candidate, ev, s) {
		logger.Debug("AC1 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("AC1 passed", zap.Any("candidate", candidate))

	ok, err := satisfiesAC2(candidate, ev, s)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("AC2 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("AC2 passed", zap.Any("candidate", candidate))

	return true, nil
}

// satisfiesAC1 reports whether candidate's own declared values hold in s
// (factual agreement) and ev holds in s.
func satisfiesAC1(candidate Assignment, ev event.Event, s *setting.Setting) bool {
	if len(candidate) == 0 {
		return false
	}

	conjunction, err := event.AssignmentsToConjunction(candidate)
	if err != nil {
		return false
	}

	return conjunction.EntailedBy(s.Values()) && ev.EntailedBy(s.Values())
}

// satisfiesAC2 reports whether there exists a witness setting proving
// counterfactual dependence of ev on candidate's variables (see
// findWitnessesAC2 for the exact search).
func satisfiesAC2(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if len(candidate) == 0 {
		return false, nil
	}

	found := false
	err := findWitnessesAC2(candidate, ev, s, func(Assignment) bool {
		found = true

		return true // one witness suffices
	})

	return found, err
}

// findWitnessesAC2 enumerates witness assignments proving AC2 for
// candidate, calling visit for each and stopping as soon as visit returns
// true.
//
// X is built not from candidate's own declared values but from the
// setting's factual values for candidate's variables - a witness pins
// each candidate variable to some value other than its factual value (X'),
// and pins a subset W of the remaining endogenous variables to their
// factual values, then checks whether forcing X' union W makes !ev hold.
func findWitnessesAC2(candidate Assignment, ev event.Event, s *setting.Setting, visit func(w Assignment) bool) error {
	values := s.Values()
	endogenousDomains := s.EndogenousDomains()

	candidateVars := sortedKeys(candidate)

	altDomains := make([][]event.Value, len(candidateVars))
	for i, v := range candidateVars {
		altDomains[i] = endogenousDomains[v].Without(values[v]).SortedValues()
	}

	remaining := make([]event.Variable, 0, len(endogenousDomains))
	for v := range endogenousDomains {
		if _, ok := candidate[v]; !ok {
			remaining = append(remaining, v)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Less(remaining[j]) })
	wSubsets := subsetsOf(remaining)

	for _, xPrimeValues := range cartesianProduct(altDomains) {
		xPrime := make(Assignment, len(candidateVars))
		for i, v := range candidateVars {
			xPrime[v] = xPrimeValues[i]
		}

		for _, wVars := range wSubsets {
			witness := make(Assignment, len(xPrime)+len(wVars))
			for k, v := range xPrime {
				witness[k] = v
			}
			for _, v := range wVars {
				witness[v] = values[v]
			}

			holds, err := EntailsFormula(Formula{Intervention: witness, Event: event.Not(ev)}, s)
			if err != nil {
				return err
			}
			if holds && visit(witness) {
				return nil
			}
		}
	}

	return nil
}

// IsActualCause reports whether candidate is an actual cause of ev in s: a
// weak actual cause (AC1, AC2) whose strict non-empty subsets are none of
// them themselves a weak actual cause (AC3, minimality). Returns
// ErrEmptyCandidate if candidate is empty.
func IsActualCause(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if len(candidate) == 0 {
		return false, ErrEmptyCandidate
	}

	weak, err := isWeakActualCause(candidate, ev, s)
	if err != nil || !weak {
		return false, err
	}

	minimal, err := satisfiesAC3(candidate, ev, s)
	if err != nil {
		return false, err
	}
	if !minimal {
		logger.Debug("AC3 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("AC3 passed", zap.Any("candidate", candidate))

	return true, nil
}

// satisfiesAC3 reports whether no strict subset of candidate (including
// the empty subset, which is always rejected by AC1's non-empty check) is
// itself a weak actual cause of ev in s.
func satisfiesAC3(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	for _, subset := range subsetsOfAssignment(candidate) {
		if len(subset) == len(candidate) {
			continue // the full candidate itself
		}

		weak, err := isWeakActualCause(subset, ev, s)
		if err != nil {
			return false, err
		}
		if weak {
			return false, nil
		}
	}

	return true, nil
}
