package cause

import (
	"go.uber.org/zap"

	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

// IsWeakSufficientCause reports whether candidate is a weak sufficient
// cause of ev in s: SC1 (factual agreement), SC2 (candidate overlaps some
// actual cause's variable=value pairs), SC3 (forcing candidate makes ev
// hold under every possible exogenous context), with no minimality check.
// Returns ErrEmptyCandidate if candidate is empty.
func IsWeakSufficientCause(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if len(candidate) == 0 {
		return false, ErrEmptyCandidate
	}

	return isWeakSufficientCause(candidate, ev, s, newActualCauseCache())
}

func isWeakSufficientCause(candidate Assignment, ev event.Event, s *setting.Setting, cache *actualCauseCache) (bool, error) {
	ok, err := satisfiesSC1(candidate, ev, s)
	if err != nil || !ok {
		logger.Debug("SC1 failed", zap.Any("candidate", candidate))

		return false, err
	}
	logger.Debug("SC1 passed", zap.Any("candidate", candidate))

	ok, err = satisfiesSC2(candidate, ev, s, cache)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("SC2 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("SC2 passed", zap.Any("candidate", candidate))

	ok, err = satisfiesSC3(candidate, ev, s)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debug("SC3 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("SC3 passed", zap.Any("candidate", candidate))

	return true, nil
}

// satisfiesSC1 reports whether candidate's own declared values and ev both
// hold in s. Callers must never pass an empty candidate (AssignmentsToConjunction
// returns ErrEmptyAssignment for it); both public entrypoints and satisfiesSC4
// enforce this.
func satisfiesSC1(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	conjunction, err := event.AssignmentsToConjunction(candidate)
	if err != nil {
		return false, err
	}

	return conjunction.EntailedBy(s.Values()) && ev.EntailedBy(s.Values()), nil
}

// satisfiesSC2 reports whether candidate shares at least one variable=value
// pair with some actual cause of ev in s.
func satisfiesSC2(candidate Assignment, ev event.Event, s *setting.Setting, cache *actualCauseCache) (bool, error) {
	actualCauses, err := cache.find(ev, s)
	if err != nil {
		return false, err
	}

	for _, ac := range actualCauses {
		for v, val := range candidate {
			if acVal, ok := ac[v]; ok && acVal == val {
				return true, nil
			}
		}
	}

	return false, nil
}

// satisfiesSC3 reports whether forcing candidate makes ev hold no matter
// which exact assignment of the exogenous variables is taken as context.
func satisfiesSC3(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	exogenousVars := sortedDomainKeys(s.ExogenousDomains())

	domainLists := make([][]event.Value, len(exogenousVars))
	for i, v := range exogenousVars {
		domainLists[i] = s.ExogenousDomains()[v].SortedValues()
	}

	for _, combo := range cartesianProduct(domainLists) {
		contextPrime := make(event.Valuation, len(exogenousVars))
		for i, v := range exogenousVars {
			contextPrime[v] = combo[i]
		}

		settingPrime, err := setting.New(s.Network(), contextPrime, s.ExogenousDomains(), s.EndogenousDomains())
		if err != nil {
			return false, err
		}

		holds, err := EntailsFormula(Formula{Intervention: candidate, Event: ev}, settingPrime)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}

	return true, nil
}

// IsSufficientCause reports whether candidate is a sufficient cause of ev
// in s: a weak sufficient cause (SC1-SC3) whose strict non-empty subsets
// are none of them themselves a weak sufficient cause (SC4, minimality).
// Returns ErrEmptyCandidate if candidate is empty.
func IsSufficientCause(candidate Assignment, ev event.Event, s *setting.Setting) (bool, error) {
	if len(candidate) == 0 {
		return false, ErrEmptyCandidate
	}

	cache := newActualCauseCache()

	weak, err := isWeakSufficientCause(candidate, ev, s, cache)
	if err != nil || !weak {
		return false, err
	}

	minimal, err := satisfiesSC4(candidate, ev, s, cache)
	if err != nil {
		return false, err
	}
	if !minimal {
		logger.Debug("SC4 failed", zap.Any("candidate", candidate))

		return false, nil
	}
	logger.Debug("SC4 passed", zap.Any("candidate", candidate))

	return true, nil
}

// satisfiesSC4 reports whether no strict, non-empty subset of candidate is
// itself a weak sufficient cause of ev in s. Unlike AC3, the empty subset
// is explicitly skipped rather than relied upon to fail SC1 - satisfiesSC1
// has no "empty candidate" guard of its own, so the empty subset must be
// filtered out here before recursing.
func satisfiesSC4(candidate Assignment, ev event.Event, s *setting.Setting, cache *actualCauseCache) (bool, error) {
	for _, subset := range subsetsOfAssignment(candidate) {
		if len(subset) == 0 || len(subset) == len(candidate) {
			continue
		}

		weak, err := isWeakSufficientCause(subset, ev, s, cache)
		if err != nil {
			return false, err
		}
		if weak {
			return false, nil
		}
	}

	return true, nil
}
