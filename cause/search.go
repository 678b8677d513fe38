package cause

import (
	"fmt"
	"sort"

	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

// EnumerateCauses searches every non-empty subset of s's endogenous
// variables, paired with every assignment of values drawn from their
// declared domains, for candidates satisfying the given kind of cause for
// ev. Candidates are visited (and returned) in the engine's canonical
// deterministic order: ascending subset size, then lexicographic by
// variable symbol, then lexicographic by value (event.Domain.SortedValues'
// fmt.Sprint order).
func EnumerateCauses(ev event.Event, s *setting.Setting, kind CauseKind) ([]Assignment, error) {
	endogenousVars := sortedDomainKeys(s.EndogenousDomains())

	// Shared across every candidate this search visits: ev and s are fixed
	// for the whole call, so SC2's nested actual-cause search (if kind is
	// one of the sufficient-cause kinds) only ever needs computing once.
	cache := newActualCauseCache()

	var out []Assignment
	for _, vars := range subsetsOf(endogenousVars)[1:] { // [0] is the empty subset
		domainLists := make([][]event.Value, len(vars))
		for i, v := range vars {
			domainLists[i] = s.EndogenousDomains()[v].SortedValues()
		}

		for _, combo := range cartesianProduct(domainLists) {
			candidate := make(Assignment, len(vars))
			for i, v := range vars {
				candidate[v] = combo[i]
			}

			ok, err := decide(kind, candidate, ev, s, cache)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, candidate)
			}
		}
	}

	return out, nil
}

func decide(kind CauseKind, candidate Assignment, ev event.Event, s *setting.Setting, cache *actualCauseCache) (bool, error) {
	switch kind {
	case WeakActualCause:
		return isWeakActualCause(candidate, ev, s)
	case ActualCause:
		weak, err := isWeakActualCause(candidate, ev, s)
		if err != nil || !weak {
			return false, err
		}

		return satisfiesAC3(candidate, ev, s)
	case WeakSufficientCause:
		return isWeakSufficientCause(candidate, ev, s, cache)
	case SufficientCause:
		weak, err := isWeakSufficientCause(candidate, ev, s, cache)
		if err != nil || !weak {
			return false, err
		}

		return satisfiesSC4(candidate, ev, s, cache)
	default:
		return false, fmt.Errorf("cause: unknown CauseKind %s", kind)
	}
}

// subsetsOf returns every subset of vars (vars assumed already sorted),
// starting with the empty subset, in ascending-size then lexicographic
// order - the same order itertools.combinations would produce for each
// size in turn.
func subsetsOf(vars []event.Variable) [][]event.Variable {
	n := len(vars)
	out := [][]event.Variable{{}}

	for k := 1; k <= n; k++ {
		current := make([]event.Variable, 0, k)

		var recurse func(start int)
		recurse = func(start int) {
			if len(current) == k {
				combo := make([]event.Variable, k)
				copy(combo, current)
				out = append(out, combo)

				return
			}
			for i := start; i < n; i++ {
				current = append(current, vars[i])
				recurse(i + 1)
				current = current[:len(current)-1]
			}
		}
		recurse(0)
	}

	return out
}

// subsetsOfAssignment returns every sub-assignment of a (including the
// empty one), preserving a's own declared values for the variables it
// keeps, in the same canonical order as subsetsOf.
func subsetsOfAssignment(a Assignment) []Assignment {
	vars := sortedKeys(a)

	out := make([]Assignment, 0, 1<<uint(len(vars)))
	for _, combo := range subsetsOf(vars) {
		sub := make(Assignment, len(combo))
		for _, v := range combo {
			sub[v] = a[v]
		}
		out = append(out, sub)
	}

	return out
}

// cartesianProduct returns the cartesian product of domains (each already
// sorted) in the same order itertools.product would: the first domain
// varies slowest, the last fastest.
func cartesianProduct(domains [][]event.Value) [][]event.Value {
	result := [][]event.Value{{}}

	for _, domain := range domains {
		next := make([][]event.Value, 0, len(result)*len(domain))
		for _, combo := range result {
			for _, v := range domain {
				extended := make([]event.Value, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = v
				next = append(next, extended)
			}
		}
		result = next
	}

	return result
}

func sortedKeys(a Assignment) []event.Variable {
	out := make([]event.Variable, 0, len(a))
	for v := range a {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

func sortedDomainKeys(domains map[event.Variable]event.Domain) []event.Variable {
	out := make([]event.Variable, 0, len(domains))
	for v := range domains {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
