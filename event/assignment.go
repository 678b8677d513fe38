package event

import (
	"errors"
	"sort"
)

// ErrEmptyAssignment is returned by AssignmentsToConjunction when given an
// empty assignment; the decision procedures in package cause treat an
// empty candidate as a false predicate rather than propagating this error,
// per the engine's EmptyCandidate policy.
var ErrEmptyAssignment = errors.New("event: assignment is empty")

// AssignmentsToConjunction converts a non-empty partial assignment into a
// right-associated conjunction of primitives, e.g. {A:1, B:0} becomes
// (A=1 & B=0). Iteration over the assignment is sorted by variable symbol
// so the resulting formula (and its evaluation) is deterministic; this
// matters only for display and reproducibility, not for semantics, since
// conjunction is commutative and associative under EntailedBy.
func AssignmentsToConjunction(a Assignment) (Event, error) {
	if len(a) == 0 {
		return nil, ErrEmptyAssignment
	}

	vars := make([]Variable, 0, len(a))
	for v := range a {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })

	formula := Primitive(vars[len(vars)-1], a[vars[len(vars)-1]])
	for i := len(vars) - 2; i >= 0; i-- {
		formula = And(Primitive(vars[i], a[vars[i]]), formula)
	}

	return formula, nil
}
