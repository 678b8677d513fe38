package cause

import (
	"errors"

	"github.com/hp-causality/causalhp/event"
)

// Assignment is a non-empty (when used as a candidate cause) partial
// mapping from Variable to Value - the same representation event.Assignment
// uses for contexts and interventions.
type Assignment = event.Assignment

// ErrEmptyCandidate is returned by the four public decision predicates
// (IsWeakActualCause, IsActualCause, IsWeakSufficientCause,
// IsSufficientCause) when called directly with an empty candidate.
// EnumerateCauses never constructs an empty candidate, so callers driving
// the search through it never see this error.
var ErrEmptyCandidate = errors.New("cause: candidate assignment is empty")

// CauseKind selects which decision predicate EnumerateCauses searches with.
type CauseKind int

const (
	WeakActualCause CauseKind = iota
	ActualCause
	WeakSufficientCause
	SufficientCause
)

func (k CauseKind) String() string {
	switch k {
	case WeakActualCause:
		return "WeakActualCause"
	case ActualCause:
		return "ActualCause"
	case WeakSufficientCause:
		return "WeakSufficientCause"
	case SufficientCause:
		return "SufficientCause"
	default:
		return "CauseKind(?)"
	}
}
