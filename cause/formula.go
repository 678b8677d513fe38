package cause

import (
	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

// Formula pairs an intervention with an event: "had Intervention been
// forced, Event would hold." It mirrors the structural-model notation
// [Y <- y](phi) from Halpern & Pearl.
type Formula struct {
	Intervention event.Assignment
	Event        event.Event
}

// EntailsFormula reports whether f holds in s: s's network is intervened on
// with f.Intervention, re-validated against s's context and domains, and
// f.Event is evaluated against the resulting valuation.
func EntailsFormula(f Formula, s *setting.Setting) (bool, error) {
	intervened := s.Network().Intervene(f.Intervention)

	next, err := setting.New(intervened, s.Context(), s.ExogenousDomains(), s.EndogenousDomains())
	if err != nil {
		return false, err
	}

	return f.Event.EntailedBy(next.Values()), nil
}
