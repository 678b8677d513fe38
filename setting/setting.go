package setting

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hp-causality/causalhp/causalnet"
	"github.com/hp-causality/causalhp/event"
)

// Setting pairs a causal network with a concrete, fully-validated
// valuation: a context for the exogenous variables, declared domains for
// every variable, and the endogenous values the network derives from that
// context. A zero-value Setting is not usable; construct with New.
type Setting struct {
	network           *causalnet.Network
	context           event.Valuation
	exogenousDomains  map[event.Variable]event.Domain
	endogenousDomains map[event.Variable]event.Domain
	values            event.Valuation
}

// New validates and constructs a Setting:
//
//  1. signature match: the keys of context and exogenousDomains must equal
//     net's exogenous variables; the keys of endogenousDomains must equal
//     net's endogenous variables.
//  2. every context[v] must lie in exogenousDomains[v].
//  3. net.Evaluate(context) is run to derive the endogenous values. An
//     error here (e.g. a missing equation) is returned unwrapped, since it
//     reflects a broken network rather than a malformed setting.
//  4. every derived value must lie in endogenousDomains[v].
//
// All violations found in steps 1 and 2 are aggregated (via
// hashicorp/go-multierror) into a single error wrapping ErrMalformed
// and/or ErrDomainViolation, and New returns that error without running
// steps 3 and 4. Otherwise New returns as soon as step 3 fails, since a
// broken evaluation makes step 4 meaningless, and all violations found in
// step 4 are aggregated the same way.
func New(
	net *causalnet.Network,
	context event.Valuation,
	exogenousDomains map[event.Variable]event.Domain,
	endogenousDomains map[event.Variable]event.Domain,
) (*Setting, error) {
	exogenous, endogenous := net.Signature()

	var result *multierror.Error
	result = checkSignature("context", exogenous, context, result)
	result = checkSignature("exogenous domains", exogenous, exogenousDomains, result)
	result = checkSignature("endogenous domains", endogenous, endogenousDomains, result)

	for _, v := range exogenous {
		val, ok := context[v]
		if !ok {
			continue
		}
		if dom, ok := exogenousDomains[v]; ok && !dom.Contains(val) {
			result = multierror.Append(result, fmt.Errorf("%w: %s=%v not in declared exogenous domain", ErrDomainViolation, v, val))
		}
	}

	if result != nil && result.Len() > 0 {
		return nil, fmt.Errorf("%w", result)
	}

	derived, err := net.Evaluate(context)
	if err != nil {
		return nil, err
	}

	for _, v := range endogenous {
		val, ok := derived[v]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s has no derived value", ErrMalformed, v))
			continue
		}
		if dom, ok := endogenousDomains[v]; ok && !dom.Contains(val) {
			result = multierror.Append(result, fmt.Errorf("%w: %s=%v not in declared endogenous domain", ErrDomainViolation, v, val))
		}
	}

	if result != nil && result.Len() > 0 {
		return nil, fmt.Errorf("%w", result)
	}

	values := make(event.Valuation, len(context)+len(derived))
	for k, v := range context {
		values[k] = v
	}
	for k, v := range derived {
		values[k] = v
	}

	contextCopy := make(event.Valuation, len(context))
	for k, v := range context {
		contextCopy[k] = v
	}

	return &Setting{
		network:           net,
		context:           contextCopy,
		exogenousDomains:  exogenousDomains,
		endogenousDomains: endogenousDomains,
		values:            values,
	}, nil
}

func checkSignature[T any](label string, want []event.Variable, have map[event.Variable]T, result *multierror.Error) *multierror.Error {
	wantSet := make(map[event.Variable]struct{}, len(want))
	for _, v := range want {
		wantSet[v] = struct{}{}
		if _, ok := have[v]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s missing %s", ErrMalformed, label, v))
		}
	}
	for v := range have {
		if _, ok := wantSet[v]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s has unknown variable %s", ErrMalformed, label, v))
		}
	}

	return result
}

// Network returns the underlying causal network.
func (s *Setting) Network() *causalnet.Network { return s.network }

// Context returns the exogenous context this setting was constructed with.
func (s *Setting) Context() event.Valuation { return s.context }

// ExogenousDomains returns the declared domains of the exogenous variables.
func (s *Setting) ExogenousDomains() map[event.Variable]event.Domain { return s.exogenousDomains }

// EndogenousDomains returns the declared domains of the endogenous variables.
func (s *Setting) EndogenousDomains() map[event.Variable]event.Domain { return s.endogenousDomains }

// Values returns the full valuation: context merged with the derived
// endogenous values.
func (s *Setting) Values() event.Valuation { return s.values }
