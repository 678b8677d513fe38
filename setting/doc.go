// Package setting wraps a causalnet.Network with a concrete context (values
// for the exogenous variables) and per-variable domains, producing the
// fully-evaluated Valuation that the cause package reasons over.
//
// What:
//
//   - Setting: (network, context, exogenous domains, endogenous domains,
//     values). New validates the four-step contract described below and
//     evaluates the network once; Values returns the full valuation
//     (context merged with the derived endogenous values).
//
// Why:
//
//   - The causal network itself never checks domain membership - an
//     Equation is free to return anything. Setting is the boundary where a
//     malformed signature or an out-of-domain value is caught, validating
//     once at construction and handing out an object that is safe to use
//     from then on.
//
// Errors:
//
//   - ErrMalformed - the supplied context/domains do not match the
//     network's signature (missing or extra variables).
//   - ErrDomainViolation - a value, either supplied in context or derived
//     by an equation, is not a member of its declared domain.
//
// Violations are aggregated with hashicorp/go-multierror rather than
// failing on the first one: every signature and context-domain problem is
// reported together. Derived values are only checked once those pass, so
// their domain violations are reported in a later call.
package setting
