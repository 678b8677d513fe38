// Package event implements the Boolean formula algebra evaluated over a
// causal setting's valuation: atomic assertions "V = v", negation,
// conjunction, and disjunction.
//
// What:
//
//   - Variable: a named, totally-ordered token used as a map key throughout
//     the engine (causal networks, settings, candidate assignments).
//   - Domain: a finite non-empty set of opaque comparable values.
//   - Event: a tagged tree (Primitive, Not, And, Or) with compositional
//     evaluation against a Valuation via Entails.
//   - Assignment: a partial mapping from Variable to Value, the shape shared
//     by contexts, interventions, and candidate causes.
//   - AssignmentsToConjunction: deterministic (sorted-by-symbol) folding of
//     an Assignment into a right-associated conjunction of primitives.
//
// Why:
//
//   - The decision procedures in package cause evaluate Boolean event
//     formulas against a setting's valuation; this package is the only
//     place that semantics lives.
//
// Errors:
//
//   - ErrEmptyAssignment - AssignmentsToConjunction called with no entries.
package event
