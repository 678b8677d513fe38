// Package cause implements the modified Halpern-Pearl decision procedures
// for actual and sufficient causation over a setting.Setting: AC1-AC3 (weak
// and minimality-checked actual causation), SC1-SC4 (weak and
// minimality-checked sufficient causation), and EnumerateCauses, the
// canonical-order search driver both build on.
//
// What:
//
//   - Formula / EntailsFormula: "had Intervention been forced, Event would
//     hold" - the causal-formula evaluation every other procedure here is
//     built from.
//   - IsWeakActualCause / IsActualCause: AC1 (factual agreement), AC2
//     (counterfactual dependence via a witness setting), AC3 (minimality).
//   - IsWeakSufficientCause / IsSufficientCause: SC1 (factual agreement),
//     SC2 (overlaps an actual cause), SC3 (forces the event under every
//     exogenous context), SC4 (minimality).
//   - EnumerateCauses: search every non-empty subset of endogenous
//     variables, in the engine's canonical deterministic order, for
//     candidates satisfying one of the four predicates above.
//
// Why:
//
//   - The four predicates share one evaluation primitive (EntailsFormula)
//     and one search driver (EnumerateCauses) because they differ only in
//     which combination of factuality, counterfactual-dependence, overlap,
//     and minimality checks they apply - including AC2's subtle discarding
//     of the candidate's own declared values in favor of the setting's
//     factual values when constructing the witness's alternative values.
//
// Errors:
//
//   - ErrEmptyCandidate - one of the four public decision predicates was
//     called directly with an empty candidate.
//
// SC2's nested actual-cause search is memoized per (event, setting) with an
// LRU (see cache.go); this only changes wall time, never the result.
// Package-level diagnostic tracing of AC1/AC2/AC3 and SC1-4 pass/fail is
// routed through a zap.Logger installed with SetLogger (see logging.go),
// defaulting to a no-op.
package cause
