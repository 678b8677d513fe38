// Package causalnet implements the causal network: a network.Graph of
// event.Variables plus a structural equation per endogenous variable (F)
// plus an active override map (B) representing an intervention.
//
// What:
//
//   - Equation: a pure function from a parent valuation to a value,
//     supplied by the caller.
//   - Network: (graph, F, B). AddDependency registers edges + an equation;
//     Intervene returns a new Network sharing the graph and F, with B
//     replaced; Evaluate performs the topologically-ordered forward pass.
//   - Signature: exogenous variables are the graph's sources, endogenous
//     variables are everything else.
//
// Why:
//
//   - Separating F from B lets Intervene cost O(|sigma|) (only the new
//     override map is copied, never the graph or F) and lets
//     repeated interventions on the same base network share structure
//     rather than deep-copying it on every derived graph.
//
// Errors:
//
//   - ErrInvalidGraph - AddDependency would create a cycle, wrapping the
//     underlying network.ErrCycleDetected/ErrSelfLoop.
//   - ErrMissingEquation - Evaluate reached a variable that is not in the
//     context, not overridden, and has no registered structural equation
//     (for example an exogenous variable missing from the context, or a
//     variable whose AddDependency call failed part-way).
package causalnet
