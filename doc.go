// Package causalhp implements the modified Halpern-Pearl theory of actual
// and sufficient causation over finite structural causal models.
//
// A causal network (package causalnet) is a DAG of variables (package
// event) plus a structural equation per endogenous variable; a setting
// (package setting) pairs a network with a concrete exogenous context and
// validated domains, producing the values every variable actually takes.
// Package cause decides, for a Boolean event over that setting, whether a
// candidate assignment is an actual cause (AC1-AC3) or a sufficient cause
// (SC1-SC4), and can enumerate every candidate satisfying either.
//
// Everything here is single-threaded and synchronous per query: a search
// walks a fixed, already-validated setting and never mutates it. The
// underlying network.Graph is safe to share across goroutines reasoning
// about independent interventions on the same base network.
//
// Subpackages:
//
//	event/      — variables, values, domains, and the Boolean event algebra
//	network/    — the generic directed-acyclic graph underlying a causal network
//	causalnet/  — structural equations, intervention (graph surgery), evaluation
//	setting/    — validated (network, context, domains) with derived values
//	cause/      — AC1-AC3, SC1-SC4, and EnumerateCauses
package causalhp
