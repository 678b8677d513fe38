package causalnet

import (
	"errors"
	"fmt"

	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/network"
)

// ErrInvalidGraph indicates that adding a dependency would create a cycle.
var ErrInvalidGraph = errors.New("causalnet: invalid graph")

// ErrMissingEquation indicates a variable was reached during Evaluate that
// is neither in the context nor overridden and has no structural equation
// registered for it.
var ErrMissingEquation = errors.New("causalnet: endogenous variable has no structural equation")

// Equation is a pure, deterministic, total function from a valuation of a
// variable's parents to a value in the variable's domain. Equations are
// supplied by the caller; the engine never inspects their internals.
type Equation func(parents event.Valuation) (event.Value, error)

// Network is a tuple (G, F, B): a DAG of variables, a structural equation
// per endogenous variable, and an override map representing an active
// intervention. A zero-value Network is not usable; construct with
// NewNetwork.
type Network struct {
	graph *network.Graph[event.Variable]
	f     map[event.Variable]Equation
	b     event.Assignment
}

// NewNetwork constructs an empty causal network with no dependencies and
// no active intervention.
func NewNetwork() *Network {
	return &Network{
		graph: network.NewGraph(event.Variable.Less),
		f:     make(map[event.Variable]Equation),
		b:     event.Assignment{},
	}
}

// AddDependency registers parent -> v edges for each parent and records eq
// as v's structural equation, making v endogenous. Returns ErrInvalidGraph
// if this would create a cycle.
func (n *Network) AddDependency(v event.Variable, parents []event.Variable, eq Equation) error {
	n.graph.AddVertex(v)
	for _, p := range parents {
		if err := n.graph.AddEdge(p, v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		}
	}
	n.f[v] = eq

	return nil
}

// Signature returns the exogenous variables (graph sources) and endogenous
// variables (everything else), both sorted by symbol.
func (n *Network) Signature() (exogenous, endogenous []event.Variable) {
	for _, v := range n.graph.Vertices() {
		if len(n.graph.Parents(v)) == 0 {
			exogenous = append(exogenous, v)
		} else {
			endogenous = append(endogenous, v)
		}
	}

	return exogenous, endogenous
}

// Intervene returns a new Network sharing the same graph and structural
// equations, with the override map replaced by sigma. This is the graph
// surgery ("do(.)") operator: overridden variables behave as if their
// equation always returns the pinned value, regardless of parents.
func (n *Network) Intervene(sigma event.Assignment) *Network {
	return &Network{
		graph: n.graph,
		f:     n.f,
		b:     sigma.Clone(),
	}
}

// Evaluate performs the forward pass: walk the graph in topological order,
// carrying forward any value already present in context (the exogenous
// variables), emitting the override for any variable in B, and otherwise
// invoking F[v] on the valuation restricted to v's parents. The returned
// Valuation contains only the endogenous variables (those not already in
// context); the caller (package setting) merges it with context to form
// the full valuation and checks domain membership.
func (n *Network) Evaluate(context event.Valuation) (event.Valuation, error) {
	order, err := n.graph.TopologicalOrder()
	if err != nil {
		// Unreachable in practice: AddDependency never admits a cycle.
		return nil, fmt.Errorf("causalnet: %w", err)
	}

	values := make(event.Valuation, len(context))
	for k, v := range context {
		values[k] = v
	}

	for _, v := range order {
		if _, ok := values[v]; ok {
			continue
		}
		if override, ok := n.b[v]; ok {
			values[v] = override
			continue
		}
		eq, ok := n.f[v]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingEquation, v)
		}

		parents := n.graph.Parents(v)
		parentValues := make(event.Valuation, len(parents))
		for _, p := range parents {
			parentValues[p] = values[p]
		}

		val, err := eq(parentValues)
		if err != nil {
			return nil, fmt.Errorf("causalnet: equation for %s: %w", v, err)
		}
		values[v] = val
	}

	derived := make(event.Valuation, len(values)-len(context))
	for k, v := range values {
		if _, ok := context[k]; !ok {
			derived[k] = v
		}
	}

	return derived, nil
}
