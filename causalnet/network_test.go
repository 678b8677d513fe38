package causalnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hp-causality/causalhp/causalnet"
	"github.com/hp-causality/causalhp/event"
)

func rockThrowingNetwork(t *testing.T) *causalnet.Network {
	t.Helper()

	us := event.Variable{Symbol: "US"}
	ub := event.Variable{Symbol: "UB"}
	st := event.Variable{Symbol: "ST"}
	bt := event.Variable{Symbol: "BT"}
	sh := event.Variable{Symbol: "SH"}
	bh := event.Variable{Symbol: "BH"}
	bs := event.Variable{Symbol: "BS"}

	n := causalnet.NewNetwork()
	require := func(err error) {
		if err != nil {
			t.Fatalf("add_dependency: %v", err)
		}
	}

	require(n.AddDependency(st, []event.Variable{us}, func(p event.Valuation) (event.Value, error) {
		return p[us], nil
	}))
	require(n.AddDependency(bt, []event.Variable{ub}, func(p event.Valuation) (event.Value, error) {
		return p[ub], nil
	}))
	require(n.AddDependency(sh, []event.Variable{st}, func(p event.Valuation) (event.Value, error) {
		return p[st], nil
	}))
	require(n.AddDependency(bh, []event.Variable{bt, sh}, func(p event.Valuation) (event.Value, error) {
		if p[bt] == 1 && p[sh] == 0 {
			return 1, nil
		}

		return 0, nil
	}))
	require(n.AddDependency(bs, []event.Variable{sh, bh}, func(p event.Valuation) (event.Value, error) {
		if p[sh] == 1 || p[bh] == 1 {
			return 1, nil
		}

		return 0, nil
	}))

	return n
}

func TestEvaluateRockThrowing(t *testing.T) {
	n := rockThrowingNetwork(t)
	us := event.Variable{Symbol: "US"}
	ub := event.Variable{Symbol: "UB"}

	derived, err := n.Evaluate(event.Valuation{us: 1, ub: 1})
	assert.NoError(t, err)

	assert.Equal(t, 1, derived[event.Variable{Symbol: "ST"}])
	assert.Equal(t, 1, derived[event.Variable{Symbol: "SH"}])
	assert.Equal(t, 1, derived[event.Variable{Symbol: "BT"}])
	assert.Equal(t, 0, derived[event.Variable{Symbol: "BH"}]) // preempted by Suzy's rock
	assert.Equal(t, 1, derived[event.Variable{Symbol: "BS"}])
}

func TestSignature(t *testing.T) {
	n := rockThrowingNetwork(t)
	exogenous, endogenous := n.Signature()

	assert.ElementsMatch(t, []event.Variable{{Symbol: "US"}, {Symbol: "UB"}}, exogenous)
	assert.ElementsMatch(t, []event.Variable{
		{Symbol: "ST"}, {Symbol: "BT"}, {Symbol: "SH"}, {Symbol: "BH"}, {Symbol: "BS"},
	}, endogenous)
}

func TestInterveneOverridesAndIdentityAgree(t *testing.T) {
	n := rockThrowingNetwork(t)
	us := event.Variable{Symbol: "US"}
	ub := event.Variable{Symbol: "UB"}
	bt := event.Variable{Symbol: "BT"}
	bs := event.Variable{Symbol: "BS"}

	identity := n.Intervene(event.Assignment{})
	derivedBase, err := n.Evaluate(event.Valuation{us: 1, ub: 1})
	assert.NoError(t, err)
	derivedIdentity, err := identity.Evaluate(event.Valuation{us: 1, ub: 1})
	assert.NoError(t, err)
	assert.Equal(t, derivedBase, derivedIdentity)

	// Force Billy's throw to miss (BT=0): no stone should hit.
	forced := n.Intervene(event.Assignment{bt: 0})
	derived, err := forced.Evaluate(event.Valuation{us: 0, ub: 1})
	assert.NoError(t, err)
	assert.Equal(t, 0, derived[bs])
}

func TestInterveneComposition(t *testing.T) {
	n := rockThrowingNetwork(t)
	st := event.Variable{Symbol: "ST"}
	bt := event.Variable{Symbol: "BT"}

	first := n.Intervene(event.Assignment{st: 1, bt: 1})
	second := first.Intervene(event.Assignment{bt: 0})

	derived, err := second.Evaluate(event.Valuation{
		event.Variable{Symbol: "US"}: 0,
		event.Variable{Symbol: "UB"}: 0,
	})
	assert.NoError(t, err)
	// Intervene replaces B wholesale rather than merging with the prior
	// override map, so the second call drops ST's override entirely: ST
	// falls back to its natural value under US=0, which is 0.
	assert.Equal(t, 0, derived[st])
	assert.Equal(t, 0, derived[bt])
}

func TestAddDependencyRejectsCycle(t *testing.T) {
	a := event.Variable{Symbol: "A"}
	b := event.Variable{Symbol: "B"}

	n := causalnet.NewNetwork()
	identityEq := func(parent event.Variable) causalnet.Equation {
		return func(p event.Valuation) (event.Value, error) { return p[parent], nil }
	}
	assert.NoError(t, n.AddDependency(b, []event.Variable{a}, identityEq(a)))
	err := n.AddDependency(a, []event.Variable{b}, identityEq(b))
	assert.ErrorIs(t, err, causalnet.ErrInvalidGraph)
}

func TestEvaluatePropagatesEquationError(t *testing.T) {
	a := event.Variable{Symbol: "A"}
	b := event.Variable{Symbol: "B"}

	n := causalnet.NewNetwork()
	boom := assert.AnError
	assert.NoError(t, n.AddDependency(b, []event.Variable{a}, func(p event.Valuation) (event.Value, error) {
		return nil, boom
	}))

	_, err := n.Evaluate(event.Valuation{a: 1})
	assert.ErrorIs(t, err, boom)
}
