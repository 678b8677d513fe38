package cause_test

import (
	"testing"

	"github.com/hp-causality/causalhp/causalnet"
	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

var boolDomain = event.NewDomain(0, 1)

func mustAddDependency(t *testing.T, n *causalnet.Network, v event.Variable, parents []event.Variable, eq causalnet.Equation) {
	t.Helper()
	if err := n.AddDependency(v, parents, eq); err != nil {
		t.Fatalf("add_dependency(%s): %v", v, err)
	}
}

// rockThrowingSetting builds the classic Suzy-and-Billy setting: both throw
// (US=UB=1), Suzy's rock is faster and hits first, preempting Billy's.
func rockThrowingSetting(t *testing.T) (*setting.Setting, event.Variable, event.Variable, event.Variable) {
	t.Helper()

	us, ub := event.Variable{Symbol: "US"}, event.Variable{Symbol: "UB"}
	st, bt := event.Variable{Symbol: "ST"}, event.Variable{Symbol: "BT"}
	sh, bh := event.Variable{Symbol: "SH"}, event.Variable{Symbol: "BH"}
	bs := event.Variable{Symbol: "BS"}

	n := causalnet.NewNetwork()
	mustAddDependency(t, n, st, []event.Variable{us}, func(p event.Valuation) (event.Value, error) { return p[us], nil })
	mustAddDependency(t, n, bt, []event.Variable{ub}, func(p event.Valuation) (event.Value, error) { return p[ub], nil })
	mustAddDependency(t, n, sh, []event.Variable{st}, func(p event.Valuation) (event.Value, error) { return p[st], nil })
	mustAddDependency(t, n, bh, []event.Variable{bt, sh}, func(p event.Valuation) (event.Value, error) {
		if p[bt] == 1 && p[sh] == 0 {
			return 1, nil
		}
		return 0, nil
	})
	mustAddDependency(t, n, bs, []event.Variable{sh, bh}, func(p event.Valuation) (event.Value, error) {
		if p[sh] == 1 || p[bh] == 1 {
			return 1, nil
		}
		return 0, nil
	})

	exDomains := map[event.Variable]event.Domain{us: boolDomain, ub: boolDomain}
	enDomains := map[event.Variable]event.Domain{st: boolDomain, bt: boolDomain, sh: boolDomain, bh: boolDomain, bs: boolDomain}

	s, err := setting.New(n, event.Valuation{us: 1, ub: 1}, exDomains, enDomains)
	if err != nil {
		t.Fatalf("setting.New: %v", err)
	}

	return s, st, bt, bs
}

// forestFireSetting builds a Lightning/Arsonist/Fire model, conjunctive
// (requires both) or disjunctive (either suffices), both actually true.
func forestFireSetting(t *testing.T, conjunctive bool) (*setting.Setting, event.Variable, event.Variable, event.Variable) {
	t.Helper()

	ul, umd := event.Variable{Symbol: "UL"}, event.Variable{Symbol: "UMD"}
	l, md := event.Variable{Symbol: "L"}, event.Variable{Symbol: "MD"}
	ff := event.Variable{Symbol: "FF"}

	n := causalnet.NewNetwork()
	mustAddDependency(t, n, l, []event.Variable{ul}, func(p event.Valuation) (event.Value, error) { return p[ul], nil })
	mustAddDependency(t, n, md, []event.Variable{umd}, func(p event.Valuation) (event.Value, error) { return p[umd], nil })
	mustAddDependency(t, n, ff, []event.Variable{l, md}, func(p event.Valuation) (event.Value, error) {
		if conjunctive {
			if p[l] == 1 && p[md] == 1 {
				return 1, nil
			}
			return 0, nil
		}
		if p[l] == 1 || p[md] == 1 {
			return 1, nil
		}
		return 0, nil
	})

	exDomains := map[event.Variable]event.Domain{ul: boolDomain, umd: boolDomain}
	enDomains := map[event.Variable]event.Domain{l: boolDomain, md: boolDomain, ff: boolDomain}

	s, err := setting.New(n, event.Valuation{ul: 1, umd: 1}, exDomains, enDomains)
	if err != nil {
		t.Fatalf("setting.New: %v", err)
	}

	return s, l, md, ff
}
