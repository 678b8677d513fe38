package cause

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hp-causality/causalhp/event"
	"github.com/hp-causality/causalhp/setting"
)

// actualCauseCache memoizes EnumerateCauses(ev, s, ActualCause) for the
// lifetime of a single sufficient-cause query. SC4's minimality loop calls
// satisfiesSC2 once per strict subset of the original candidate, every call
// against the same (ev, s) pair, so a cache scoped to that one query avoids
// recomputing the search per subset. The cache is never shared across
// queries: a process-global cache keyed only on ev/values/domains would
// conflate two settings that happen to share a valuation and domains but
// differ in structural equations (and therefore in actual causes), serving
// one setting's actual causes to the other.
type actualCauseCache struct {
	entries *lru.Cache[string, []Assignment]
}

// newActualCauseCache creates an empty cache. Capacity 1 is enough - within
// a single query ev and s never change, only candidate does, so at most one
// distinct (ev, s) signature is ever stored.
func newActualCauseCache() *actualCauseCache {
	entries, _ := lru.New[string, []Assignment](1)

	return &actualCauseCache{entries: entries}
}

func (c *actualCauseCache) find(ev event.Event, s *setting.Setting) ([]Assignment, error) {
	key := cacheKey(ev, s)
	if cached, ok := c.entries.Get(key); ok {
		return cached, nil
	}

	found, err := EnumerateCauses(ev, s, ActualCause)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, found)

	return found, nil
}

// cacheKey builds a string signature of (ev, s): the event's string form,
// every variable's current value, and every endogenous variable's declared
// domain, all in a deterministic (sorted) order. Scoped to a single query,
// this only needs to distinguish repeated lookups within that query from
// each other, which it does trivially since ev and s are invariant there.
func cacheKey(ev event.Event, s *setting.Setting) string {
	key := ev.String()

	values := s.Values()
	vars := make([]event.Variable, 0, len(values))
	for v := range values {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })
	for _, v := range vars {
		key += fmt.Sprintf("|%s=%v", v, values[v])
	}

	endogenousDomains := s.EndogenousDomains()
	endogenousVars := sortedDomainKeys(endogenousDomains)
	for _, v := range endogenousVars {
		key += fmt.Sprintf("|dom(%s)=%v", v, endogenousDomains[v].SortedValues())
	}

	return key
}
