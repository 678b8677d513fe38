package network

import "sort"

// The classic three-color vertex marking (white, gray, black) used for
// both cycle detection and topological sort.
const (
	white = iota
	gray
	black
)

// TopologicalOrder computes a linear ordering of vertices such that for
// every edge parent -> child, parent appears before child. Returns
// ErrCycleDetected if the graph contains a cycle.
//
// Uses a three-color DFS with post-order-then-reverse construction over
// the generic key K, walking the full graph as a forest rather than from
// a single designated start vertex (causal networks routinely have
// multiple disconnected exogenous roots).
//
// Complexity: O(V+E). Thread-safe: acquires a read lock on adjacency for
// the duration of the walk (vertex set is snapshotted first).
func (g *Graph[K]) TopologicalOrder() ([]K, error) {
	verts := g.Vertices()

	state := make(map[K]int, len(verts))
	order := make([]K, 0, len(verts))

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	var visit func(v K) error
	visit = func(v K) error {
		switch state[v] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}

		state[v] = gray
		children := make([]K, 0, len(g.children[v]))
		for c := range g.children[v] {
			children = append(children, c)
		}
		sort.Slice(children, func(i, j int) bool { return g.less(children[i], children[j]) })

		for _, c := range children {
			if err := visit(c); err != nil {
				return err
			}
		}

		state[v] = black
		order = append(order, v)

		return nil
	}

	for _, v := range verts {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
