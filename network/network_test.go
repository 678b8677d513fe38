package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hp-causality/causalhp/network"
)

func stringLess(a, b string) bool { return a < b }

func TestAddVertexIdempotent(t *testing.T) {
	g := network.NewGraph(stringLess)
	assert.False(t, g.HasVertex("A"))
	g.AddVertex("A")
	g.AddVertex("A")
	assert.Equal(t, []string{"A"}, g.Vertices())
}

func TestAddEdgeAutoAddsVertices(t *testing.T) {
	g := network.NewGraph(stringLess)
	err := g.AddEdge("A", "B")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, []string{"A"}, g.Parents("B"))
	assert.Equal(t, []string{"B"}, g.Children("A"))
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g := network.NewGraph(stringLess)
	err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, network.ErrSelfLoop)
}

func TestAddEdgeRejectsCycle(t *testing.T) {
	g := network.NewGraph(stringLess)
	assert.NoError(t, g.AddEdge("A", "B"))
	assert.NoError(t, g.AddEdge("B", "C"))
	err := g.AddEdge("C", "A")
	assert.ErrorIs(t, err, network.ErrCycleDetected)

	// the rejected edge must not have been committed
	assert.Empty(t, g.Parents("A"))
	assert.Empty(t, g.Children("C"))
}

func TestTopologicalOrderDiamond(t *testing.T) {
	g := network.NewGraph(stringLess)
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		assert.NoError(t, g.AddEdge(e[0], e[1]))
	}

	order, err := g.TopologicalOrder()
	assert.NoError(t, err)

	pos := map[string]int{}
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos["A"], pos["B"])
	assert.Less(t, pos["A"], pos["C"])
	assert.Less(t, pos["B"], pos["D"])
	assert.Less(t, pos["C"], pos["D"])
}

func TestTopologicalOrderEmptyGraph(t *testing.T) {
	g := network.NewGraph(stringLess)
	order, err := g.TopologicalOrder()
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalOrderDisconnectedRoots(t *testing.T) {
	g := network.NewGraph(stringLess)
	g.AddVertex("A")
	g.AddVertex("B")
	order, err := g.TopologicalOrder()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, order)
}
