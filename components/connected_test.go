package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/adjacency"
	"github.com/katalvlaran/grafo/components"
	"github.com/katalvlaran/grafo/traverse"
)

// buildGraph constructs an adjacency.List with n nodes (tokens 0..n-1) and
// the given edge list.
func buildGraph(t *testing.T, n int, directed bool, edges [][2]int) *adjacency.List {
	t.Helper()
	g := adjacency.NewList(adjacency.WithDirected(directed))
	ids := make([]traverse.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode()
	}
	for _, e := range edges {
		_, err := g.AddEdge(ids[e[0]], ids[e[1]])
		require.NoError(t, err)
	}

	return g
}

// TestConnected_TwoTriangles: two disjoint triangles yield two components of
// three, nodes in discovery order.
func TestConnected_TwoTriangles(t *testing.T) {
	g := buildGraph(t, 6, false, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})

	ccs, err := components.Connected(g)
	require.NoError(t, err)

	require.Len(t, ccs, 2)
	assert.Equal(t, []traverse.NodeID{0, 1, 2}, ccs[0])
	assert.Equal(t, []traverse.NodeID{3, 4, 5}, ccs[1])
}

// TestConnected_SingleNodeComponents: an edgeless graph is all singletons.
func TestConnected_SingleNodeComponents(t *testing.T) {
	g := buildGraph(t, 3, false, nil)

	ccs, err := components.Connected(g)
	require.NoError(t, err)

	assert.Equal(t, [][]traverse.NodeID{{0}, {1}, {2}}, ccs)
}

// TestConnected_EmptyGraph returns an empty partition, not an error.
func TestConnected_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, false, nil)

	ccs, err := components.Connected(g)
	require.NoError(t, err)
	assert.Empty(t, ccs)
}

// TestConnected_RejectsDirected: directed storages need Weak or Strong.
func TestConnected_RejectsDirected(t *testing.T) {
	g := buildGraph(t, 2, true, [][2]int{{0, 1}})

	_, err := components.Connected(g)
	assert.ErrorIs(t, err, components.ErrDirectedGraph)
}

// TestConnected_NilStorage propagates the traversal's construction error.
func TestConnected_NilStorage(t *testing.T) {
	_, err := components.Connected(nil)
	assert.ErrorIs(t, err, traverse.ErrNilStorage)
}

// TestWeak_IgnoresDirection: 0→1←2 is weakly one component; edge direction
// contributes connectivity both ways.
func TestWeak_IgnoresDirection(t *testing.T) {
	g := buildGraph(t, 4, true, [][2]int{{0, 1}, {2, 1}})

	ccs, err := components.Weak(g)
	require.NoError(t, err)

	require.Len(t, ccs, 2)
	assert.ElementsMatch(t, []traverse.NodeID{0, 1, 2}, ccs[0])
	assert.Equal(t, []traverse.NodeID{3}, ccs[1])
}

// TestWeak_UndirectedDegradesToConnected: for an undirected storage Weak is
// plain connectivity.
func TestWeak_UndirectedDegradesToConnected(t *testing.T) {
	g := buildGraph(t, 4, false, [][2]int{{0, 1}, {2, 3}})

	want, err := components.Connected(g)
	require.NoError(t, err)
	got, err := components.Weak(g)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

// TestCount covers the plain component-count wrapper.
func TestCount(t *testing.T) {
	one := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})
	two := buildGraph(t, 4, false, [][2]int{{0, 1}, {2, 3}})

	n, err := components.Count(one)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = components.Count(two)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestIsConnected covers the boolean wrapper including the null-graph edge.
func TestIsConnected(t *testing.T) {
	path := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})
	split := buildGraph(t, 4, false, [][2]int{{0, 1}, {2, 3}})
	null := buildGraph(t, 0, false, nil)

	ok, err := components.IsConnected(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = components.IsConnected(split)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = components.IsConnected(null)
	assert.ErrorIs(t, err, components.ErrNullGraph)
}
