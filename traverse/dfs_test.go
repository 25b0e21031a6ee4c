package traverse_test

import (
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/adjacency"
	"github.com/katalvlaran/grafo/traverse"
)

// buildGraph creates a List with n nodes and the given edges.
func buildGraph(n int, directed bool, edges [][2]int) (*adjacency.List, []traverse.NodeID) {
	g := adjacency.NewList(adjacency.WithDirected(directed))
	ids := make([]traverse.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddNode()
	}
	for _, e := range edges {
		if _, err := g.AddEdge(ids[e[0]], ids[e[1]]); err != nil {
			panic(err)
		}
	}

	return g, ids
}

// collect runs a full DFS and returns every emitted event.
func collect(t *testing.T, g traverse.NodeProvider, opts ...traverse.Option) ([]traverse.Event, *traverse.State) {
	t.Helper()
	dfs, err := traverse.NewDFS(g, opts...)
	require.NoError(t, err)

	var events []traverse.Event
	err = dfs.Execute(func(ev traverse.Event, _ *traverse.State) traverse.Flow {
		events = append(events, ev)

		return traverse.Continue
	})
	require.NoError(t, err)

	return events, dfs.State()
}

// countEdges tallies VisitEdge events per classification.
func countEdges(events []traverse.Event) map[traverse.EdgeKind]int {
	counts := make(map[traverse.EdgeKind]int)
	for _, ev := range events {
		if ev.Kind == traverse.VisitEdge {
			counts[ev.Edge]++
		}
	}

	return counts
}

func TestNewDFS_NilStorage(t *testing.T) {
	dfs, err := traverse.NewDFS(nil)
	assert.Nil(t, dfs)
	assert.ErrorIs(t, err, traverse.ErrNilStorage)
}

func TestNewDFS_UnknownRoot(t *testing.T) {
	g, _ := buildGraph(2, true, nil)
	dfs, err := traverse.NewDFS(g, traverse.WithRoots(traverse.NodeID(77)))
	assert.Nil(t, dfs)
	assert.ErrorIs(t, err, traverse.ErrUnknownNode)
}

func TestDFS_NullGraph_NoEvents(t *testing.T) {
	g, _ := buildGraph(0, true, nil)
	events, st := collect(t, g)
	assert.Empty(t, events)
	assert.Equal(t, 0, st.Clock())
}

func TestDFS_NilVisitor(t *testing.T) {
	g, _ := buildGraph(1, true, nil)
	dfs, err := traverse.NewDFS(g)
	require.NoError(t, err)
	assert.ErrorIs(t, dfs.Execute(nil), traverse.ErrNilVisitor)
}

func TestDFS_EngineConsumed(t *testing.T) {
	g, _ := buildGraph(1, true, nil)
	dfs, err := traverse.NewDFS(g)
	require.NoError(t, err)

	noop := func(traverse.Event, *traverse.State) traverse.Flow { return traverse.Continue }
	require.NoError(t, dfs.Execute(noop))
	assert.ErrorIs(t, dfs.Execute(noop), traverse.ErrEngineConsumed)
}

func TestDFS_Coverage(t *testing.T) {
	// Two disconnected directed fragments plus an isolated node.
	g, _ := buildGraph(6, true, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	_, st := collect(t, g)

	for i := 0; i < st.Len(); i++ {
		assert.True(t, st.Discovered(i), "node %d not discovered", i)
		assert.True(t, st.Finished(i), "node %d not finished", i)
	}
	// Clock advanced twice per node.
	assert.Equal(t, 2*st.Len(), st.Clock())
}

func TestDFS_BracketProperty(t *testing.T) {
	g, _ := buildGraph(7, true, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 4}, {4, 5}, {5, 3}, {0, 6},
	})
	_, st := collect(t, g)

	for u := 0; u < st.Len(); u++ {
		for v := u + 1; v < st.Len(); v++ {
			du, fu := st.DiscoverOf(u), st.FinishOf(u)
			dv, fv := st.DiscoverOf(v), st.FinishOf(v)
			disjoint := fu < dv || fv < du
			nested := (du < dv && fv < fu) || (dv < du && fu < fv)
			assert.True(t, disjoint || nested,
				"intervals of %d [%d,%d] and %d [%d,%d] partially overlap", u, du, fu, v, dv, fv)
		}
	}
}

func TestDFS_DirectedCycle_OneBackEdge(t *testing.T) {
	g, _ := buildGraph(3, true, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	events, _ := collect(t, g)

	counts := countEdges(events)
	assert.Equal(t, 2, counts[traverse.EdgeTree])
	assert.Equal(t, 1, counts[traverse.EdgeBack])
	assert.Zero(t, counts[traverse.EdgeForward])
	assert.Zero(t, counts[traverse.EdgeCross])
}

func TestDFS_DirectedPath_NoBackEdge(t *testing.T) {
	g, _ := buildGraph(3, true, [][2]int{{0, 1}, {1, 2}})
	events, _ := collect(t, g)

	counts := countEdges(events)
	assert.Equal(t, 2, counts[traverse.EdgeTree])
	assert.Zero(t, counts[traverse.EdgeBack])
}

func TestDFS_UndirectedPath_ParentEdgeSkipped(t *testing.T) {
	g, _ := buildGraph(3, false, [][2]int{{0, 1}, {1, 2}})
	events, _ := collect(t, g)

	counts := countEdges(events)
	assert.Equal(t, 2, counts[traverse.EdgeTree])
	assert.Zero(t, counts[traverse.EdgeBack], "parent edge misclassified as Back")
	assert.Zero(t, counts[traverse.EdgeForward])
	assert.Zero(t, counts[traverse.EdgeCross])
}

func TestDFS_UndirectedCycle_SingleBackEdge(t *testing.T) {
	g, _ := buildGraph(3, false, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	events, _ := collect(t, g)

	counts := countEdges(events)
	assert.Equal(t, 2, counts[traverse.EdgeTree])
	assert.Equal(t, 1, counts[traverse.EdgeBack])
}

func TestDFS_UndirectedParallelEdges_BackEdge(t *testing.T) {
	// A doubled undirected edge is a cycle of length 2: the first a-b
	// occurrence is the skipped parent edge, the second classifies Back.
	g, ids := buildGraph(2, false, nil)
	_, err := g.AddEdge(ids[0], ids[1])
	require.NoError(t, err)
	_, err = g.AddEdge(ids[0], ids[1])
	require.NoError(t, err)

	events, _ := collect(t, g)
	counts := countEdges(events)
	assert.Equal(t, 1, counts[traverse.EdgeTree])
	assert.Equal(t, 1, counts[traverse.EdgeBack])
}

func TestDFS_ForwardAndCrossEdges(t *testing.T) {
	// 0→1→2 plus 0→2 (forward) and the second root's 3→1 (cross).
	g, _ := buildGraph(4, true, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 1}})
	events, _ := collect(t, g)

	counts := countEdges(events)
	assert.Equal(t, 2, counts[traverse.EdgeTree])
	assert.Equal(t, 1, counts[traverse.EdgeForward])
	assert.Equal(t, 1, counts[traverse.EdgeCross])
	assert.Zero(t, counts[traverse.EdgeBack])
}

func TestDFS_EveryEdgeClassifiedOnce(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 1}, {2, 2}}
	g, _ := buildGraph(4, true, edges)
	events, _ := collect(t, g)

	total := 0
	for _, n := range countEdges(events) {
		total += n
	}
	assert.Equal(t, len(edges), total)
}

func TestDFS_DisconnectedSpans(t *testing.T) {
	// Two undirected triangles; root selection covers both in index order.
	g, ids := buildGraph(6, false, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3},
	})
	events, _ := collect(t, g)

	var begins, ends []traverse.NodeID
	for _, ev := range events {
		switch ev.Kind {
		case traverse.Begin:
			begins = append(begins, ev.Node)
		case traverse.End:
			ends = append(ends, ev.Node)
		}
	}
	assert.Equal(t, []traverse.NodeID{ids[0], ids[3]}, begins)
	assert.Equal(t, begins, ends)
}

func TestDFS_ExplicitRoots_Order(t *testing.T) {
	g, ids := buildGraph(4, true, [][2]int{{2, 3}})
	events, _ := collect(t, g, traverse.WithRoots(ids[2], ids[1]))

	var discovered []traverse.NodeID
	for _, ev := range events {
		if ev.Kind == traverse.Discover {
			discovered = append(discovered, ev.Node)
		}
	}
	// Explicit roots first (2 drags in 3), then index-order sweep covers 0.
	assert.Equal(t, []traverse.NodeID{ids[2], ids[3], ids[1], ids[0]}, discovered)
}

func TestDFS_Prune_SkipsSubtree(t *testing.T) {
	g, ids := buildGraph(4, true, [][2]int{{0, 1}, {1, 2}, {0, 3}})
	dfs, err := traverse.NewDFS(g)
	require.NoError(t, err)

	var discovered []traverse.NodeID
	err = dfs.Execute(func(ev traverse.Event, _ *traverse.State) traverse.Flow {
		if ev.Kind == traverse.Discover {
			discovered = append(discovered, ev.Node)
			if ev.Node == ids[1] {
				return traverse.Prune
			}
		}

		return traverse.Continue
	})
	require.NoError(t, err)

	// 1 is pruned before expansion, so 2 is only reached as its own root,
	// after 3 completes 0's subtree.
	assert.Equal(t, []traverse.NodeID{ids[0], ids[1], ids[3], ids[2]}, discovered)
	assert.True(t, dfs.State().Finished(1))
}

func TestDFS_Halt_StopsCleanly(t *testing.T) {
	g, ids := buildGraph(3, true, [][2]int{{0, 1}, {1, 2}})
	dfs, err := traverse.NewDFS(g)
	require.NoError(t, err)

	var events []traverse.Event
	err = dfs.Execute(func(ev traverse.Event, _ *traverse.State) traverse.Flow {
		events = append(events, ev)
		if ev.Kind == traverse.Discover && ev.Node == ids[1] {
			return traverse.Halt
		}

		return traverse.Continue
	})
	require.NoError(t, err)

	require.Len(t, events, 4) // Begin, Discover(0), VisitEdge, Discover(1)
	st := dfs.State()
	assert.True(t, st.Discovered(1))
	assert.False(t, st.Finished(1))
	assert.False(t, st.Discovered(2), "halted traversal must not reach further")
}

func TestDFS_DeepChain_NoStackOverflow(t *testing.T) {
	const n = 200_000
	g := adjacency.NewList(adjacency.WithDirected(true))
	ids := make([]traverse.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode()
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.AddEdge(ids[i], ids[i+1]); err != nil {
			t.Fatal(err)
		}
	}

	_, st := collect(t, g)
	assert.Equal(t, 2*n, st.Clock())
	assert.Equal(t, n-1, st.DiscoverOf(st.IndexOf(ids[n-1]))-st.DiscoverOf(st.IndexOf(ids[0])))
}

// phantom yields a successor token that was never enumerated, simulating a
// storage mutated between index construction and execution.
type phantom struct {
	*adjacency.List
}

func (p phantom) Successors(traverse.NodeID) iter.Seq[traverse.NodeID] {
	return func(yield func(traverse.NodeID) bool) {
		yield(traverse.NodeID(941))
	}
}

func TestDFS_MutatedStorage_FailsFast(t *testing.T) {
	g, _ := buildGraph(1, true, nil)
	dfs, err := traverse.NewDFS(phantom{g})
	require.NoError(t, err)

	err = dfs.Execute(func(traverse.Event, *traverse.State) traverse.Flow {
		return traverse.Continue
	})
	assert.ErrorIs(t, err, traverse.ErrUnknownNode)
}

func TestDFS_ConcurrentTraversalsShareStorage(t *testing.T) {
	g, _ := buildGraph(50, true, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dfs, err := traverse.NewDFS(g)
			assert.NoError(t, err)
			assert.NoError(t, dfs.Execute(func(traverse.Event, *traverse.State) traverse.Flow {
				return traverse.Continue
			}))
			assert.Equal(t, 100, dfs.State().Clock())
		}()
	}
	wg.Wait()
}
