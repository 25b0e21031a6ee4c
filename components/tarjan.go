// Package components derives connectivity partitions from the traversal
// event stream. This file implements Tarjan's strongly-connected-components
// algorithm as a consumer of the DFS events.
package components

import "github.com/katalvlaran/grafo/traverse"

// stackEntry is one open node on the candidate-SCC stack.
type stackEntry struct {
	node traverse.NodeID
	idx  int
}

// tarjan holds the algorithm's working data, separate from the engine's
// traversal state and keyed by the same dense indices.
type tarjan struct {
	idOf     []int // discovery counter value per node; 0 = unassigned
	lowOf    []int // smallest id reachable via tree and back edges
	parentOf []int // tree parent, traverse.Unknown for roots
	onStack  []bool
	stack    []stackEntry
	next     int

	components [][]traverse.NodeID
}

func newTarjan(n int) *tarjan {
	t := &tarjan{
		idOf:     make([]int, n),
		lowOf:    make([]int, n),
		parentOf: make([]int, n),
		onStack:  make([]bool, n),
		next:     1,
	}
	for i := 0; i < n; i++ {
		t.parentOf[i] = traverse.Unknown
	}

	return t
}

// Strong computes the strongly connected components of a directed storage.
//
// Components are emitted in the order their root finishes in the underlying
// DFS. Every node belongs to exactly one component; a DAG yields exactly its
// singletons, and a single directed n-cycle yields one component of size n.
// The relative order of components carries no semantic meaning.
//
// Returns ErrUndirectedGraph for undirected storages and construction errors
// from the underlying traversal.
// Complexity: O(V + E) time, O(V) memory.
func Strong(storage traverse.NodeProvider) ([][]traverse.NodeID, error) {
	if storage == nil {
		return nil, traverse.ErrNilStorage
	}
	if !storage.Directed() {
		return nil, ErrUndirectedGraph
	}

	dfs, err := traverse.NewDFS(storage)
	if err != nil {
		return nil, err
	}

	t := newTarjan(storage.NodeCount())
	if err = dfs.Execute(t.consume); err != nil {
		return nil, err
	}

	return t.components, nil
}

// consume folds one DFS event into the low-link bookkeeping.
func (t *tarjan) consume(ev traverse.Event, st *traverse.State) traverse.Flow {
	switch ev.Kind {
	case traverse.Discover:
		// 1. Open the node: fresh id, low-link bounded by itself.
		v := st.IndexOf(ev.Node)
		t.idOf[v] = t.next
		t.lowOf[v] = t.next
		t.next++
		t.onStack[v] = true
		t.stack = append(t.stack, stackEntry{node: ev.Node, idx: v})

	case traverse.VisitEdge:
		src := st.IndexOf(ev.From)
		dst := st.IndexOf(ev.To)
		switch ev.Edge {
		case traverse.EdgeTree:
			// 2. Remember the tree parent for finish-time propagation.
			t.parentOf[dst] = src
		case traverse.EdgeBack, traverse.EdgeForward, traverse.EdgeCross:
			// 3. A non-tree edge into the still-open region bounds the
			// source's low-link. The on-stack test filters edges into
			// components that already closed.
			if t.onStack[dst] && t.lowOf[dst] < t.lowOf[src] {
				t.lowOf[src] = t.lowOf[dst]
			}
		}

	case traverse.Finish:
		v := st.IndexOf(ev.Node)
		if t.idOf[v] == t.lowOf[v] {
			// 4. Component root: everything above v on the stack, v
			// inclusive, is one SCC.
			t.components = append(t.components, t.pop(v))

			return traverse.Continue
		}
		// 5. Not a root: propagate the low-link to the tree parent.
		// Guarded: a traversal root has no parent entry to fold into.
		if p := t.parentOf[v]; p != traverse.Unknown && t.lowOf[v] < t.lowOf[p] {
			t.lowOf[p] = t.lowOf[v]
		}
	}

	return traverse.Continue
}

// pop unwinds the candidate stack down to and including dense index v,
// clearing on-stack flags, and returns the component.
func (t *tarjan) pop(v int) []traverse.NodeID {
	var cc []traverse.NodeID
	for {
		n := len(t.stack) - 1
		e := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[e.idx] = false
		cc = append(cc, e.node)
		if e.idx == v {
			return cc
		}
	}
}
