// Package toposort linearizes directed acyclic graphs.
//
// The sort is one DFS run: nodes are collected as they finish, and the
// collected sequence is reversed, so for every edge u→v the finish time of u
// exceeds that of v and u precedes v in the result. A Back edge observed
// during the run proves a cycle; the traversal halts immediately and
// ErrNotDAG is returned together with whatever partial order accumulated
// (diagnostic only — a partial order from a failed sort is not a valid
// topological order).
//
// Complexity:
//
//   - Time O(V+E), Memory O(V).
package toposort

import (
	"errors"

	"github.com/katalvlaran/grafo/traverse"
)

// Sentinel errors for topological sorting.
var (
	// ErrNotDAG indicates the graph contains a cycle. This is an expected,
	// recoverable outcome for callers probing arbitrary graphs, not a bug.
	ErrNotDAG = errors.New("toposort: graph contains a cycle")

	// ErrUndirectedGraph is returned for undirected storages, whose edges
	// admit no topological order.
	ErrUndirectedGraph = errors.New("toposort: directed graph required")
)

// Sort returns the nodes of a directed acyclic storage in topological
// order: for every edge u→v, u appears strictly before v.
//
// On a cyclic graph Sort returns (partial, ErrNotDAG) where partial holds
// the reversed finish order accumulated before the back edge was seen.
// Construction errors of the underlying traversal are passed through.
func Sort(storage traverse.NodeProvider) ([]traverse.NodeID, error) {
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

	var (
		order  = make([]traverse.NodeID, 0, storage.NodeCount())
		cyclic bool
	)
	err = dfs.Execute(func(ev traverse.Event, _ *traverse.State) traverse.Flow {
		switch {
		case ev.Kind == traverse.VisitEdge && ev.Edge == traverse.EdgeBack:
			cyclic = true

			return traverse.Halt
		case ev.Kind == traverse.Finish:
			order = append(order, ev.Node)
		}

		return traverse.Continue
	})
	if err != nil {
		return nil, err
	}

	// Reverse the finish order in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	if cyclic {
		return order, ErrNotDAG
	}

	return order, nil
}
