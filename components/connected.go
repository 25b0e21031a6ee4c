// Package components derives connectivity partitions from the traversal
// event stream. This file covers connected and weakly-connected components.
package components

import (
	"errors"

	"github.com/katalvlaran/grafo/traverse"
)

// Sentinel errors for component analysis.
var (
	// ErrDirectedGraph is returned by Connected for directed storages;
	// use Weak (or Strong) there instead.
	ErrDirectedGraph = errors.New("components: undirected graph required")

	// ErrUndirectedGraph is returned by Strong for undirected storages,
	// where strong and plain connectivity coincide.
	ErrUndirectedGraph = errors.New("components: directed graph required")

	// ErrNullGraph is returned by IsConnected: connectivity is undefined
	// for a graph with no nodes.
	ErrNullGraph = errors.New("components: connectivity undefined for null graph")
)

// Connected partitions an undirected storage into its connected components.
// Each component lists its nodes in discovery order; components appear in
// root-selection order (lowest dense index first), so output is
// deterministic for a deterministic storage enumeration.
//
// Returns ErrDirectedGraph for directed storages and construction errors
// from the underlying traversal.
// Complexity: O(V + E) time, O(V) memory.
func Connected(storage traverse.NodeProvider) ([][]traverse.NodeID, error) {
	if storage == nil {
		return nil, traverse.ErrNilStorage
	}
	if storage.Directed() {
		return nil, ErrDirectedGraph
	}

	return spans(storage)
}

// Weak partitions a directed storage into its weakly-connected components by
// traversing an undirected view (successors unioned with predecessors) over
// the same storage. For an undirected storage it degrades to Connected.
// Complexity: O(V + E) time and memory.
func Weak(storage traverse.NodeProvider) ([][]traverse.NodeID, error) {
	if storage == nil {
		return nil, traverse.ErrNilStorage
	}
	if !storage.Directed() {
		return spans(storage)
	}

	return spans(traverse.NewUndirectedView(storage))
}

// Count reports the number of connected components of an undirected storage.
func Count(storage traverse.NodeProvider) (int, error) {
	ccs, err := Connected(storage)
	if err != nil {
		return 0, err
	}

	return len(ccs), nil
}

// IsConnected reports whether an undirected storage forms one component.
// Returns ErrNullGraph for an empty storage.
func IsConnected(storage traverse.NodeProvider) (bool, error) {
	if storage != nil && storage.NodeCount() == 0 {
		return false, ErrNullGraph
	}

	n, err := Count(storage)
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// spans collects one component per Begin..End span of a full DFS run: every
// node discovered inside a span belongs to that span's component.
func spans(storage traverse.NodeProvider) ([][]traverse.NodeID, error) {
	dfs, err := traverse.NewDFS(storage)
	if err != nil {
		return nil, err
	}

	var (
		ccs     [][]traverse.NodeID
		current []traverse.NodeID
	)
	err = dfs.Execute(func(ev traverse.Event, _ *traverse.State) traverse.Flow {
		switch ev.Kind {
		case traverse.Discover:
			current = append(current, ev.Node)
		case traverse.End:
			ccs = append(ccs, current)
			current = nil
		}

		return traverse.Continue
	})
	if err != nil {
		return nil, err
	}

	return ccs, nil
}
