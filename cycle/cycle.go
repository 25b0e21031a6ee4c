// Package cycle detects cycles through the DFS Back-edge signal.
//
// A single DFS run is started; the first Back edge proves a cycle, and the
// detector halts the traversal immediately instead of completing it. For
// undirected graphs the engine's parent-edge skip already guarantees that a
// lone edge between two nodes is never misreported as a cycle, so the
// detector needs no undirected special-casing of its own.
//
// Complexity:
//
//   - Time O(V+E) worst case, typically far less (halts at first back edge).
//   - Memory O(V).
package cycle

import "github.com/katalvlaran/grafo/traverse"

// Cycle describes one detected cycle.
type Cycle struct {
	// From and To are the endpoints of the closing back edge: To is an
	// ancestor of From in the DFS tree.
	From, To traverse.NodeID

	// Nodes lists the cycle in traversal order, starting at To and ending
	// at From; the back edge From→To closes it. A self-loop yields a single
	// node.
	Nodes []traverse.NodeID

	// Edges lists the edge IDs along Nodes plus the closing edge, populated
	// only when the storage implements traverse.EdgeProvider. Each listed ID
	// is distinct: a cycle never traverses one physical edge twice, so for
	// parallel edges a repeated node pair resolves to a different edge.
	Edges []traverse.EdgeID
}

// Len reports the number of nodes on the cycle.
func (c *Cycle) Len() int { return len(c.Nodes) }

// Detect runs a DFS over storage and returns the first cycle found, or nil
// if the traversal completes without observing a Back edge.
//
// Construction errors of the underlying traversal are passed through
// (ErrNilStorage, ErrInconsistentStorage, ErrUnknownNode).
func Detect(storage traverse.NodeProvider) (*Cycle, error) {
	dfs, err := traverse.NewDFS(storage)
	if err != nil {
		return nil, err
	}

	var found *Cycle
	err = dfs.Execute(func(ev traverse.Event, st *traverse.State) traverse.Flow {
		if ev.Kind != traverse.VisitEdge || ev.Edge != traverse.EdgeBack {
			return traverse.Continue
		}

		found = &Cycle{
			From:  ev.From,
			To:    ev.To,
			Nodes: walk(st, ev.From, ev.To),
		}

		return traverse.Halt
	})
	if err != nil {
		return nil, err
	}

	if found != nil {
		found.Edges = edgeIDs(storage, found.Nodes)
	}

	return found, nil
}

// Has reports whether storage contains at least one cycle.
func Has(storage traverse.NodeProvider) (bool, error) {
	c, err := Detect(storage)
	if err != nil {
		return false, err
	}

	return c != nil, nil
}

// walk reconstructs the cycle's node sequence by climbing parent links from
// the back edge's source up to its destination, then reversing: the result
// runs To → ... → From along tree edges.
func walk(st *traverse.State, from, to traverse.NodeID) []traverse.NodeID {
	idx := st.Index()
	toIdx := st.IndexOf(to)

	var rev []traverse.NodeID
	for i := st.IndexOf(from); ; i = st.ParentOf(i) {
		rev = append(rev, idx.NodeOf(i))
		if i == toIdx {
			break
		}
	}

	nodes := make([]traverse.NodeID, len(rev))
	for i := range rev {
		nodes[i] = rev[len(rev)-1-i]
	}

	return nodes
}

// edgeIDs resolves the edge along each consecutive node pair, including the
// closing pair, when the storage can identify edges. Returns nil otherwise.
// An ID already claimed by an earlier pair is passed over, so the closing
// half of a parallel-edge cycle resolves to the other physical edge.
func edgeIDs(storage traverse.NodeProvider, nodes []traverse.NodeID) []traverse.EdgeID {
	ep, ok := storage.(traverse.EdgeProvider)
	if !ok {
		return nil
	}

	used := make(map[traverse.EdgeID]bool, len(nodes))
	ids := make([]traverse.EdgeID, 0, len(nodes))
	for i := range nodes {
		from, to := nodes[i], nodes[(i+1)%len(nodes)]
		for dst, id := range ep.SuccessorsWithEdge(from) {
			if dst == to && !used[id] {
				used[id] = true
				ids = append(ids, id)
				break
			}
		}
	}

	return ids
}
