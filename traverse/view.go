// Package traverse offers an undirected view over a directed storage, used
// by weakly-connected-component analysis.
package traverse

import "iter"

// UndirectedView presents a directed storage as undirected: the successors
// of a node are the union of its out- and in-neighbors in the base storage,
// deduplicated, with each edge visible from both endpoints.
//
// The adjacency union is materialized once at construction by a single sweep
// of the base storage; the view must not outlive the storage snapshot it was
// built from. The base storage is never mutated.
type UndirectedView struct {
	base NodeProvider
	adj  map[NodeID][]NodeID
}

// NewUndirectedView sweeps storage once and records, per node, the merged
// neighbor list in first-encounter order (own successors in enumeration
// order, then reverse edges as their sources are enumerated), so a
// deterministic base enumeration yields a deterministic view.
//
// Complexity: O(V + E) time and memory.
func NewUndirectedView(storage NodeProvider) *UndirectedView {
	v := &UndirectedView{
		base: storage,
		adj:  make(map[NodeID][]NodeID, storage.NodeCount()),
	}

	seen := make(map[NodeID]map[NodeID]struct{}, storage.NodeCount())
	link := func(from, to NodeID) {
		bucket, ok := seen[from]
		if !ok {
			bucket = make(map[NodeID]struct{})
			seen[from] = bucket
		}
		if _, dup := bucket[to]; dup {
			return
		}
		bucket[to] = struct{}{}
		v.adj[from] = append(v.adj[from], to)
	}

	for src := range storage.Nodes() {
		for dst := range storage.Successors(src) {
			link(src, dst)
			if src != dst {
				link(dst, src)
			}
		}
	}

	return v
}

// NodeCount reports the base storage's live node count.
func (v *UndirectedView) NodeCount() int { return v.base.NodeCount() }

// Nodes enumerates the base storage's tokens in its order.
func (v *UndirectedView) Nodes() iter.Seq[NodeID] { return v.base.Nodes() }

// Successors yields the merged neighbors of id.
func (v *UndirectedView) Successors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, n := range v.adj[id] {
			if !yield(n) {
				return
			}
		}
	}
}

// Directed reports false: the view erases edge direction.
func (v *UndirectedView) Directed() bool { return false }
