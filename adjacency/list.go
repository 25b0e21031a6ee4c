// Package adjacency provides the reference adjacency-list storage backend.
// This file implements the List type: construction, mutation, and the
// traverse provider contract.
package adjacency

import (
	"errors"
	"iter"

	"github.com/katalvlaran/grafo/traverse"
)

// Sentinel errors for storage operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-live node.
	ErrNodeNotFound = errors.New("adjacency: node not found")
)

// Option configures a List before first use.
type Option func(*List)

// WithDirected sets edge directedness (true = directed, false = undirected).
// Lists are undirected by default.
func WithDirected(directed bool) Option {
	return func(l *List) { l.directed = directed }
}

// halfEdge is one adjacency entry: the far endpoint plus the edge identity.
type halfEdge struct {
	to traverse.NodeID
	id traverse.EdgeID
}

// slot holds one node's liveness flag and outgoing adjacency.
type slot struct {
	live bool
	out  []halfEdge
}

// List is an in-memory adjacency-list graph.
//
// Node tokens index into the slot table and are recycled through a free list
// after removal, so live tokens are sparse and a token observed once may
// later identify a different node — exactly the token contract the traversal
// Index is built to absorb. Enumeration is by ascending token, which makes
// every traversal over an unmutated List deterministic.
//
// A List is not safe for concurrent mutation; concurrent read-only use
// (e.g. independent traversals) is safe once mutation has stopped.
type List struct {
	directed bool
	slots    []slot
	free     []int
	live     int
	nextEdge traverse.EdgeID
}

// NewList creates an empty List with the given options.
// Complexity: O(1).
func NewList(opts ...Option) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddNode inserts a fresh node and returns its token, preferring a recycled
// token over growing the slot table.
// Complexity: O(1) amortized.
func (l *List) AddNode() traverse.NodeID {
	l.live++

	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[i] = slot{live: true}

		return traverse.NodeID(i)
	}

	l.slots = append(l.slots, slot{live: true})

	return traverse.NodeID(len(l.slots) - 1)
}

// HasNode reports whether id is a live token.
func (l *List) HasNode(id traverse.NodeID) bool {
	i := int(id)

	return i >= 0 && i < len(l.slots) && l.slots[i].live
}

// RemoveNode deletes a node, all its incident edges, and recycles its token.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(V + E) (incoming edges are found by scanning).
func (l *List) RemoveNode(id traverse.NodeID) error {
	if !l.HasNode(id) {
		return ErrNodeNotFound
	}

	// Drop edges pointing at the node from every other slot.
	for i := range l.slots {
		if !l.slots[i].live || i == int(id) {
			continue
		}
		kept := l.slots[i].out[:0]
		for _, he := range l.slots[i].out {
			if he.to != id {
				kept = append(kept, he)
			}
		}
		l.slots[i].out = kept
	}

	l.slots[int(id)] = slot{}
	l.free = append(l.free, int(id))
	l.live--

	return nil
}

// AddEdge connects from→to and returns the new edge's ID. For undirected
// lists the edge is registered on both endpoints under the same EdgeID
// (a self-loop is registered once). Parallel edges are permitted and carry
// distinct IDs.
// Returns ErrNodeNotFound if either endpoint is not live.
// Complexity: O(1) amortized.
func (l *List) AddEdge(from, to traverse.NodeID) (traverse.EdgeID, error) {
	if !l.HasNode(from) || !l.HasNode(to) {
		return 0, ErrNodeNotFound
	}

	id := l.nextEdge
	l.nextEdge++

	l.slots[int(from)].out = append(l.slots[int(from)].out, halfEdge{to: to, id: id})
	if !l.directed && from != to {
		l.slots[int(to)].out = append(l.slots[int(to)].out, halfEdge{to: from, id: id})
	}

	return id, nil
}

// NodeCount reports the number of live nodes.
func (l *List) NodeCount() int { return l.live }

// EdgeCount reports the number of live edges. Removing a node drops its
// incident edges; edge IDs are never reused.
func (l *List) EdgeCount() int {
	total := 0
	for i := range l.slots {
		total += len(l.slots[i].out)
	}
	if !l.directed {
		// Mirrored halves count each non-loop edge twice.
		loops := 0
		for i := range l.slots {
			for _, he := range l.slots[i].out {
				if he.to == traverse.NodeID(i) {
					loops++
				}
			}
		}

		return (total-loops)/2 + loops
	}

	return total
}

// Nodes enumerates live tokens in ascending order.
func (l *List) Nodes() iter.Seq[traverse.NodeID] {
	return func(yield func(traverse.NodeID) bool) {
		for i := range l.slots {
			if l.slots[i].live && !yield(traverse.NodeID(i)) {
				return
			}
		}
	}
}

// Successors yields the far endpoints of id's adjacency, in insertion order.
// A dead token yields nothing.
func (l *List) Successors(id traverse.NodeID) iter.Seq[traverse.NodeID] {
	return func(yield func(traverse.NodeID) bool) {
		if !l.HasNode(id) {
			return
		}
		for _, he := range l.slots[int(id)].out {
			if !yield(he.to) {
				return
			}
		}
	}
}

// SuccessorsWithEdge yields each successor together with its edge's ID.
func (l *List) SuccessorsWithEdge(id traverse.NodeID) iter.Seq2[traverse.NodeID, traverse.EdgeID] {
	return func(yield func(traverse.NodeID, traverse.EdgeID) bool) {
		if !l.HasNode(id) {
			return
		}
		for _, he := range l.slots[int(id)].out {
			if !yield(he.to, he.id) {
				return
			}
		}
	}
}

// Directed reports whether edges are one-way.
func (l *List) Directed() bool { return l.directed }
