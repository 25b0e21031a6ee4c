// Package traverse translates sparse node tokens into dense indices.
package traverse

import "fmt"

// Index is a bijection between the storage's live node tokens and the dense
// indices [0, Len()) used to size per-traversal state arrays.
//
// An Index is built once per traversal and is valid only while the storage
// stays unmutated; tokens added or removed afterwards are out of contract.
type Index struct {
	nodeOf  []NodeID       // dense index → token
	indexOf map[NodeID]int // token → dense index
}

// NewIndex enumerates storage.Nodes() once, assigning dense indices in
// enumeration order.
//
// Returns ErrInconsistentStorage if the enumeration disagrees with
// storage.NodeCount() or yields a duplicate token.
// Complexity: O(V) time and memory.
func NewIndex(storage NodeProvider) (*Index, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}

	count := storage.NodeCount()
	x := &Index{
		nodeOf:  make([]NodeID, 0, count),
		indexOf: make(map[NodeID]int, count),
	}

	for node := range storage.Nodes() {
		if _, dup := x.indexOf[node]; dup {
			return nil, fmt.Errorf("%w: duplicate token %d", ErrInconsistentStorage, node)
		}
		x.indexOf[node] = len(x.nodeOf)
		x.nodeOf = append(x.nodeOf, node)
	}

	if len(x.nodeOf) != count {
		return nil, fmt.Errorf("%w: reported %d, enumerated %d",
			ErrInconsistentStorage, count, len(x.nodeOf))
	}

	return x, nil
}

// Len reports the number of indexed nodes.
func (x *Index) Len() int { return len(x.nodeOf) }

// IndexOf returns the dense index of token n.
// Returns ErrUnknownNode if n was not present at build time; this means the
// storage mutated between index construction and the lookup.
// Complexity: O(1) amortized.
func (x *Index) IndexOf(n NodeID) (int, error) {
	i, ok := x.indexOf[n]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, n)
	}

	return i, nil
}

// NodeOf returns the token at dense index i.
// It panics if i is outside [0, Len()); dense indices originate from this
// Index, so an out-of-range value is a programming error, not input error.
// Complexity: O(1).
func (x *Index) NodeOf(i int) NodeID { return x.nodeOf[i] }
