// Package traverse defines the storage capability contracts consumed by the
// traversal engines.
//
// A storage backend exposes its vertices as opaque NodeID tokens. Tokens are
// unique among live nodes at any instant, but they are neither contiguous nor
// ordered, and a backend is free to reuse a token after the node carrying it
// was removed. The engines never interpret tokens; they translate them into
// dense indices once per traversal (see Index).
package traverse

import "iter"

// NodeID is an opaque vertex token assigned by a storage backend.
type NodeID int64

// EdgeID is an opaque edge identifier assigned by a storage backend.
type EdgeID int64

// NodeProvider is the minimal read-only contract a storage must satisfy for
// the traversal engines.
//
// The sequences must be finite, and Nodes must enumerate in an order that is
// stable for the duration of one traversal. No mutation of the storage is
// permitted while an engine built on it is executing.
type NodeProvider interface {
	// NodeCount reports the number of currently-live nodes.
	NodeCount() int

	// Nodes enumerates every live node token, in the backend's fixed order.
	Nodes() iter.Seq[NodeID]

	// Successors yields the outgoing neighbors of id for directed storages,
	// or all neighbors for undirected storages (each undirected edge appears
	// from both endpoints' perspective).
	Successors(id NodeID) iter.Seq[NodeID]

	// Directed reports whether edges are one-way. The engines use this for
	// edge classification and the undirected parent-edge skip.
	Directed() bool
}

// EdgeProvider extends NodeProvider for consumers that need to identify the
// concrete edge behind a neighbor relation (e.g. cycle reconstruction).
type EdgeProvider interface {
	NodeProvider

	// SuccessorsWithEdge yields each successor of id together with the ID of
	// the edge connecting them, in the same order as Successors.
	SuccessorsWithEdge(id NodeID) iter.Seq2[NodeID, EdgeID]
}
