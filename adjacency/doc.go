// Package adjacency implements the reference in-memory storage backend for
// the traversal engines: a directed or undirected adjacency list whose node
// tokens are recycled through a free list.
//
// What:
//
//   - List: AddNode/RemoveNode/AddEdge mutation plus the full
//     traverse.EdgeProvider read contract (NodeCount, Nodes, Successors,
//     SuccessorsWithEdge, Directed).
//   - Tokens are sparse and reusable: removing a node frees its token for a
//     later AddNode. Traversals absorb this through their per-run index;
//     holding tokens across mutation is the caller's risk.
//   - Enumeration is by ascending token, so traversal output over an
//     unmutated List is deterministic.
//
// Why:
//   - The engines in package traverse are storage-agnostic; this backend is
//     the simplest complete implementation of their contract, and the one
//     the test suites are written against.
//
// Errors:
//
//   - ErrNodeNotFound  an operation referenced a non-live node
//
// Complexity:
//
//   - AddNode/AddEdge O(1) amortized; RemoveNode O(V+E); reads O(degree).
//
// A List is not safe for concurrent mutation. Once mutation stops it may be
// read from any number of goroutines, which is what the engines require.
package adjacency
