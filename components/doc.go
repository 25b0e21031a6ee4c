// Package components partitions graphs into connectivity classes by
// consuming the traversal event stream of package traverse.
//
// What:
//
//   - Connected: components of an undirected storage, one per Begin..End
//     span of a full DFS run.
//   - Weak: weakly-connected components of a directed storage, computed by
//     traversing a direction-erasing view; the algorithm itself is unchanged.
//   - Strong: Tarjan's strongly-connected components over the DFS event
//     stream — Discover assigns ids and low-links, non-tree edges into the
//     open region fold low-links, Finish closes a component exactly when a
//     node's low-link equals its own id.
//   - Count / IsConnected: convenience queries over Connected.
//
// Guarantees:
//
//   - Every returned partition covers the node set exactly: no overlaps, no
//     omissions. A DAG's strong components are its singletons; a single
//     directed n-cycle is one component of size n.
//   - Output order is deterministic for a deterministic storage enumeration
//     but carries no semantic meaning.
//
// Errors:
//
//   - ErrDirectedGraph    Connected on a directed storage
//   - ErrUndirectedGraph  Strong on an undirected storage
//   - ErrNullGraph        IsConnected on an empty storage
//
// Complexity:
//
//   - All operations: Time O(V+E), Memory O(V).
package components
