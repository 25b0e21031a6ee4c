// Package traverse is the storage-agnostic traversal core of grafo:
// depth-first and breadth-first engines that stream lifecycle events over
// any storage satisfying the NodeProvider contract.
//
// What:
//
//   - NodeProvider / EdgeProvider: the minimal read contract a storage
//     supplies (node count, lazy node and successor sequences, directedness).
//   - Index: per-traversal bijection between sparse node tokens and dense
//     [0,n) indices, so state lives in O(1)-indexed arrays, not hash maps.
//   - State: discovery/finish timestamps, parent links, logical clock.
//   - DFS: explicit-stack depth-first driver with full edge classification
//     (Tree, Back, Forward, Cross) and deterministic multi-root coverage of
//     disconnected graphs.
//   - BFS: queue-based driver sharing the same event and control contract,
//     discovering nodes in shortest-hop order.
//   - UndirectedView: direction-erasing adapter for weak-connectivity work.
//
// Why:
//   - One traversal core, many consumers: strongly-connected components,
//     cycle detection, topological sort, and connectivity all reduce to
//     reacting to this event stream.
//   - The stack is explicit, never native recursion: traversal depth is
//     bounded by heap size, so a million-node path graph traverses without
//     recursion-limit failures.
//
// Event & control model:
//
//   - Events: Begin, Discover, VisitEdge{From,To,Edge}, Finish, End.
//   - The Visitor returns Continue, Prune (abandon the current node's
//     remaining successors), or Halt (stop the whole traversal cleanly and
//     inspect partial State).
//
// Guarantees (full, non-halted run):
//
//   - Every node is discovered and finished exactly once.
//   - Discovery/finish intervals of any two nodes are disjoint or nested,
//     never partially overlapping.
//   - Every traversed edge receives exactly one classification; in
//     undirected graphs the edge straight back to the immediate parent is
//     skipped, not misreported as Back.
//
// Errors:
//
//   - ErrNilStorage, ErrNilVisitor      invalid inputs
//   - ErrInconsistentStorage            NodeCount vs. enumeration mismatch
//   - ErrUnknownNode                    token absent from the built index
//   - ErrEngineConsumed                 engines are single-shot
//
// Complexity:
//
//   - DFS/BFS: Time O(V+E), Memory O(V).
//
// Engines are synchronous and single-threaded; concurrent traversals over
// the same storage require the storage itself to be read-safe.
package traverse
