// Package grafo is a storage-agnostic graph traversal toolkit: one
// depth-first/breadth-first engine core, and the classic structure
// algorithms rebuilt as consumers of its event stream.
//
// 🚀 What is grafo?
//
//	A pure-Go library that separates graph storage from graph algorithms:
//		• Capability contracts: any backend exposing node count, lazy node
//		  and successor sequences, and directedness can be traversed
//		• Engines: explicit-stack DFS with Tree/Back/Forward/Cross edge
//		  classification, queue-based BFS with shortest-hop discovery
//		• Event stream: Begin/Discover/VisitEdge/Finish/End with a
//		  Continue/Prune/Halt control signal returned per event
//		• Algorithms: Tarjan SCC, cycle detection, topological sort,
//		  connected & weakly-connected components
//		• Reference backend: adjacency list with recycled node tokens
//
// ✨ Why choose grafo?
//
//   - No recursion – traversal depth bounded by heap, not call stack
//   - Dense-index state – tokens are remapped once per traversal, so all
//     per-node state lives in flat arrays
//   - Deterministic – stable storage enumeration ⇒ reproducible traversals
//   - Pure Go – no cgo, a single test-only dependency
//
// Packages:
//
//	traverse/   — contracts, index, state, DFS & BFS engines, events
//	adjacency/  — reference adjacency-list storage backend
//	components/ — connected, weakly-connected, strongly-connected components
//	cycle/      — cycle detection via the Back-edge signal
//	toposort/   — topological sort with cycle reporting
//
// Quick ASCII example:
//
//	    a ──▶ b ──▶ c
//	    ▲           │
//	    └───────────┘
//
//	One DFS over this triangle feeds three different consumers: the cycle
//	detector halts at the single Back edge c→a, Tarjan folds all three
//	nodes into one component, and toposort reports ErrNotDAG.
package grafo
