// Package traverse implements the depth-first engine: an explicit-stack
// driver that classifies every traversed edge and streams lifecycle events
// to a caller-supplied Visitor.
package traverse

import "fmt"

// DFS is a single-shot depth-first traversal engine over one storage.
//
// Construction builds the token index and allocates fresh state; Execute
// consumes the engine. A second traversal requires a new engine (and thereby
// fresh timestamps).
type DFS struct {
	engine
}

// NewDFS prepares a depth-first traversal over storage.
//
// Without WithRoots the engine restarts from every undiscovered node in
// dense-index order, covering disconnected graphs deterministically for any
// storage whose Nodes() enumeration is deterministic.
//
// Errors:
//   - ErrNilStorage            storage is nil
//   - ErrInconsistentStorage   NodeCount disagrees with Nodes()
//   - ErrUnknownNode           an explicit root is not a live token
//
// Complexity of construction: O(V) time and memory.
func NewDFS(storage NodeProvider, opts ...Option) (*DFS, error) {
	e, err := newEngine(storage, opts...)
	if err != nil {
		return nil, err
	}

	return &DFS{engine: e}, nil
}

// State exposes the traversal state for inspection. Before Execute all
// entries are Unknown; after a halted Execute the arrays are partial.
func (d *DFS) State() *State { return d.st }

// Execute drives the traversal, invoking visit on every event.
//
// Per root the event sequence is Begin, Discover(root), then an interleaving
// of VisitEdge/Discover/Finish events in depth-first order, then End. Every
// traversed edge is reported exactly once with one of the four
// classifications, except that in undirected graphs the single edge straight
// back to a node's immediate parent is skipped unreported, and edges whose
// far endpoint already finished are skipped (they were reported from the
// other endpoint).
//
// The visitor steers the traversal: Continue proceeds, Prune abandons the
// current node's remaining successors, Halt stops the whole run (Execute
// then returns nil; inspect State for the partial picture).
//
// Errors:
//   - ErrNilVisitor     visit is nil
//   - ErrEngineConsumed second call on the same engine
//   - ErrUnknownNode    a successor token is not in the index (the storage
//     mutated mid-traversal; the engine fails fast rather than corrupt state)
//
// Complexity: O(V + E) time, O(V) memory beyond the state arrays.
func (d *DFS) Execute(visit Visitor) error {
	if visit == nil {
		return ErrNilVisitor
	}
	if d.done {
		return ErrEngineConsumed
	}
	d.done = true

	undirected := !d.storage.Directed()

	var stack []frame
	defer func() { releaseFrames(stack) }()

	for {
		rootIdx, ok := d.nextRoot()
		if !ok {
			return nil
		}
		root := d.st.idx.NodeOf(rootIdx)

		// 1. Open the root's span.
		if visit(Event{Kind: Begin, Node: root}, d.st) == Halt {
			return nil
		}

		// 2. Discover the root.
		d.st.discoverNode(rootIdx)
		switch visit(Event{Kind: Discover, Node: root}, d.st) {
		case Halt:
			return nil
		case Prune:
			// Root subtree abandoned before expansion.
			d.st.finishNode(rootIdx)
			if visit(Event{Kind: Finish, Node: root}, d.st) == Halt {
				return nil
			}
			if visit(Event{Kind: End, Node: root}, d.st) == Halt {
				return nil
			}
			continue
		}

		// 3. Explore depth-first with an explicit stack.
		stack = append(stack, d.newFrame(root, rootIdx, 0))
		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			dst, more := top.next()
			if !more {
				// 4. Successors exhausted: finish the node, drop the frame.
				top.stop()
				d.st.finishNode(top.idx)
				ev := Event{Kind: Finish, Node: top.node, Depth: top.depth}
				stack = stack[:len(stack)-1]
				if visit(ev, d.st) == Halt {
					return nil
				}
				continue
			}

			dstIdx, err := d.st.idx.IndexOf(dst)
			if err != nil {
				return fmt.Errorf("traverse: successor of node %d: %w", top.node, err)
			}

			if undirected {
				// 5. Skip exactly one occurrence of the edge back to the
				// immediate parent; a second occurrence (a parallel edge)
				// still classifies as Back below.
				if dstIdx == d.st.parent[top.idx] && !top.parentSkipped {
					top.parentSkipped = true
					continue
				}
				// 6. An already-finished endpoint means this undirected edge
				// was classified from the other side; Forward/Cross do not
				// exist in undirected graphs.
				if d.st.Finished(dstIdx) {
					continue
				}
			}

			// 7. Classify and report the edge.
			kind := d.st.classify(top.idx, dstIdx)
			srcIdx, depth := top.idx, top.depth
			ev := Event{Kind: VisitEdge, From: top.node, To: dst, Edge: kind, Depth: depth}
			switch visit(ev, d.st) {
			case Halt:
				return nil
			case Prune:
				top.stop()
				continue
			}

			if kind != EdgeTree {
				continue
			}

			// 8. Tree edge: discover the child and descend.
			d.st.parent[dstIdx] = srcIdx
			d.st.discoverNode(dstIdx)
			switch visit(Event{Kind: Discover, Node: dst, Depth: depth + 1}, d.st) {
			case Halt:
				return nil
			case Prune:
				// Child pruned before expansion: finish it in place.
				d.st.finishNode(dstIdx)
				if visit(Event{Kind: Finish, Node: dst, Depth: depth + 1}, d.st) == Halt {
					return nil
				}
				continue
			}
			stack = append(stack, d.newFrame(dst, dstIdx, depth+1))
		}

		// 9. Close the root's span.
		if visit(Event{Kind: End, Node: root}, d.st) == Halt {
			return nil
		}
	}
}
