// Package traverse implements the breadth-first engine: the queue-based
// counterpart of DFS, sharing the same state, event, and control contract.
package traverse

import "fmt"

// BFS is a single-shot breadth-first traversal engine over one storage.
//
// BFS shares the discovery/finish/event contract of DFS but substitutes a
// FIFO queue for the stack and does not classify edges: VisitEdge events
// carry EdgeNone. Finish is emitted when a node's successor list is
// exhausted, mirroring DFS for uniform consumer code, but carries no
// ordering guarantee beyond "after its earlier-discovered neighbors".
type BFS struct {
	engine
}

// NewBFS prepares a breadth-first traversal over storage. Construction and
// root-selection semantics match NewDFS.
//
// Errors: ErrNilStorage, ErrInconsistentStorage, ErrUnknownNode.
func NewBFS(storage NodeProvider, opts ...Option) (*BFS, error) {
	e, err := newEngine(storage, opts...)
	if err != nil {
		return nil, err
	}

	return &BFS{engine: e}, nil
}

// State exposes the traversal state for inspection.
func (b *BFS) State() *State { return b.st }

// Execute drives the traversal, invoking visit on every event.
//
// Discovery order is by increasing hop count from each root, so Depth on
// Discover events is the unweighted shortest-hop distance within the root's
// span. The Visitor contract (Continue/Prune/Halt) matches DFS.
//
// Errors: ErrNilVisitor, ErrEngineConsumed, ErrUnknownNode (mid-traversal
// storage mutation).
//
// Complexity: O(V + E) time, O(V) memory beyond the state arrays.
func (b *BFS) Execute(visit Visitor) error {
	if visit == nil {
		return ErrNilVisitor
	}
	if b.done {
		return ErrEngineConsumed
	}
	b.done = true

	undirected := !b.storage.Directed()

	var queue []frame
	defer func() { releaseFrames(queue) }()

	for {
		rootIdx, ok := b.nextRoot()
		if !ok {
			return nil
		}
		root := b.st.idx.NodeOf(rootIdx)

		// 1. Open the root's span and discover the root.
		if visit(Event{Kind: Begin, Node: root}, b.st) == Halt {
			return nil
		}
		b.st.discoverNode(rootIdx)
		switch visit(Event{Kind: Discover, Node: root}, b.st) {
		case Halt:
			return nil
		case Prune:
			b.st.finishNode(rootIdx)
			if visit(Event{Kind: Finish, Node: root}, b.st) == Halt {
				return nil
			}
			if visit(Event{Kind: End, Node: root}, b.st) == Halt {
				return nil
			}
			continue
		}

		// 2. Expand frames first-in first-out.
		queue = append(queue, b.newFrame(root, rootIdx, 0))
		for len(queue) > 0 {
			head := &queue[0]

			dst, more := head.next()
			if !more {
				// 3. Successor list exhausted: finish and dequeue.
				head.stop()
				b.st.finishNode(head.idx)
				ev := Event{Kind: Finish, Node: head.node, Depth: head.depth}
				queue = queue[1:]
				if visit(ev, b.st) == Halt {
					return nil
				}
				continue
			}

			dstIdx, err := b.st.idx.IndexOf(dst)
			if err != nil {
				return fmt.Errorf("traverse: successor of node %d: %w", head.node, err)
			}

			if undirected {
				// 4. Same skip rules as DFS, so each undirected edge is
				// reported from exactly one endpoint.
				if dstIdx == b.st.parent[head.idx] && !head.parentSkipped {
					head.parentSkipped = true
					continue
				}
				if b.st.Finished(dstIdx) {
					continue
				}
			}

			// 5. Report the edge, unclassified.
			ev := Event{Kind: VisitEdge, From: head.node, To: dst, Edge: EdgeNone, Depth: head.depth}
			switch visit(ev, b.st) {
			case Halt:
				return nil
			case Prune:
				head.stop()
				continue
			}

			if b.st.Discovered(dstIdx) {
				continue
			}

			// 6. First sighting: discover at the next hop and enqueue.
			b.st.parent[dstIdx] = head.idx
			b.st.discoverNode(dstIdx)
			switch visit(Event{Kind: Discover, Node: dst, Depth: head.depth + 1}, b.st) {
			case Halt:
				return nil
			case Prune:
				b.st.finishNode(dstIdx)
				if visit(Event{Kind: Finish, Node: dst, Depth: head.depth + 1}, b.st) == Halt {
					return nil
				}
				continue
			}
			queue = append(queue, b.newFrame(dst, dstIdx, head.depth+1))
		}

		// 7. Close the root's span.
		if visit(Event{Kind: End, Node: root}, b.st) == Halt {
			return nil
		}
	}
}
