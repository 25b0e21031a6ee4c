// Package traverse shares the construction, root-selection, and frame
// plumbing between the DFS and BFS engines.
package traverse

import "iter"

// engine is the state common to both traversal drivers: the storage handle,
// the per-traversal State, the explicit root queue (as dense indices), the
// scan cursor for disconnected-graph coverage, and the single-shot latch.
type engine struct {
	storage NodeProvider
	st      *State
	roots   []int
	scan    int
	done    bool
}

// newEngine builds the Index (the only fallible step), allocates State, and
// validates any explicit roots against the index.
func newEngine(storage NodeProvider, opts ...Option) (engine, error) {
	if storage == nil {
		return engine{}, ErrNilStorage
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	idx, err := NewIndex(storage)
	if err != nil {
		return engine{}, err
	}

	roots := make([]int, 0, len(o.roots))
	for _, r := range o.roots {
		i, err := idx.IndexOf(r)
		if err != nil {
			return engine{}, err
		}
		roots = append(roots, i)
	}

	return engine{storage: storage, st: newState(idx), roots: roots}, nil
}

// nextRoot selects the next traversal root: explicit roots first, in the
// order given (already-discovered ones are skipped, not re-expanded), then
// the lowest undiscovered dense index. The scan cursor never moves backwards;
// once an index is discovered it stays discovered, so the sweep is O(V)
// across the whole traversal.
func (e *engine) nextRoot() (int, bool) {
	for len(e.roots) > 0 {
		i := e.roots[0]
		e.roots = e.roots[1:]
		if !e.st.Discovered(i) {
			return i, true
		}
	}

	for ; e.scan < e.st.Len(); e.scan++ {
		if !e.st.Discovered(e.scan) {
			return e.scan, true
		}
	}

	return 0, false
}

// frame is one explicit-stack entry: a node plus the pull-style iterator over
// its remaining successors. The stack of frames replaces native recursion so
// traversal depth is bounded by heap, not call-stack, size.
type frame struct {
	node          NodeID
	idx           int
	depth         int
	next          func() (NodeID, bool)
	stop          func()
	parentSkipped bool
}

// newFrame opens the successor sequence of node as a resumable frame.
func (e *engine) newFrame(node NodeID, idx, depth int) frame {
	next, stop := iter.Pull(e.storage.Successors(node))

	return frame{node: node, idx: idx, depth: depth, next: next, stop: stop}
}

// releaseFrames closes every pending successor iterator. Safe to call on
// frames whose stop already ran (iter.Pull stop is idempotent).
func releaseFrames(frames []frame) {
	for i := range frames {
		frames[i].stop()
	}
}
