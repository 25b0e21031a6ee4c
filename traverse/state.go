// Package traverse tracks per-traversal timestamps and parent links.
package traverse

// Unknown is the sentinel for state entries that have not been assigned:
// a discovery or finish time of a node not yet reached, or the parent of a
// traversal root.
const Unknown = -1

// State holds the mutable per-traversal arrays, indexed by dense index, plus
// the monotonically increasing logical clock. It is owned and mutated
// exclusively by the executing engine; visitors receive it as a read-only
// handle and must use only the query methods.
type State struct {
	idx      *Index
	clock    int
	discover []int
	finish   []int
	parent   []int
}

// newState allocates arrays sized to the index, every entry Unknown.
func newState(idx *Index) *State {
	n := idx.Len()
	st := &State{
		idx:      idx,
		discover: make([]int, n),
		finish:   make([]int, n),
		parent:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		st.discover[i] = Unknown
		st.finish[i] = Unknown
		st.parent[i] = Unknown
	}

	return st
}

// Len reports the number of nodes covered by this traversal.
func (s *State) Len() int { return s.idx.Len() }

// Clock reports the current logical time. It advances once per discovery and
// once per finish.
func (s *State) Clock() int { return s.clock }

// Index returns the token↔dense-index bijection backing this traversal.
func (s *State) Index() *Index { return s.idx }

// IndexOf returns the dense index of token n, or Unknown if n was not
// present when the index was built. Visitors may use it to key their own
// per-node arrays off event payloads.
func (s *State) IndexOf(n NodeID) int {
	i, ok := s.idx.indexOf[n]
	if !ok {
		return Unknown
	}

	return i
}

// DiscoverOf reports the discovery time of dense index i, or Unknown.
func (s *State) DiscoverOf(i int) int { return s.discover[i] }

// FinishOf reports the finish time of dense index i, or Unknown.
func (s *State) FinishOf(i int) int { return s.finish[i] }

// ParentOf reports the dense index of the node that discovered i via a tree
// edge, or Unknown for traversal roots and unreached nodes.
func (s *State) ParentOf(i int) int { return s.parent[i] }

// Discovered reports whether dense index i has been visited.
func (s *State) Discovered(i int) bool { return s.discover[i] != Unknown }

// Finished reports whether the subtree of dense index i is fully explored.
func (s *State) Finished(i int) bool { return s.finish[i] != Unknown }

// discoverNode advances the clock and stamps the discovery time of i.
func (s *State) discoverNode(i int) {
	s.clock++
	s.discover[i] = s.clock
}

// finishNode advances the clock and stamps the finish time of i.
func (s *State) finishNode(i int) {
	s.clock++
	s.finish[i] = s.clock
}

// classify types the edge (src, dst) by dense index, per the timestamps at
// the moment of traversal.
func (s *State) classify(src, dst int) EdgeKind {
	switch {
	case !s.Discovered(dst):
		return EdgeTree
	case !s.Finished(dst):
		return EdgeBack
	case s.discover[src] < s.discover[dst]:
		return EdgeForward
	default:
		return EdgeCross
	}
}
