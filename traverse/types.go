// Package traverse defines the event stream, control-flow signals, sentinel
// errors, and functional options shared by the DFS and BFS engines.
package traverse

import "errors"

// Sentinel errors for engine construction and execution.
var (
	// ErrNilStorage is returned when a nil storage is passed to an engine.
	ErrNilStorage = errors.New("traverse: storage is nil")

	// ErrNilVisitor is returned when Execute is called without a callback.
	ErrNilVisitor = errors.New("traverse: visitor is nil")

	// ErrInconsistentStorage indicates that the storage's reported NodeCount
	// disagrees with the number of tokens it actually enumerated.
	ErrInconsistentStorage = errors.New("traverse: node count disagrees with enumeration")

	// ErrUnknownNode indicates a token that was not present when the index
	// was built; the storage mutated out of contract.
	ErrUnknownNode = errors.New("traverse: unknown node token")

	// ErrEngineConsumed is returned by a second Execute on the same engine.
	// Engines are single-shot: construct a fresh one per traversal.
	ErrEngineConsumed = errors.New("traverse: engine already executed")
)

// EventKind discriminates traversal lifecycle events.
type EventKind uint8

const (
	// Begin marks the selection of a new traversal root.
	Begin EventKind = iota
	// Discover marks the first visit of a node.
	Discover
	// VisitEdge reports one traversed edge together with its classification.
	VisitEdge
	// Finish marks the completion of a node's reachable subtree.
	Finish
	// End closes the Begin..End span of one root.
	End
)

// String returns the lifecycle event name.
func (k EventKind) String() string {
	switch k {
	case Begin:
		return "Begin"
	case Discover:
		return "Discover"
	case VisitEdge:
		return "VisitEdge"
	case Finish:
		return "Finish"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// EdgeKind classifies a traversed edge relative to one DFS run.
type EdgeKind uint8

const (
	// EdgeNone is reported by BFS, which does not classify edges.
	EdgeNone EdgeKind = iota
	// EdgeTree is the edge by which a node is first discovered.
	EdgeTree
	// EdgeBack points to a discovered-but-unfinished ancestor; for directed
	// graphs this is the defining signature of a cycle.
	EdgeBack
	// EdgeForward points to an already-finished node discovered later than
	// the source. Directed graphs only.
	EdgeForward
	// EdgeCross points to an already-finished node discovered earlier than
	// the source. Directed graphs only.
	EdgeCross
)

// String returns the classification name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeNone:
		return "None"
	case EdgeTree:
		return "Tree"
	case EdgeBack:
		return "Back"
	case EdgeForward:
		return "Forward"
	case EdgeCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// Flow is the three-way control signal a Visitor returns per event.
type Flow uint8

const (
	// Continue proceeds normally.
	Continue Flow = iota
	// Prune abandons the current node's remaining successors without
	// aborting the traversal.
	Prune
	// Halt terminates the whole traversal immediately. State arrays stay in
	// whatever partial condition they reached; treat Unknown entries as
	// "not reached".
	Halt
)

// Event is one traversal lifecycle notification.
//
// Node is set for Begin, Discover, Finish, and End events. From, To, and Edge
// are set for VisitEdge events. Depth is the DFS-tree (or BFS hop) depth of
// the node the event concerns; for VisitEdge it is the depth of From.
type Event struct {
	Kind  EventKind
	Node  NodeID
	From  NodeID
	To    NodeID
	Edge  EdgeKind
	Depth int
}

// Visitor receives each traversal event together with a read-only handle on
// the engine's state, and steers the traversal through its return value.
//
// A Visitor runs synchronously on the traversing goroutine; it must not
// mutate the storage or retain the State handle past the traversal.
type Visitor func(ev Event, st *State) Flow

// options collects engine construction parameters.
type options struct {
	roots []NodeID
}

// Option configures engine construction.
// Use with NewDFS(storage, opts...) or NewBFS(storage, opts...).
type Option func(*options)

// WithRoots sets explicit starting nodes, visited in the given order. After
// the explicit roots are exhausted the engine still restarts from every
// undiscovered node (lowest dense index first), so disconnected graphs are
// always fully covered.
func WithRoots(roots ...NodeID) Option {
	return func(o *options) {
		o.roots = append(o.roots, roots...)
	}
}
