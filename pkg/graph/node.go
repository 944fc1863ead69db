package graph

import (
	"slices"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
)

// NodeStore maps node identities to their position and text.
// Iteration order is creation order, which the file format relies on.
//
// The zero value is not usable - stores are created by [New].
type NodeStore struct {
	nodes    map[NodeID]*Node
	order    []NodeID
	newID    IDFunc
	origin   Point
	onDelete func(NodeID)
}

func newNodeStore(newID IDFunc, origin Point) *NodeStore {
	return &NodeStore{
		nodes:  make(map[NodeID]*Node),
		newID:  newID,
		origin: origin,
	}
}

// CreateNode adds a note with the given text at the store's default
// position and returns its fresh identity.
//
// Returns a VALIDATION error if the text is blank or longer than
// [pkgerrors.MaxTextLength] characters.
func (s *NodeStore) CreateNode(text string) (NodeID, error) {
	return s.CreateNodeAt(text, s.origin)
}

// CreateNodeAt is like [NodeStore.CreateNode] with a caller-supplied position.
func (s *NodeStore) CreateNodeAt(text string, pos Point) (NodeID, error) {
	if err := pkgerrors.ValidateNoteText(text); err != nil {
		return "", err
	}
	if err := checkPosition(pos); err != nil {
		return "", err
	}
	return s.RestoreNode(text, pos), nil
}

// RestoreNode adds a note without validating its text. It exists for
// decoders reloading previously saved graphs, which may hold text that
// would no longer pass [NodeStore.CreateNode].
func (s *NodeStore) RestoreNode(text string, pos Point) NodeID {
	id := NodeID(s.newID())
	s.nodes[id] = &Node{ID: id, Pos: pos, Text: text}
	s.order = append(s.order, id)
	return id
}

// SetPosition moves a node to (x, y).
// Returns a NOT_FOUND error if id is unknown and a VALIDATION error if
// either coordinate is NaN or infinite.
func (s *NodeStore) SetPosition(id NodeID, x, y float64) error {
	n, err := s.lookup(id)
	if err != nil {
		return err
	}
	pos := Point{X: x, Y: y}
	if err := checkPosition(pos); err != nil {
		return err
	}
	n.Pos = pos
	return nil
}

// Move translates a node by (dx, dy), as a drag gesture does.
// The node stays put if the result would not be finite.
func (s *NodeStore) Move(id NodeID, dx, dy float64) error {
	n, err := s.lookup(id)
	if err != nil {
		return err
	}
	pos := n.Pos.Add(dx, dy)
	if err := checkPosition(pos); err != nil {
		return err
	}
	n.Pos = pos
	return nil
}

func checkPosition(p Point) error {
	if !p.IsFinite() {
		return pkgerrors.New(pkgerrors.ErrCodeValidation, "position %s is not finite", p)
	}
	return nil
}

// Text returns the text of a node.
func (s *NodeStore) Text(id NodeID) (string, error) {
	n, err := s.lookup(id)
	if err != nil {
		return "", err
	}
	return n.Text, nil
}

// Position returns the current position of a node.
func (s *NodeStore) Position(id NodeID) (Point, error) {
	n, err := s.lookup(id)
	if err != nil {
		return Point{}, err
	}
	return n.Pos, nil
}

// Get returns a copy of the node.
func (s *NodeStore) Get(id NodeID) (Node, error) {
	n, err := s.lookup(id)
	if err != nil {
		return Node{}, err
	}
	return *n, nil
}

// Has reports whether the node exists.
func (s *NodeStore) Has(id NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Delete removes a node together with every edge referencing it.
// Returns a NOT_FOUND error if id is unknown.
func (s *NodeStore) Delete(id NodeID) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.nodes, id)
	s.order = slices.DeleteFunc(s.order, func(o NodeID) bool { return o == id })
	if s.onDelete != nil {
		s.onDelete(id)
	}
	return nil
}

// Nodes returns copies of all nodes in creation order.
func (s *NodeStore) Nodes() []Node {
	out := make([]Node, len(s.order))
	for i, id := range s.order {
		out[i] = *s.nodes[id]
	}
	return out
}

// Index returns the node's position in creation order, or false if unknown.
// This is the positional index written to files.
func (s *NodeStore) Index(id NodeID) (int, bool) {
	if !s.Has(id) {
		return 0, false
	}
	return slices.Index(s.order, id), true
}

// Len returns the number of nodes.
func (s *NodeStore) Len() int { return len(s.order) }

func (s *NodeStore) lookup(id NodeID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeNotFound, ErrNodeNotFound, "unknown node %s", id)
	}
	return n, nil
}

func (s *NodeStore) reset() {
	clear(s.nodes)
	s.order = nil
}
