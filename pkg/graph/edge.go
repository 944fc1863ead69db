package graph

import (
	"slices"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
)

// EdgeStore maps edge identities to their endpoint node identities.
// Iteration order is creation order.
//
// The zero value is not usable - stores are created by [New].
type EdgeStore struct {
	nodes *NodeStore
	edges map[EdgeID]*Edge
	order []EdgeID
	newID IDFunc
}

func newEdgeStore(nodes *NodeStore, newID IDFunc) *EdgeStore {
	return &EdgeStore{
		nodes: nodes,
		edges: make(map[EdgeID]*Edge),
		newID: newID,
	}
}

// CreateEdge connects source to target and returns the new edge identity.
// The edge's segment is taken from the two current node positions.
//
// Returns a VALIDATION error for a self-loop and a NOT_FOUND error if either
// node is absent. Parallel edges between the same pair are allowed.
func (s *EdgeStore) CreateEdge(source, target NodeID) (EdgeID, error) {
	if source == target {
		return "", pkgerrors.Wrap(pkgerrors.ErrCodeValidation, ErrSelfLoop, "cannot connect node %s to itself", source)
	}
	src, err := s.nodes.Position(source)
	if err != nil {
		return "", err
	}
	dst, err := s.nodes.Position(target)
	if err != nil {
		return "", err
	}

	id := EdgeID(s.newID())
	s.edges[id] = &Edge{
		ID:      id,
		Source:  source,
		Target:  target,
		Segment: Segment{A: src, B: dst},
	}
	s.order = append(s.order, id)
	return id, nil
}

// Delete removes an edge.
// Returns a NOT_FOUND error if id is unknown.
func (s *EdgeStore) Delete(id EdgeID) error {
	if !s.Has(id) {
		return pkgerrors.Wrap(pkgerrors.ErrCodeNotFound, ErrEdgeNotFound, "unknown edge %s", id)
	}
	delete(s.edges, id)
	s.order = slices.DeleteFunc(s.order, func(o EdgeID) bool { return o == id })
	return nil
}

// Get returns a copy of the edge.
func (s *EdgeStore) Get(id EdgeID) (Edge, error) {
	e, ok := s.edges[id]
	if !ok {
		return Edge{}, pkgerrors.Wrap(pkgerrors.ErrCodeNotFound, ErrEdgeNotFound, "unknown edge %s", id)
	}
	return *e, nil
}

// Has reports whether the edge exists.
func (s *EdgeStore) Has(id EdgeID) bool {
	_, ok := s.edges[id]
	return ok
}

// Edges returns copies of all edges in creation order.
func (s *EdgeStore) Edges() []Edge {
	out := make([]Edge, len(s.order))
	for i, id := range s.order {
		out[i] = *s.edges[id]
	}
	return out
}

// EdgesOf returns the edges incident to a node, in creation order.
// Returns nil if the node has no edges or doesn't exist.
func (s *EdgeStore) EdgesOf(node NodeID) []Edge {
	var out []Edge
	for _, id := range s.order {
		if e := s.edges[id]; e.Source == node || e.Target == node {
			out = append(out, *e)
		}
	}
	return out
}

// Len returns the number of edges.
func (s *EdgeStore) Len() int { return len(s.order) }

// removeIncident deletes every edge touching node and returns their IDs.
func (s *EdgeStore) removeIncident(node NodeID) []EdgeID {
	var removed []EdgeID
	s.order = slices.DeleteFunc(s.order, func(id EdgeID) bool {
		e := s.edges[id]
		if e.Source != node && e.Target != node {
			return false
		}
		delete(s.edges, id)
		removed = append(removed, id)
		return true
	})
	return removed
}

func (s *EdgeStore) reset() {
	clear(s.edges)
	s.order = nil
}
