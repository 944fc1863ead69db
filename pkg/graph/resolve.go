package graph

import (
	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
)

// PositionLookup lists nodes with their current positions in a stable order.
// [NodeStore] implements it.
type PositionLookup interface {
	Nodes() []Node
}

// ResolveEndpointsByPosition recovers an edge's endpoints from its drawn
// geometry. The source is the first node in lookup order whose position
// equals seg.A exactly; the target is found independently for seg.B.
//
// Returns an UNRESOLVED error wrapping [ErrUnresolved] when either endpoint
// matches no node, which happens as soon as a node is moved after the edge
// was drawn. Nodes sharing a position resolve to the earliest one.
func (s *EdgeStore) ResolveEndpointsByPosition(lookup PositionLookup, seg Segment) (NodeID, NodeID, error) {
	nodes := lookup.Nodes()
	src, okS := matchPosition(nodes, seg.A)
	dst, okD := matchPosition(nodes, seg.B)
	if !okS || !okD {
		return "", "", pkgerrors.Wrap(pkgerrors.ErrCodeUnresolved, ErrUnresolved, "no node at %v / %v", seg.A, seg.B)
	}
	return src, dst, nil
}

// Resolve runs [EdgeStore.ResolveEndpointsByPosition] for a stored edge
// against the store's own nodes.
func (s *EdgeStore) Resolve(id EdgeID) (NodeID, NodeID, error) {
	e, err := s.Get(id)
	if err != nil {
		return "", "", err
	}
	return s.ResolveEndpointsByPosition(s.nodes, e.Segment)
}

func matchPosition(nodes []Node, p Point) (NodeID, bool) {
	for _, n := range nodes {
		if n.Pos == p {
			return n.ID, true
		}
	}
	return "", false
}
