package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotFound is wrapped by every store operation that references an
	// unknown node identity.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is wrapped by every store operation that references an
	// unknown edge identity.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrSelfLoop is wrapped by [EdgeStore.CreateEdge] when both endpoints are
	// the same node.
	ErrSelfLoop = errors.New("edge endpoints must differ")

	// ErrUnresolved is wrapped by [EdgeStore.ResolveEndpointsByPosition] when
	// a segment endpoint no longer matches any node position.
	ErrUnresolved = errors.New("edge endpoints unresolved")

	// ErrDanglingEdge is returned by [Graph.Validate] when an edge references
	// a node that doesn't exist. This indicates graph corruption.
	ErrDanglingEdge = errors.New("edge references missing node")
)

// Graph is the complete in-memory note graph for one editing session.
// It owns its node and edge stores exclusively.
//
// The zero value is not usable - use [New].
type Graph struct {
	nodes *NodeStore
	edges *EdgeStore
	opts  options
}

type options struct {
	nodeIDs IDFunc
	edgeIDs IDFunc
	origin  Point
}

// Option configures a [Graph].
type Option func(*options)

// WithNodeIDs sets the node identity generator (default [RandomIDs]).
func WithNodeIDs(f IDFunc) Option { return func(o *options) { o.nodeIDs = f } }

// WithEdgeIDs sets the edge identity generator (default [RandomIDs]).
func WithEdgeIDs(f IDFunc) Option { return func(o *options) { o.edgeIDs = f } }

// WithOrigin sets the position used by [NodeStore.CreateNode] (default (0,0)).
func WithOrigin(p Point) Option { return func(o *options) { o.origin = p } }

// New creates an empty graph.
func New(opts ...Option) *Graph {
	o := options{nodeIDs: RandomIDs, edgeIDs: RandomIDs}
	for _, opt := range opts {
		opt(&o)
	}

	nodes := newNodeStore(o.nodeIDs, o.origin)
	edges := newEdgeStore(nodes, o.edgeIDs)
	nodes.onDelete = func(id NodeID) { edges.removeIncident(id) }
	return &Graph{nodes: nodes, edges: edges, opts: o}
}

// NewEmpty creates an empty graph sharing g's identity generators and
// origin, so nodes created in either never collide.
func (g *Graph) NewEmpty() *Graph {
	o := g.opts
	return New(func(dst *options) { *dst = o })
}

// Nodes returns the node store.
func (g *Graph) Nodes() *NodeStore { return g.nodes }

// Edges returns the edge store.
func (g *Graph) Edges() *EdgeStore { return g.edges }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// Connect creates an edge from a to b using the nodes' current positions
// as its drawn segment.
func (g *Graph) Connect(a, b NodeID) (EdgeID, error) {
	return g.edges.CreateEdge(a, b)
}

// DeleteNode removes a node and returns the identities of the edges that
// were deleted with it, in creation order.
func (g *Graph) DeleteNode(id NodeID) ([]EdgeID, error) {
	var removed []EdgeID
	for _, e := range g.edges.EdgesOf(id) {
		removed = append(removed, e.ID)
	}
	if err := g.nodes.Delete(id); err != nil {
		return nil, err
	}
	return removed, nil
}

// Reset removes every node and edge. Identity generators keep running, so
// identities handed out before the reset are never reused.
func (g *Graph) Reset() {
	g.edges.reset()
	g.nodes.reset()
}

// Replace moves the contents of other into g, discarding what g held, and
// leaves other empty. Use it with [Graph.NewEmpty] so identities stay unique.
func (g *Graph) Replace(other *Graph) {
	g.Reset()
	g.nodes.nodes, other.nodes.nodes = other.nodes.nodes, g.nodes.nodes
	g.nodes.order, other.nodes.order = other.nodes.order, nil
	g.edges.edges, other.edges.edges = other.edges.edges, g.edges.edges
	g.edges.order, other.edges.order = other.edges.order, nil
}

// Validate checks that every edge connects two distinct existing nodes.
// Returns an error wrapping [ErrDanglingEdge] or [ErrSelfLoop].
func (g *Graph) Validate() error {
	for _, e := range g.edges.Edges() {
		if !g.nodes.Has(e.Source) || !g.nodes.Has(e.Target) {
			return fmt.Errorf("edge %s: %w", e.ID, ErrDanglingEdge)
		}
		if e.Source == e.Target {
			return fmt.Errorf("edge %s: %w", e.ID, ErrSelfLoop)
		}
	}
	return nil
}
