// Package graph provides the in-memory model of a note graph.
//
// A note graph is a set of positioned text notes (nodes) connected by edges.
// The package keeps nodes and edges consistent with each other; it knows
// nothing about files, rendering, or the terminal.
//
// # Architecture
//
// A [Graph] exclusively owns two stores:
//
//   - [NodeStore]: node identity → position and text, in creation order
//   - [EdgeStore]: edge identity → source and target node identities, in creation order
//
// Use [New] to construct a graph and reach the stores through [Graph.Nodes]
// and [Graph.Edges]. Stores are never constructed on their own, which lets
// the graph enforce its invariants across both of them.
//
// # Invariants
//
//   - Node text is validated on creation (non-blank, at most 128 characters).
//   - An edge always connects two distinct nodes that exist in the node store.
//   - Deleting a node deletes every edge that references it (cascade).
//   - Identities are never reused within one graph, even after [Graph.Reset].
//
// # Edge Geometry
//
// Every edge carries its endpoint identities, which are authoritative. It
// also records the [Segment] between the two node positions at the moment it
// was drawn. The segment is not updated when nodes move. Files written by
// older editors only had that geometry to go on, so
// [EdgeStore.ResolveEndpointsByPosition] recovers endpoints by exact
// position match for callers that need the legacy behavior:
//
//	src, dst, err := g.Edges().ResolveEndpointsByPosition(g.Nodes(), e.Segment)
//	if errors.Is(err, graph.ErrUnresolved) {
//	    // a node was moved after the edge was drawn
//	}
//
// # Concurrency
//
// A Graph is owned by a single editor session and is not safe for
// concurrent use without external synchronization.
package graph
