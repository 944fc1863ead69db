package graph_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/notegraph/pkg/graph"
)

func ExampleGraph() {
	g := graph.New(graph.WithNodeIDs(graph.SequentialIDs("n")), graph.WithEdgeIDs(graph.SequentialIDs("e")))

	a, _ := g.Nodes().CreateNodeAt("Meeting notes", graph.Point{X: 0, Y: 0})
	b, _ := g.Nodes().CreateNodeAt("Follow up", graph.Point{X: 100, Y: 50})
	_, _ = g.Edges().CreateEdge(a, b)

	for _, n := range g.Nodes().Nodes() {
		fmt.Println(n.ID, n.Pos, n.Text)
	}
	for _, e := range g.Edges().Edges() {
		fmt.Println(e.ID, e.Source, "->", e.Target)
	}
	// Output:
	// n1 (0, 0) Meeting notes
	// n2 (100, 50) Follow up
	// e1 n1 -> n2
}

func ExampleGraph_DeleteNode() {
	g := graph.New(graph.WithNodeIDs(graph.SequentialIDs("n")), graph.WithEdgeIDs(graph.SequentialIDs("e")))
	a, _ := g.Nodes().CreateNode("a")
	b, _ := g.Nodes().CreateNode("b")
	_, _ = g.Edges().CreateEdge(a, b)

	removed, _ := g.DeleteNode(a)
	fmt.Println("removed edges:", removed)
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	// Output:
	// removed edges: [e1]
	// nodes: 1 edges: 0
}

func ExampleEdgeStore_ResolveEndpointsByPosition() {
	g := graph.New()
	a, _ := g.Nodes().CreateNodeAt("a", graph.Point{X: 0, Y: 0})
	b, _ := g.Nodes().CreateNodeAt("b", graph.Point{X: 10, Y: 10})
	e, _ := g.Edges().CreateEdge(a, b)

	_, _, err := g.Edges().Resolve(e)
	fmt.Println("before move:", err == nil)

	_ = g.Nodes().Move(b, 1, 0)
	_, _, err = g.Edges().Resolve(e)
	fmt.Println("after move:", errors.Is(err, graph.ErrUnresolved))
	// Output:
	// before move: true
	// after move: true
}
