// Package pkg provides the core libraries for notegraph.
//
// # Overview
//
// Notegraph edits graphs of short text notes joined by directed edges. The
// pkg directory holds everything that does not depend on a user interface:
//
//  1. [graph] - Node and edge stores with identity-based edges
//  2. [io] - The flat JSON file format (encode, decode, atomic save)
//  3. [errors] - Code-typed errors and input validation
//  4. [observability] - Hooks for save and load events
//  5. [buildinfo] - Version information set at build time
//
// # Architecture
//
//	user intent (TUI or command)
//	         ↓
//	    internal/editor (session, selection, messages)
//	         ↓
//	    [graph] package (mutations, cascade delete)
//	         ↓
//	    [io] package (graph.json)
//
// # Quick Start
//
//	g := graph.New()
//	a, _ := g.Nodes().CreateNodeAt("Idea", graph.Point{X: 0, Y: 0})
//	b, _ := g.Nodes().CreateNodeAt("Follow up", graph.Point{X: 120, Y: 40})
//	g.Edges().CreateEdge(a, b)
//	_, err := io.ExportJSON(g, "graph.json", io.Options{})
package pkg
