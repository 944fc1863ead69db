package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
	"github.com/matzehuels/notegraph/pkg/graph"
)

func buildGraph(t *testing.T, nodes []fileNode, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New()
	ids := make([]graph.NodeID, len(nodes))
	for i, n := range nodes {
		id, err := g.Nodes().CreateNodeAt(n.Text, graph.Point{X: n.X, Y: n.Y})
		if err != nil {
			t.Fatalf("node %d: %v", i, err)
		}
		ids[i] = id
	}
	for _, e := range edges {
		if _, err := g.Edges().CreateEdge(ids[e[0]], ids[e[1]]); err != nil {
			t.Fatalf("edge %v: %v", e, err)
		}
	}
	return g
}

// shape flattens a graph to comparable positional form.
func shape(g *graph.Graph) ([]fileNode, [][2]int) {
	var nodes []fileNode
	index := map[graph.NodeID]int{}
	for i, n := range g.Nodes().Nodes() {
		nodes = append(nodes, fileNode{X: n.Pos.X, Y: n.Pos.Y, Text: n.Text})
		index[n.ID] = i
	}
	var edges [][2]int
	for _, e := range g.Edges().Edges() {
		edges = append(edges, [2]int{index[e.Source], index[e.Target]})
	}
	return nodes, edges
}

func TestScenarioMeetingNotes(t *testing.T) {
	g := graph.New()
	a, _ := g.Nodes().CreateNode("Meeting notes")
	b, _ := g.Nodes().CreateNode("Follow up")
	if err := g.Nodes().SetPosition(b, 100, 50); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Edges().CreateEdge(a, b); err != nil {
		t.Fatal(err)
	}

	data, rep, err := Encode(g, Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if rep.Nodes != 2 || rep.Edges != 1 || len(rep.Dropped) != 0 {
		t.Errorf("Report = %+v", rep)
	}

	out, _, err := Decode(data, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	nodes, edges := shape(out)
	wantNodes := []fileNode{{0, 0, "Meeting notes"}, {100, 50, "Follow up"}}
	if len(nodes) != 2 || nodes[0] != wantNodes[0] || nodes[1] != wantNodes[1] {
		t.Errorf("nodes = %+v, want %+v", nodes, wantNodes)
	}
	if len(edges) != 1 || edges[0] != [2]int{0, 1} {
		t.Errorf("edges = %v, want [[0 1]]", edges)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		nodes []fileNode
		edges [][2]int
	}{
		{"empty", nil, nil},
		{"single node", []fileNode{{1.5, -2.25, "solo"}}, nil},
		{
			"triangle with parallel edge",
			[]fileNode{{0, 0, "a"}, {10, 0, "b"}, {5, 8, "c"}},
			[][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 1}},
		},
		{
			"unicode text",
			[]fileNode{{0, 0, "café ☕"}, {3, 4, strings.Repeat("ü", 128)}},
			[][2]int{{1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.nodes, tt.edges)
			data, _, err := Encode(g, Options{})
			if err != nil {
				t.Fatal(err)
			}
			out, _, err := Decode(data, Options{})
			if err != nil {
				t.Fatal(err)
			}
			nodes, edges := shape(out)
			if len(nodes) != len(tt.nodes) {
				t.Fatalf("got %d nodes, want %d", len(nodes), len(tt.nodes))
			}
			for i := range nodes {
				if nodes[i] != tt.nodes[i] {
					t.Errorf("node %d = %+v, want %+v", i, nodes[i], tt.nodes[i])
				}
			}
			if len(edges) != len(tt.edges) {
				t.Fatalf("got %d edges, want %d", len(edges), len(tt.edges))
			}
			for i := range edges {
				if edges[i] != tt.edges[i] {
					t.Errorf("edge %d = %v, want %v", i, edges[i], tt.edges[i])
				}
			}
		})
	}
}

func TestEncodeFormat(t *testing.T) {
	g := buildGraph(t, []fileNode{{0, 0, "a"}, {1, 2, "b"}}, [][2]int{{0, 1}})
	data, _, err := Encode(g, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var generic map[string]json.RawMessage
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatal(err)
	}
	if len(generic) != 2 {
		t.Errorf("top-level keys = %d, want 2 (nodes, edges)", len(generic))
	}
	if got := string(generic["edges"]); strings.Join(strings.Fields(got), "") != "[[0,1]]" {
		t.Errorf("edges = %s, want [[0,1]]", got)
	}
	if !bytes.Contains(data, []byte(`"text": "b"`)) {
		t.Errorf("expected indented node fields, got:\n%s", data)
	}

	empty, _, _ := Encode(graph.New(), Options{})
	if !bytes.Contains(empty, []byte(`"nodes": []`)) || !bytes.Contains(empty, []byte(`"edges": []`)) {
		t.Errorf("empty graph should write empty arrays, got:\n%s", empty)
	}
}

func TestEncodeAfterDeletionReindexes(t *testing.T) {
	g := graph.New()
	a, _ := g.Nodes().CreateNode("a")
	b, _ := g.Nodes().CreateNode("b")
	c, _ := g.Nodes().CreateNode("c")
	_, _ = g.Edges().CreateEdge(b, c)
	_, _ = g.Edges().CreateEdge(a, c)
	if _, err := g.DeleteNode(a); err != nil {
		t.Fatal(err)
	}

	data, rep, err := Encode(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Nodes != 2 || rep.Edges != 1 {
		t.Errorf("Report = %+v, want 2 nodes 1 edge", rep)
	}
	out, _, _ := Decode(data, Options{})
	_, edges := shape(out)
	if len(edges) != 1 || edges[0] != [2]int{0, 1} {
		t.Errorf("edges = %v, want [[0 1]]", edges)
	}
}

func TestEncodeByGeometry(t *testing.T) {
	g := graph.New()
	a, _ := g.Nodes().CreateNodeAt("a", graph.Point{X: 0, Y: 0})
	b, _ := g.Nodes().CreateNodeAt("b", graph.Point{X: 100, Y: 50})
	c, _ := g.Nodes().CreateNodeAt("c", graph.Point{X: 7, Y: 7})
	ab, _ := g.Edges().CreateEdge(a, b)
	_, _ = g.Edges().CreateEdge(b, c)

	_, rep, err := Encode(g, Options{ResolveByGeometry: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Edges != 2 || len(rep.Dropped) != 0 {
		t.Errorf("before move: Report = %+v", rep)
	}

	if err := g.Nodes().Move(a, 5, 0); err != nil {
		t.Fatal(err)
	}
	data, rep, err := Encode(g, Options{ResolveByGeometry: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Edges != 1 || len(rep.Dropped) != 1 || rep.Dropped[0] != ab {
		t.Errorf("after move: Report = %+v, want edge %s dropped", rep, ab)
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", rep.Warnings)
	}
	out, _, _ := Decode(data, Options{})
	if _, edges := shape(out); len(edges) != 1 || edges[0] != [2]int{1, 2} {
		t.Errorf("edges = %v, want [[1 2]]", edges)
	}

	// Identity mode keeps the edge regardless of the move.
	_, rep, _ = Encode(g, Options{})
	if rep.Edges != 2 || len(rep.Dropped) != 0 {
		t.Errorf("identity mode: Report = %+v", rep)
	}
}

func TestEncodeByGeometryOverlappingNodes(t *testing.T) {
	g := graph.New()
	a, _ := g.Nodes().CreateNode("a")
	b, _ := g.Nodes().CreateNode("b")
	ab, err := g.Connect(a, b)
	if err != nil {
		t.Fatal(err)
	}

	data, rep, err := Encode(g, Options{ResolveByGeometry: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Edges != 0 || len(rep.Dropped) != 1 || rep.Dropped[0] != ab {
		t.Errorf("Report = %+v, want edge %s dropped", rep, ab)
	}
	if len(rep.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", rep.Warnings)
	}

	out, _, err := Decode(data, Options{})
	if err != nil {
		t.Fatalf("Decode of encoded output: %v", err)
	}
	if out.NodeCount() != 2 || out.EdgeCount() != 0 {
		t.Errorf("decoded %d nodes %d edges, want 2 and 0", out.NodeCount(), out.EdgeCount())
	}
}

func TestDecodeFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"nodes": [`},
		{"wrong top-level type", `[]`},
		{"null document", `null`},
		{"missing nodes", `{"edges": []}`},
		{"missing edges", `{"nodes": []}`},
		{"nodes not array", `{"nodes": {}, "edges": []}`},
		{"node missing x", `{"nodes": [{"y": 0, "text": "a"}], "edges": []}`},
		{"node missing y", `{"nodes": [{"x": 0, "text": "a"}], "edges": []}`},
		{"node missing text", `{"nodes": [{"x": 0, "y": 0}], "edges": []}`},
		{"x not number", `{"nodes": [{"x": "0", "y": 0, "text": "a"}], "edges": []}`},
		{"edge too short", `{"nodes": [{"x": 0, "y": 0, "text": "a"}], "edges": [[0]]}`},
		{"edge too long", `{"nodes": [{"x": 0, "y": 0, "text": "a"}, {"x": 1, "y": 1, "text": "b"}], "edges": [[0, 1, 1]]}`},
		{"edge index out of range", `{"nodes": [{"x": 0, "y": 0, "text": "a"}], "edges": [[0, 1]]}`},
		{"negative index", `{"nodes": [{"x": 0, "y": 0, "text": "a"}, {"x": 1, "y": 1, "text": "b"}], "edges": [[-1, 1]]}`},
		{"self loop", `{"nodes": [{"x": 0, "y": 0, "text": "a"}], "edges": [[0, 0]]}`},
		{"fractional index", `{"nodes": [{"x": 0, "y": 0, "text": "a"}, {"x": 1, "y": 1, "text": "b"}], "edges": [[0.5, 1]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, err := Decode([]byte(tt.input), Options{})
			if err == nil {
				t.Fatalf("Decode(%s) succeeded, want FORMAT error", tt.input)
			}
			if !pkgerrors.Is(err, pkgerrors.ErrCodeFormat) {
				t.Errorf("code = %v, want FORMAT (err %v)", pkgerrors.GetCode(err), err)
			}
			if g != nil {
				t.Error("Decode should return a nil graph on error")
			}
		})
	}
}

func TestDecodeMessages(t *testing.T) {
	_, _, err := Decode([]byte(`{"nodes": [{"x": 0, "y": 0, "text": "a"}, {"x": 1, "text": "b"}], "edges": []}`), Options{})
	if msg := pkgerrors.UserMessage(err); !strings.Contains(msg, "nodes[1].y is required") {
		t.Errorf("UserMessage = %q, want mention of nodes[1].y", msg)
	}
}

func TestDecodeZeroValuesAccepted(t *testing.T) {
	g, rep, err := Decode([]byte(`{"nodes": [{"x": 0, "y": 0, "text": "a"}], "edges": []}`), Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.NodeCount() != 1 || rep.Nodes != 1 {
		t.Errorf("NodeCount = %d, Report = %+v", g.NodeCount(), rep)
	}
}

func TestDecodeTextPolicy(t *testing.T) {
	long := strings.Repeat("x", 200)
	input := []byte(`{"nodes": [{"x": 0, "y": 0, "text": "` + long + `"}, {"x": 1, "y": 1, "text": ""}], "edges": [[0, 1]]}`)

	g, rep, err := Decode(input, Options{})
	if err != nil {
		t.Fatalf("lenient Decode: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("lenient: %d nodes %d edges, want 2 and 1", g.NodeCount(), g.EdgeCount())
	}
	if len(rep.Warnings) != 2 {
		t.Errorf("lenient: Warnings = %v, want 2", rep.Warnings)
	}
	if text, _ := g.Nodes().Text(g.Nodes().Nodes()[0].ID); text != long {
		t.Error("lenient decode should keep over-long text as-is")
	}

	_, _, err = Decode(input, Options{Strict: true})
	if !pkgerrors.Is(err, pkgerrors.ErrCodeFormat) {
		t.Errorf("strict: code = %v, want FORMAT", pkgerrors.GetCode(err))
	}
	if got := strings.Count(err.Error(), "too long"); got != 1 {
		t.Errorf("strict: error %q repeats its cause %d times, want once", err, got)
	}
	if msg := pkgerrors.UserMessage(err); msg != "node 0: note text too long (max 128 characters, got 200)" {
		t.Errorf("strict: UserMessage = %q", msg)
	}
}

func TestDecodeIntoReplaces(t *testing.T) {
	g := buildGraph(t, []fileNode{{9, 9, "old-a"}, {8, 8, "old-b"}, {7, 7, "old-c"}}, [][2]int{{0, 1}})

	rep, err := DecodeInto(g, []byte(`{"nodes": [{"x": 1, "y": 2, "text": "new"}], "edges": []}`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	nodes, edges := shape(g)
	if len(nodes) != 1 || nodes[0] != (fileNode{1, 2, "new"}) || len(edges) != 0 {
		t.Errorf("after DecodeInto: nodes %+v edges %v", nodes, edges)
	}
	if rep.Nodes != 1 || rep.Edges != 0 {
		t.Errorf("Report = %+v", rep)
	}
}

func TestDecodeIntoAtomic(t *testing.T) {
	g := buildGraph(t, []fileNode{{0, 0, "keep"}, {1, 1, "me"}}, [][2]int{{0, 1}})

	_, err := DecodeInto(g, []byte(`{"nodes": [{"x": 1, "y": 2, "text": "new"}], "edges": [[0, 3]]}`), Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	nodes, edges := shape(g)
	if len(nodes) != 2 || nodes[0].Text != "keep" || len(edges) != 1 {
		t.Errorf("graph changed on failed decode: nodes %+v edges %v", nodes, edges)
	}
}

func TestExportImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	g := buildGraph(t, []fileNode{{0, 0, "Meeting notes"}, {100, 50, "Follow up"}}, [][2]int{{0, 1}})
	if _, err := ExportJSON(g, path, Options{}); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions = %o, want 644", perm)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only graph.json", len(entries))
	}

	loaded := graph.New()
	rep, err := ImportJSON(path, loaded, Options{})
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if rep.Nodes != 2 || rep.Edges != 1 {
		t.Errorf("Report = %+v", rep)
	}

	// Overwrite replaces the file contents.
	if _, err := ExportJSON(graph.New(), path, Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportJSON(path, loaded, Options{}); err != nil {
		t.Fatal(err)
	}
	if loaded.NodeCount() != 0 {
		t.Errorf("NodeCount = %d after loading empty file", loaded.NodeCount())
	}
}

func TestImportMissingFile(t *testing.T) {
	g := buildGraph(t, []fileNode{{0, 0, "a"}}, nil)
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"), g, Options{})
	if !pkgerrors.Is(err, pkgerrors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND (err %v)", pkgerrors.GetCode(err), err)
	}
	if g.NodeCount() != 1 {
		t.Error("missing file should leave the graph untouched")
	}
}

func TestExportInvalidPath(t *testing.T) {
	if _, err := ExportJSON(graph.New(), "", Options{}); !pkgerrors.Is(err, pkgerrors.ErrCodeInvalidPath) {
		t.Errorf("ExportJSON(\"\") = %v, want INVALID_PATH", err)
	}
	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir", "graph.json")
	if _, err := ExportJSON(graph.New(), missingDir, Options{}); !pkgerrors.Is(err, pkgerrors.ErrCodeIO) {
		t.Errorf("ExportJSON(missing dir) = %v, want IO_ERROR", err)
	}
}

func TestReadJSONStream(t *testing.T) {
	g := graph.New()
	r := strings.NewReader(`{"nodes": [{"x": 1, "y": 1, "text": "a"}, {"x": 2, "y": 2, "text": "b"}], "edges": [[1, 0]]}`)
	if _, err := ReadJSON(r, g, Options{}); err != nil {
		t.Fatal(err)
	}
	_, edges := shape(g)
	if len(edges) != 1 || edges[0] != [2]int{1, 0} {
		t.Errorf("edges = %v, want [[1 0]] (order preserved)", edges)
	}
}
