// Package editor implements the editor session: the single owner of a note
// graph that turns user intents into graph mutations and user-visible
// messages.
//
// A Session never returns errors to its caller. Every intent reports its
// outcome as a [Message] for the host UI to display, so a bad input or a
// broken file can never crash the editor.
package editor

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	pkgerrors "github.com/matzehuels/notegraph/pkg/errors"
	"github.com/matzehuels/notegraph/pkg/graph"
	pkgio "github.com/matzehuels/notegraph/pkg/io"
	"github.com/matzehuels/notegraph/pkg/observability"
)

// DefaultPath is the graph file used when none is configured.
const DefaultPath = "graph.json"

// User-visible texts shared with the host UI and tests.
const (
	MsgSelectTwo   = "Select exactly two nodes to connect!"
	MsgSaved       = "Graph saved successfully!"
	MsgNoSavedFile = "No saved graph found!"
	MsgNothingToDo = "Nothing selected."
)

// Session owns one graph and the current selection.
//
// The zero value is not usable - use [New]. A Session is driven from a
// single event loop and is not safe for concurrent use.
type Session struct {
	graph  *graph.Graph
	path   string
	codec  pkgio.Options
	logger *log.Logger

	nodes []graph.NodeID // selected nodes, in selection order
	edges []graph.EdgeID // selected edges, in selection order
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the session logger (default log.Default()).
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// WithCodecOptions sets the options used by Save and Load.
func WithCodecOptions(o pkgio.Options) Option { return func(s *Session) { s.codec = o } }

// WithGraph makes the session own g instead of a new empty graph.
func WithGraph(g *graph.Graph) Option { return func(s *Session) { s.graph = g } }

// New creates a session editing the graph file at path.
// An empty path selects [DefaultPath].
func New(path string, opts ...Option) *Session {
	if path == "" {
		path = DefaultPath
	}
	s := &Session{path: path, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.graph == nil {
		s.graph = graph.New()
	}
	return s
}

// Graph returns the session's graph for rendering.
func (s *Session) Graph() *graph.Graph { return s.graph }

// Path returns the graph file path.
func (s *Session) Path() string { return s.path }

// AddNode creates a note at the graph's default position.
func (s *Session) AddNode(text string) (graph.NodeID, Message) {
	id, err := s.graph.Nodes().CreateNode(text)
	if err != nil {
		return "", s.fail("add node", err)
	}
	s.logger.Debug("added node", "id", id, "chars", len([]rune(text)))
	return id, Message{}
}

// AddNodeAt creates a note at pos.
func (s *Session) AddNodeAt(text string, pos graph.Point) (graph.NodeID, Message) {
	id, err := s.graph.Nodes().CreateNodeAt(text, pos)
	if err != nil {
		return "", s.fail("add node", err)
	}
	s.logger.Debug("added node", "id", id, "pos", pos)
	return id, Message{}
}

// Connect creates an edge between the two selected nodes, from the first
// selected to the second. Selected edges are ignored.
func (s *Session) Connect() (graph.EdgeID, Message) {
	if len(s.nodes) != 2 {
		return "", warning(MsgSelectTwo)
	}
	id, err := s.graph.Connect(s.nodes[0], s.nodes[1])
	if err != nil {
		return "", s.fail("connect", err)
	}
	s.logger.Debug("added edge", "id", id, "source", s.nodes[0], "target", s.nodes[1])
	return id, Message{}
}

// Move translates a node, as dragging it does.
func (s *Session) Move(id graph.NodeID, dx, dy float64) Message {
	if err := s.graph.Nodes().Move(id, dx, dy); err != nil {
		return s.fail("move", err)
	}
	return Message{}
}

// MoveSelection translates every selected node.
func (s *Session) MoveSelection(dx, dy float64) Message {
	for _, id := range s.nodes {
		if msg := s.Move(id, dx, dy); !msg.Empty() {
			return msg
		}
	}
	return Message{}
}

// DeleteSelection deletes the selected edges, then the selected nodes
// together with every edge attached to them, and clears the selection.
func (s *Session) DeleteSelection() Message {
	if len(s.nodes) == 0 && len(s.edges) == 0 {
		return info(MsgNothingToDo)
	}

	var nodes, edges int
	for _, id := range s.edges {
		if !s.graph.Edges().Has(id) {
			continue // stale selection entry
		}
		if err := s.graph.Edges().Delete(id); err != nil {
			return s.fail("delete edge", err)
		}
		edges++
	}
	for _, id := range s.nodes {
		removed, err := s.graph.DeleteNode(id)
		if err != nil {
			return s.fail("delete node", err)
		}
		nodes++
		edges += len(removed)
	}
	s.ClearSelection()

	s.logger.Debug("deleted selection", "nodes", nodes, "edges", edges)
	return info(fmt.Sprintf("Deleted %d node(s) and %d edge(s).", nodes, edges))
}

// Save writes the graph to the session's file.
func (s *Session) Save(ctx context.Context) Message {
	start := time.Now()
	rep, err := pkgio.ExportJSON(s.graph, s.path, s.codec)
	observability.Editor().OnSave(ctx, s.path, rep.Nodes, rep.Edges, time.Since(start), err)
	if err != nil {
		return s.fail("save", err)
	}
	for _, id := range rep.Dropped {
		observability.Editor().OnEdgeDropped(ctx, s.path, string(id))
		s.logger.Warn("edge not saved", "id", id, "reason", "endpoints unresolved")
	}

	s.logger.Info("saved graph", "path", s.path, "nodes", rep.Nodes, "edges", rep.Edges)
	if len(rep.Warnings) > 0 {
		return warning(MsgSaved + " " + joinWarnings(rep.Warnings))
	}
	return info(MsgSaved)
}

// Load replaces the graph with the contents of the session's file and
// clears the selection. A missing file leaves an empty graph and a warning;
// a malformed file leaves the graph unchanged.
func (s *Session) Load(ctx context.Context) Message {
	start := time.Now()
	rep, err := pkgio.ImportJSON(s.path, s.graph, s.codec)
	observability.Editor().OnLoad(ctx, s.path, rep.Nodes, rep.Edges, time.Since(start), err)
	if err != nil {
		if pkgerrors.Is(err, pkgerrors.ErrCodeFileNotFound) {
			s.graph.Reset()
			s.ClearSelection()
			s.logger.Info("no saved graph", "path", s.path)
			return warning(MsgNoSavedFile)
		}
		return s.fail("load", err)
	}
	s.ClearSelection()

	for _, w := range rep.Warnings {
		s.logger.Warn("loaded out-of-policy data", "path", s.path, "detail", w)
	}
	s.logger.Info("loaded graph", "path", s.path, "nodes", rep.Nodes, "edges", rep.Edges)
	text := fmt.Sprintf("Loaded %d note(s) and %d edge(s).", rep.Nodes, rep.Edges)
	if len(rep.Warnings) > 0 {
		return warning(text + " " + joinWarnings(rep.Warnings))
	}
	return info(text)
}

// fail converts a core error into a user-visible message.
func (s *Session) fail(op string, err error) Message {
	level := levelFor(err)
	if level == LevelError {
		s.logger.Error(op+" failed", "err", err)
	} else {
		s.logger.Debug(op+" rejected", "err", err)
	}
	return Message{Level: level, Text: pkgerrors.UserMessage(err)}
}

func joinWarnings(ws []string) string {
	if len(ws) == 1 {
		return ws[0]
	}
	return fmt.Sprintf("%s (and %d more)", ws[0], len(ws)-1)
}

// =============================================================================
// Selection
// =============================================================================

// SelectNode adds a node to the selection. Selecting twice is a no-op.
func (s *Session) SelectNode(id graph.NodeID) Message {
	if !s.graph.Nodes().Has(id) {
		return s.fail("select", pkgerrors.Wrap(pkgerrors.ErrCodeNotFound, graph.ErrNodeNotFound, "unknown node %s", id))
	}
	if !slices.Contains(s.nodes, id) {
		s.nodes = append(s.nodes, id)
	}
	return Message{}
}

// SelectEdge adds an edge to the selection. Selecting twice is a no-op.
func (s *Session) SelectEdge(id graph.EdgeID) Message {
	if !s.graph.Edges().Has(id) {
		return s.fail("select", pkgerrors.Wrap(pkgerrors.ErrCodeNotFound, graph.ErrEdgeNotFound, "unknown edge %s", id))
	}
	if !slices.Contains(s.edges, id) {
		s.edges = append(s.edges, id)
	}
	return Message{}
}

// ToggleNode selects an unselected node or deselects a selected one.
func (s *Session) ToggleNode(id graph.NodeID) Message {
	if i := slices.Index(s.nodes, id); i >= 0 {
		s.nodes = slices.Delete(s.nodes, i, i+1)
		return Message{}
	}
	return s.SelectNode(id)
}

// ToggleEdge selects an unselected edge or deselects a selected one.
func (s *Session) ToggleEdge(id graph.EdgeID) Message {
	if i := slices.Index(s.edges, id); i >= 0 {
		s.edges = slices.Delete(s.edges, i, i+1)
		return Message{}
	}
	return s.SelectEdge(id)
}

// ClearSelection deselects everything.
func (s *Session) ClearSelection() {
	s.nodes = nil
	s.edges = nil
}

// SelectedNodes returns the selected nodes in selection order.
func (s *Session) SelectedNodes() []graph.NodeID { return slices.Clone(s.nodes) }

// SelectedEdges returns the selected edges in selection order.
func (s *Session) SelectedEdges() []graph.EdgeID { return slices.Clone(s.edges) }

// NodeSelected reports whether a node is selected.
func (s *Session) NodeSelected(id graph.NodeID) bool { return slices.Contains(s.nodes, id) }

// EdgeSelected reports whether an edge is selected.
func (s *Session) EdgeSelected(id graph.EdgeID) bool { return slices.Contains(s.edges, id) }
