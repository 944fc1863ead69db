package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/notegraph/internal/editor"
	"github.com/matzehuels/notegraph/pkg/errors"
)

// Dialog styles
var (
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle  = lipgloss.NewStyle().Foreground(colorWhite).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(colorCyan)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const msgUnsaved = "Unsaved changes. Press q again to quit."

// pane is the table that has keyboard focus.
type pane int

const (
	paneNodes pane = iota
	paneEdges
)

// =============================================================================
// EditorModel - Interactive graph editor
// =============================================================================

// EditorModel is the bubbletea model for the interactive editor. It keeps
// a cursor per table and forwards every intent to the editor session.
type EditorModel struct {
	Session *editor.Session

	ctx     context.Context
	focus   pane
	cursors [2]int

	adding bool
	input  []rune

	status   editor.Message
	dirty    bool
	confirm  bool
	quitting bool
}

// NewEditorModel creates an editor model for s.
func NewEditorModel(ctx context.Context, s *editor.Session) EditorModel {
	return EditorModel{Session: s, ctx: ctx}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.adding {
		return m.updateInput(key)
	}

	if key.String() != "q" {
		m.confirm = false
	}
	m.status = editor.Message{}

	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q":
		if m.dirty && !m.confirm {
			m.confirm = true
			m.status = editor.Message{Level: editor.LevelWarning, Text: msgUnsaved}
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.focus = 1 - m.focus
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case " ":
		m.status = m.toggle()
	case "esc":
		m.Session.ClearSelection()
	case "a":
		m.adding = true
		m.input = m.input[:0]
	case "c":
		if _, msg := m.Session.Connect(); !msg.Empty() {
			m.status = msg
		} else {
			m.changed()
			m.Session.ClearSelection()
		}
	case "d", "delete":
		m.status = m.Session.DeleteSelection()
		if m.status.Level == editor.LevelInfo && m.status.Text != editor.MsgNothingToDo {
			m.changed()
		}
		m.clampCursors()
	case "shift+up", "K":
		m.status = m.moveNotes(0, -moveStep)
	case "shift+down", "J":
		m.status = m.moveNotes(0, moveStep)
	case "shift+left", "H":
		m.status = m.moveNotes(-moveStep, 0)
	case "shift+right", "L":
		m.status = m.moveNotes(moveStep, 0)
	case "s":
		m.status = m.Session.Save(m.ctx)
		if m.status.Level != editor.LevelError {
			m.dirty = false
		}
	case "l":
		m.status = m.Session.Load(m.ctx)
		if m.status.Level != editor.LevelError {
			m.dirty = false
		}
		m.clampCursors()
	}
	return m, nil
}

// updateInput handles keys while a new note's text is being typed.
func (m EditorModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.adding = false
	case tea.KeyEnter:
		m.adding = false
		if _, msg := m.Session.AddNode(string(m.input)); !msg.Empty() {
			m.status = msg
			break
		}
		m.changed()
		m.focus = paneNodes
		m.cursors[paneNodes] = m.Session.Graph().NodeCount() - 1
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m *EditorModel) changed() {
	m.dirty = true
	m.confirm = false
}

func (m *EditorModel) rows(p pane) int {
	if p == paneNodes {
		return m.Session.Graph().NodeCount()
	}
	return m.Session.Graph().EdgeCount()
}

func (m *EditorModel) moveCursor(delta int) {
	n := m.rows(m.focus)
	c := m.cursors[m.focus] + delta
	if c >= 0 && c < n {
		m.cursors[m.focus] = c
	}
}

func (m *EditorModel) clampCursors() {
	for _, p := range []pane{paneNodes, paneEdges} {
		m.cursors[p] = max(0, min(m.cursors[p], m.rows(p)-1))
	}
}

// toggle flips the selection of the row under the cursor.
func (m *EditorModel) toggle() editor.Message {
	g := m.Session.Graph()
	i := m.cursors[m.focus]
	if i >= m.rows(m.focus) {
		return editor.Message{}
	}
	if m.focus == paneNodes {
		return m.Session.ToggleNode(g.Nodes().Nodes()[i].ID)
	}
	return m.Session.ToggleEdge(g.Edges().Edges()[i].ID)
}

// moveNotes moves the selected notes, or the note under the cursor when
// nothing is selected.
func (m *EditorModel) moveNotes(dx, dy float64) editor.Message {
	if len(m.Session.SelectedNodes()) > 0 {
		msg := m.Session.MoveSelection(dx, dy)
		if msg.Empty() {
			m.changed()
		}
		return msg
	}
	i := m.cursors[paneNodes]
	if m.focus != paneNodes || i >= m.rows(paneNodes) {
		return editor.Message{}
	}
	msg := m.Session.Move(m.Session.Graph().Nodes().Nodes()[i].ID, dx, dy)
	if msg.Empty() {
		m.changed()
	}
	return msg
}

func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	g := m.Session.Graph()

	title := StyleTitle.Render(appName) + " " + StyleDim.Render(m.Session.Path())
	if m.dirty {
		title += StyleWarning.Render(" *")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	nodes := g.Nodes().Nodes()
	b.WriteString(nodeTable(g, tableState{
		cursor:   m.cursors[paneNodes],
		active:   m.focus == paneNodes,
		selected: func(row int) bool { return m.Session.NodeSelected(nodes[row].ID) },
	}).Render())
	b.WriteString("\n")

	edges := g.Edges().Edges()
	b.WriteString(edgeTable(g, tableState{
		cursor:   m.cursors[paneEdges],
		active:   m.focus == paneEdges,
		selected: func(row int) bool { return m.Session.EdgeSelected(edges[row].ID) },
	}).Render())
	b.WriteString("\n")

	if m.adding {
		count := StyleDim.Render(fmt.Sprintf(" %d/%d", len(m.input), errors.MaxTextLength))
		b.WriteString(StyleHighlight.Render("New note: ") + inputStyle.Render(string(m.input)+"█") + count)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("⏎ add  esc cancel"))
		return b.String()
	}

	if !m.status.Empty() {
		b.WriteString(renderDialog(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ navigate  tab switch table  space select  a add  c connect  d delete  H/J/K/L move  s save  l load  q quit"))
	return b.String()
}

// renderDialog renders a session message as a titled box.
func renderDialog(msg editor.Message) string {
	color := colorGray
	switch msg.Level {
	case editor.LevelWarning:
		color = colorYellow
	case editor.LevelError:
		color = colorRed
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(msg.Level.String())
	return dialogStyle.BorderForeground(color).Render(title + "\n" + msg.Text)
}
