package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notegraph/pkg/graph"
)

// showCommand prints the notes and edges of the graph file.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the notes and edges of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			g := s.Graph()
			if g.NodeCount() == 0 {
				c.printInfo("Graph %s is empty", s.Path())
				c.printNextStep("Add a note", appName+" add \"My first note\"")
				return nil
			}
			fmt.Fprintln(c.Out, nodeTable(g, tableState{cursor: -1}).Render())
			if g.EdgeCount() > 0 {
				fmt.Fprintln(c.Out, edgeTable(g, tableState{cursor: -1}).Render())
			}
			c.printStats(g.NodeCount(), g.EdgeCount())
			return nil
		},
	}
}

// =============================================================================
// Tables
// =============================================================================

// tableState carries the cursor and selection of one table. A cursor of -1
// highlights nothing.
type tableState struct {
	cursor   int
	active   bool
	selected func(row int) bool
}

func (st tableState) style(row int) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case row == table.HeaderRow:
		return base.Foreground(colorGray).Bold(true)
	case st.selected != nil && st.selected(row):
		base = base.Foreground(colorGreen)
	default:
		base = base.Foreground(colorWhite)
	}
	if row == st.cursor {
		if st.active {
			return base.Bold(true).Foreground(colorCyan)
		}
		return base.Bold(true)
	}
	return base
}

func (st tableState) marker(row int) string {
	switch {
	case row == st.cursor && st.active:
		return "▸"
	case st.selected != nil && st.selected(row):
		return iconSuccess
	default:
		return " "
	}
}

func newTable(st tableState, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style { return st.style(row) })
}

// nodeTable lists notes in creation order with their index and position.
func nodeTable(g *graph.Graph, st tableState) *table.Table {
	t := newTable(st, "", "#", "Note", "Position")
	for i, n := range g.Nodes().Nodes() {
		t.Row(st.marker(i), strconv.Itoa(i), n.Text, n.Pos.String())
	}
	return t
}

// edgeTable lists edges with their endpoints as note indices.
func edgeTable(g *graph.Graph, st tableState) *table.Table {
	t := newTable(st, "", "#", "From", "", "To")
	for i, e := range g.Edges().Edges() {
		t.Row(st.marker(i), strconv.Itoa(i), noteLabel(g, e.Source), iconArrow, noteLabel(g, e.Target))
	}
	return t
}

// noteLabel renders a note as "index text", shortening long text.
func noteLabel(g *graph.Graph, id graph.NodeID) string {
	idx, ok := g.Nodes().Index(id)
	if !ok {
		return "?"
	}
	text, _ := g.Nodes().Text(id)
	return fmt.Sprintf("%d %s", idx, truncate(text, 24))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
