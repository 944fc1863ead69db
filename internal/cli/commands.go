package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notegraph/internal/editor"
	"github.com/matzehuels/notegraph/pkg/graph"
)

// =============================================================================
// add
// =============================================================================

func (c *CLI) addCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a note",
		Long: `Add a note to the graph file.

Without --x/--y the note is placed at the configured default position.
Note text must be non-blank and at most 128 characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}

			var (
				id  graph.NodeID
				msg editor.Message
			)
			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				origin := c.Config.Origin()
				if !cmd.Flags().Changed("x") {
					x = origin.X
				}
				if !cmd.Flags().Changed("y") {
					y = origin.Y
				}
				id, msg = s.AddNodeAt(args[0], graph.Point{X: x, Y: y})
			} else {
				id, msg = s.AddNode(args[0])
			}
			if err := failed(msg); err != nil {
				return err
			}

			idx, _ := s.Graph().Nodes().Index(id)
			if err := c.saveSession(cmd.Context(), s); err != nil {
				return err
			}
			c.printSuccess("Added note %s", StyleHighlight.Render(strconv.Itoa(idx)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "x position")
	cmd.Flags().Float64Var(&y, "y", 0, "y position")

	return cmd
}

// =============================================================================
// connect
// =============================================================================

func (c *CLI) connectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <from> <to>",
		Short: "Connect two notes with a directed edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := nodeAt(s, arg)
				if err != nil {
					return err
				}
				if err := failed(s.SelectNode(id)); err != nil {
					return err
				}
			}
			if _, msg := s.Connect(); !msg.Empty() {
				return failed(msg)
			}
			if err := c.saveSession(cmd.Context(), s); err != nil {
				return err
			}
			c.printSuccess("Connected %s %s %s", args[0], iconArrow, args[1])
			return nil
		},
	}
}

// =============================================================================
// remove
// =============================================================================

func (c *CLI) removeCommand() *cobra.Command {
	var edges []string

	cmd := &cobra.Command{
		Use:   "remove [note...]",
		Short: "Remove notes and edges",
		Long: `Remove notes and edges from the graph file.

Removing a note also removes every edge attached to it. Indices refer to
the graph as it was before the removal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := nodeAt(s, arg)
				if err != nil {
					return err
				}
				if err := failed(s.SelectNode(id)); err != nil {
					return err
				}
			}
			for _, arg := range edges {
				id, err := edgeAt(s, arg)
				if err != nil {
					return err
				}
				if err := failed(s.SelectEdge(id)); err != nil {
					return err
				}
			}

			msg := s.DeleteSelection()
			if msg.Text == editor.MsgNothingToDo {
				c.printInfo("%s", msg.Text)
				return nil
			}
			if err := c.saveSession(cmd.Context(), s); err != nil {
				return err
			}
			c.printSuccess("%s", msg.Text)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&edges, "edge", "e", nil, "edge index to remove (repeatable)")

	return cmd
}

// =============================================================================
// move
// =============================================================================

func (c *CLI) moveCommand() *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "move <note> <dx> <dy>",
		Short: "Move a note",
		Long: `Move a note by an offset, or to a position with --to.

Edges keep their endpoints when a note moves. Put -- before negative
values so they are not read as flags:

  notegraph move 0 -- -20 15`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession(cmd.Context())
			if err != nil {
				return err
			}
			id, err := nodeAt(s, args[0])
			if err != nil {
				return err
			}
			dx, err := parseCoord(args[1])
			if err != nil {
				return err
			}
			dy, err := parseCoord(args[2])
			if err != nil {
				return err
			}

			if absolute {
				pos, err := s.Graph().Nodes().Position(id)
				if err != nil {
					return err
				}
				dx, dy = dx-pos.X, dy-pos.Y
			}
			if err := failed(s.Move(id, dx, dy)); err != nil {
				return err
			}
			if err := c.saveSession(cmd.Context(), s); err != nil {
				return err
			}

			pos, _ := s.Graph().Nodes().Position(id)
			c.printSuccess("Moved note %s to %s", args[0], StyleValue.Render(pos.String()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "to", false, "treat <dx> <dy> as an absolute position")

	return cmd
}

// =============================================================================
// validate
// =============================================================================

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the graph file is well formed",
		Long: `Check that the graph file is well formed.

With --strict, notes with blank or over-long text are errors instead of
warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			s := c.newSession()

			msg := s.Load(cmd.Context())
			switch {
			case msg.Text == editor.MsgNoSavedFile:
				return fmt.Errorf("%s: %s", c.Config.File, msg.Text)
			case msg.Level == editor.LevelError:
				return fmt.Errorf("%s", msg.Text)
			case msg.Level == editor.LevelWarning:
				c.printWarning("%s", msg.Text)
			}
			if err := s.Graph().Validate(); err != nil {
				return err
			}

			c.printSuccess("Graph is valid")
			c.printFile(s.Path())
			c.printStats(s.Graph().NodeCount(), s.Graph().EdgeCount())
			prog.done("Validated %s", s.Path())
			return nil
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

// openSession creates a session and loads the graph file. A missing file
// yields an empty graph.
func (c *CLI) openSession(ctx context.Context) (*editor.Session, error) {
	s := c.newSession()
	msg := s.Load(ctx)
	switch {
	case msg.Text == editor.MsgNoSavedFile:
		loggerFromContext(ctx).Debug("starting new graph", "path", s.Path())
	case msg.Level == editor.LevelError:
		return nil, fmt.Errorf("%s", msg.Text)
	case msg.Level == editor.LevelWarning:
		c.printWarning("%s", msg.Text)
	}
	return s, nil
}

// saveSession writes the session back to its file.
func (c *CLI) saveSession(ctx context.Context, s *editor.Session) error {
	msg := s.Save(ctx)
	switch msg.Level {
	case editor.LevelError:
		return fmt.Errorf("%s", msg.Text)
	case editor.LevelWarning:
		c.printWarning("%s", msg.Text)
	}
	return nil
}

// failed turns a rejected intent into an error.
func failed(msg editor.Message) error {
	if msg.Level == editor.LevelWarning || msg.Level == editor.LevelError {
		return fmt.Errorf("%s", msg.Text)
	}
	return nil
}

// nodeAt returns the id of the note at a printed index.
func nodeAt(s *editor.Session, arg string) (graph.NodeID, error) {
	nodes := s.Graph().Nodes().Nodes()
	i, err := parseIndex(arg, len(nodes), "note")
	if err != nil {
		return "", err
	}
	return nodes[i].ID, nil
}

// edgeAt returns the id of the edge at a printed index.
func edgeAt(s *editor.Session, arg string) (graph.EdgeID, error) {
	edges := s.Graph().Edges().Edges()
	i, err := parseIndex(arg, len(edges), "edge")
	if err != nil {
		return "", err
	}
	return edges[i].ID, nil
}

func parseIndex(arg string, n int, kind string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", kind, arg)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s index %d out of range (graph has %d)", kind, i, n)
	}
	return i, nil
}

func parseCoord(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", arg)
	}
	return v, nil
}
