package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notegraph/internal/editor"
)

// editCommand opens the interactive editor on the graph file.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the graph interactively",
		Long: `Edit the graph interactively in the terminal.

The graph file is loaded on start. A missing file starts an empty graph.
Changes are written only when you save with 's'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := c.newSession()

			m := NewEditorModel(ctx, s)
			m.status = s.Load(ctx)
			if m.status.Text == editor.MsgNoSavedFile {
				m.status = editor.Message{}
			}

			// The TUI owns the terminal; keep log lines out of the way.
			level := c.Logger.GetLevel()
			c.SetLogLevel(LogError)
			defer c.SetLogLevel(level)

			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			if em, ok := final.(EditorModel); ok && em.dirty {
				c.printWarning("Quit with unsaved changes")
			}
			return nil
		},
	}
}
