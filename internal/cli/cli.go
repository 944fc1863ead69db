package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notegraph/internal/config"
	"github.com/matzehuels/notegraph/internal/editor"
	"github.com/matzehuels/notegraph/pkg/buildinfo"
	"github.com/matzehuels/notegraph/pkg/graph"
	"github.com/matzehuels/notegraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "notegraph"

	// moveStep is how far one keypress or unit moves a note.
	moveStep = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
	Out    io.Writer // command output, os.Stdout by default

	flags globalFlags
}

// globalFlags are the persistent flags that override config file values.
type globalFlags struct {
	config   string
	file     string
	verbose  bool
	strict   bool
	geometry bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Notegraph edits graphs of short text notes",
		Long:         `Notegraph is a small editor for graphs of short text notes connected by directed edges. Graphs are stored as a single JSON file.`,
		Version:      buildinfo.Current().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.config, "config", "", "config file (default: "+config.DefaultFile+" if present)")
	pf.StringVarP(&c.flags.file, "file", "f", "", "graph file (default: "+config.DefaultGraphFile+")")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&c.flags.strict, "strict", false, "reject files holding out-of-policy note text")
	pf.BoolVar(&c.flags.geometry, "geometry", false, "resolve edge endpoints from drawn positions when saving")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configure loads the config file and applies flags set on the command line.
func (c *CLI) configure(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := config.Load(c.flags.config, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("file") {
		cfg.File = c.flags.file
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.flags.verbose
	}
	if flags.Changed("strict") {
		cfg.Strict = c.flags.strict
	}
	if flags.Changed("geometry") {
		cfg.ResolveByGeometry = c.flags.geometry
	}
	c.Config = cfg

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	for _, key := range cfg.Unknown {
		c.Logger.Warn("unknown config key", "key", key)
	}
	observability.SetEditorHooks(logHooks{logger: c.Logger})
	return nil
}

// newSession creates an editor session for the configured graph file.
func (c *CLI) newSession() *editor.Session {
	return editor.New(c.Config.File,
		editor.WithLogger(c.Logger),
		editor.WithCodecOptions(c.Config.CodecOptions()),
		editor.WithGraph(graph.New(graph.WithOrigin(c.Config.Origin()))),
	)
}
