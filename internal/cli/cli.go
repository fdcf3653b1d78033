package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wlang/wmap"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version     string
	verbose     bool
	maxCount    int
	initialized bool
	logger      *slog.Logger
	rootCmd     *cobra.Command
}

// New creates a new CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	c.setupCommands()
	return c
}

// setupCommands initializes all CLI commands and their configurations.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:   "wlang",
		Short: "Weighted language toolkit over JSON pair files",
		Long: `wlang reads weighted languages stored as JSON arrays of
{"sequence": "...", "weight": <log weight>} objects ("-Inf" is weight zero).
A file argument of "-" reads standard input.`,
		Version:      c.version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initApp(cmd.ErrOrStderr())
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().IntVar(&c.maxCount, "max-count", wmap.DefaultMaxSupportCount, "Largest support to enumerate")

	c.rootCmd.AddCommand(c.newNormalizeCommand())
	c.rootCmd.AddCommand(c.newSumCommand())
	c.rootCmd.AddCommand(c.newProductCommand())
	c.rootCmd.AddCommand(c.newSupportCommand())
	c.rootCmd.AddCommand(c.newValueCommand())
	c.rootCmd.AddCommand(c.newSimilarityCommand())
	c.rootCmd.AddCommand(c.newBestCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

// RunArgs executes the CLI with explicit arguments and streams.
func (c *CLI) RunArgs(args []string, in io.Reader, out, errOut io.Writer) error {
	c.rootCmd.SetArgs(args)
	c.rootCmd.SetIn(in)
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
	return c.rootCmd.Execute()
}

// initApp initializes logging.
func (c *CLI) initApp(w io.Writer) {
	if c.initialized {
		return
	}
	c.initialized = true

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c *CLI) family() *wmap.Family[string, rune] {
	return wmap.Strings(wmap.WithLogger(c.logger))
}
