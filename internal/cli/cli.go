package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/buildinfo"
	"github.com/matzehuels/linkrank/pkg/config"
	lrio "github.com/matzehuels/linkrank/pkg/io"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "linkrank"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Set by persistent flags.
	configPath string
	pagesPath  string
	linksPath  string
	maxPages   int
	verbose    bool

	// cfg is the effective configuration: file values with flag overrides
	// applied. It is populated before any subcommand runs.
	cfg config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Linkrank ranks web pages by incoming links and searches them by keyword",
		Long: `Linkrank keeps a small directed graph of web pages and hyperlinks, ranks
every page by the number of pages linking to it, and answers keyword
searches with the best-ranked pages first.

The graph is loaded from two plain-text files: a pages file (URL followed by
keywords on each line) and a links file (source URL and destination URL on
each line).`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/linkrank/config.toml)")
	flags.StringVar(&c.pagesPath, "pages", "", "pages file (default from config, else pages.txt)")
	flags.StringVar(&c.linksPath, "links", "", "links file (default from config, else links.txt)")
	flags.IntVar(&c.maxPages, "max-pages", 0, "maximum number of pages, 0 for unbounded (default from config, else 40)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.printCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.shellCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup resolves the effective configuration and attaches the logger to the
// command context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path, err := c.resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("pages") {
		cfg.Pages = c.pagesPath
	}
	if flags.Changed("links") {
		cfg.Links = c.linksPath
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages = c.maxPages
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	c.Logger.Debug("Configuration loaded", "path", path, "pages", cfg.Pages, "links", cfg.Links, "max_pages", cfg.MaxPages)
	return nil
}

// setupLogger attaches the logger without reading the config file, for
// commands that must work while the file is missing or broken.
func (c *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// resolveConfigPath returns --config if given, else the XDG default.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("get config path: %w", err)
	}
	return path, nil
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph builds the graph from the configured pages and links files.
func (c *CLI) loadGraph(ctx context.Context) (*webgraph.Graph, error) {
	logger := loggerFromContext(ctx)
	logger.Debug("Loading graph", "pages", c.cfg.Pages, "links", c.cfg.Links)

	prog := newProgress(logger)
	g, err := lrio.Load(c.cfg.Pages, c.cfg.Links, webgraph.WithMaxPages(c.cfg.MaxPages))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d pages and %d links", g.Len(), g.LinkCount()))
	return g, nil
}

// defaultOrder returns the order configured in the file or by default.
func (c *CLI) defaultOrder() webgraph.Order {
	o, err := webgraph.ParseOrder(c.cfg.Order)
	if err != nil {
		return webgraph.ByIndex
	}
	return o
}

// parseOrderFlag parses an --order value, falling back to the configured
// order when the flag is empty.
func (c *CLI) parseOrderFlag(s string) (webgraph.Order, error) {
	if s == "" {
		return c.defaultOrder(), nil
	}
	return webgraph.ParseOrder(s)
}

// stdinIsTerminal reports whether r is an interactive terminal.
func stdinIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}
