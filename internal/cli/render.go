package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/render"
)

const (
	renderDOT = "dot"
	renderSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format    string // output format: "dot" or "svg"
	output    string // output file, stdout when empty
	highlight string // keyword whose pages are filled
	keywords  bool   // include keywords in node labels
}

// renderCommand creates the render command for drawing the graph.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: renderDOT}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the graph as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != renderDOT && opts.format != renderSVG {
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", opts.format)
			}
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.highlight, "highlight", "", "fill pages carrying this keyword")
	cmd.Flags().BoolVar(&opts.keywords, "keywords", false, "show keywords in node labels")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{renderDOT, renderSVG}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	g, err := c.loadGraph(ctx)
	if err != nil {
		return err
	}

	data := []byte(render.ToDOT(g, render.Options{Highlight: opts.highlight, Keywords: opts.keywords}))
	if opts.format == renderSVG {
		spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering SVG...")
		spinner.Start()
		svg, err := render.RenderSVG(ctx, string(data))
		spinner.Stop()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		data = svg
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(cmd.ErrOrStderr(), "Rendered %d pages", g.Len())
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}
