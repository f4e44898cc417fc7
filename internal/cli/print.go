package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/errors"
	lrio "github.com/matzehuels/linkrank/pkg/io"
)

// Output formats shared by print and search.
const (
	formatTable  = "table"
	formatPlain  = "plain"
	formatMatrix = "matrix"
	formatJSON   = "json"
)

// printCommand creates the print command.
func (c *CLI) printCommand() *cobra.Command {
	var orderStr, format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print every page with its rank, links and keywords",
		Long: `Print every page with its index, rank, outgoing links and keywords.

Pages are sorted by --order: index (ascending), url (ascending) or rank
(descending, ties in index order). Formats:

  table   bordered table (default)
  plain   fixed-width text table
  matrix  raw 0/1 link matrix, one row per source index
  json    pages and links as a JSON document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := c.parseOrderFlag(orderStr)
			if err != nil {
				return err
			}
			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case formatTable:
				fmt.Fprintln(w, pageTable(g, g.Pages(order)))
				printStats(w, g.Len(), g.LinkCount())
				return nil
			case formatPlain:
				return g.Render(w, order)
			case formatMatrix:
				return g.RenderMatrix(w)
			case formatJSON:
				return lrio.WriteDocument(lrio.NewDocument(g, order), w)
			}
			return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table, plain, matrix or json)", format)
		},
	}

	cmd.Flags().StringVarP(&orderStr, "order", "r", "", "sort order: index, url, rank (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, plain, matrix, json")
	_ = cmd.RegisterFlagCompletionFunc("order", orderCompletion)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTable, formatPlain, formatMatrix, formatJSON}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
