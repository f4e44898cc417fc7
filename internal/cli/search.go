package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search KEYWORD",
		Short: "List pages carrying a keyword, best rank first",
		Long: `List pages whose keywords include KEYWORD exactly (case-sensitive).

Results are ordered by rank, highest first; pages with equal rank keep their
index order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatPlain, formatJSON:
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table, plain or json)", format)
			}

			g, err := c.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			keyword := args[0]
			results := g.Search(keyword)
			loggerFromContext(cmd.Context()).Debug("Search", "keyword", keyword, "results", len(results))

			w := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case formatPlain:
				if len(results) == 0 {
					fmt.Fprintf(w, "No search results found for the keyword %s.\n", keyword)
					return nil
				}
				return webgraph.RenderResults(w, results)
			}

			if len(results) == 0 {
				printInfo(w, "No search results found for the keyword %s", StyleHighlight.Render(keyword))
				return nil
			}
			fmt.Fprintln(w, resultTable(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, plain, json")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTable, formatPlain, formatJSON}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
