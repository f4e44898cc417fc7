package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/service"
)

// shellCommand creates the interactive shell command.
func (c *CLI) shellCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit and search the graph interactively",
		Long: `Load the graph and edit or search it from an interactive menu:

  AP  add a page          RP  remove a page
  AL  add a link          RL  remove a link
  P   print the graph     M   print the link matrix
  S   search by keyword   Q   quit

Commands are case-insensitive. Changes live in memory only; the input files
are never written.

On a terminal the shell runs full-screen. When stdin is not a terminal, or
with --plain, commands and answers are read one per line, which makes the
shell scriptable:

  printf 's\nnews\nq\n' | linkrank shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}
			svc := service.New(g, loggerFromContext(ctx))

			in := cmd.InOrStdin()
			if plain || !stdinIsTerminal(in) {
				return runLineShell(ctx, svc, in, cmd.OutOrStdout())
			}
			return runTUIShell(ctx, svc)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "read commands line by line even on a terminal")

	return cmd
}

// runLineShell reads commands from in until "q" or end of input.
func runLineShell(ctx context.Context, svc *service.Service, in io.Reader, out io.Writer) error {
	sess := newSession(svc)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, menuText)
	fmt.Fprintln(out)
	for !sess.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, sess.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		sess.feed(ctx, scanner.Text(), out)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye.")
	return nil
}

// runTUIShell runs the full-screen shell on the terminal.
func runTUIShell(ctx context.Context, svc *service.Service) error {
	p := tea.NewProgram(newShellModel(ctx, newSession(svc)), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
