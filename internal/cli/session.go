package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/service"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// step is the question the next input line answers.
type step int

const (
	stepMenu step = iota
	stepAddURL
	stepAddKeywords
	stepRemoveURL
	stepLinkSource
	stepLinkDest
	stepPrintOrder
	stepSearch
)

const menuText = `Menu:
    (AP) - Add a new page to the graph.
    (RP) - Remove a page from the graph.
    (AL) - Add a link between pages in the graph.
    (RL) - Remove a link between pages in the graph.
    (P)  - Print the graph.
    (M)  - Print the link matrix.
    (S)  - Search for pages with a keyword.
    (H)  - Show this menu.
    (Q)  - Quit.`

const orderText = `    (I) Sort based on index (ASC)
    (U) Sort based on URL (ASC)
    (R) Sort based on rank (DSC)`

// session drives the interactive menu one input line at a time. It holds no
// terminal state, so the line-based shell and the full-screen shell share it.
type session struct {
	svc  *service.Service
	step step

	// op is the menu command being answered ("ap", "al", "rl").
	op string
	// args collects answers to earlier prompts of the current command.
	args []string

	done bool
}

func newSession(svc *service.Service) *session {
	return &session{svc: svc}
}

// prompt returns the text shown before the next input line.
func (s *session) prompt() string {
	switch s.step {
	case stepAddURL, stepRemoveURL:
		return "Enter a URL: "
	case stepAddKeywords:
		return "Enter keywords (space-separated): "
	case stepLinkSource:
		return "Enter a source URL: "
	case stepLinkDest:
		return "Enter a destination URL: "
	case stepPrintOrder:
		return "Sort by (I/U/R): "
	case stepSearch:
		return "Search keyword: "
	}
	return "Please select an option: "
}

// feed processes one input line and writes any resulting output to w.
func (s *session) feed(ctx context.Context, line string, w io.Writer) {
	line = strings.TrimSpace(line)
	switch s.step {
	case stepMenu:
		s.menu(line, w)
	case stepAddURL:
		if err := errors.ValidateURL(line); err != nil {
			s.fail(w, err)
			return
		}
		s.args = []string{line}
		s.step = stepAddKeywords
	case stepAddKeywords:
		url := s.args[0]
		if err := s.svc.AddPage(ctx, url, strings.Fields(line)); err != nil {
			s.fail(w, err)
			return
		}
		printSuccess(w, "%s successfully added to the graph", StyleLink.Render(url))
		s.reset()
	case stepRemoveURL:
		if err := s.svc.RemovePage(ctx, line); err != nil {
			s.fail(w, err)
			return
		}
		printSuccess(w, "%s has been removed from the graph", StyleLink.Render(line))
		s.reset()
	case stepLinkSource:
		s.args = []string{line}
		s.step = stepLinkDest
	case stepLinkDest:
		s.link(ctx, s.args[0], line, w)
	case stepPrintOrder:
		order, err := webgraph.ParseOrder(line)
		if err != nil {
			printErr(w, err)
			order = webgraph.ByIndex
		}
		s.printTable(order, w)
		s.reset()
	case stepSearch:
		s.search(ctx, line, w)
		s.reset()
	}
}

func (s *session) menu(cmd string, w io.Writer) {
	s.op = strings.ToLower(cmd)
	switch s.op {
	case "ap":
		s.step = stepAddURL
	case "rp":
		s.step = stepRemoveURL
	case "al", "rl":
		s.step = stepLinkSource
	case "p":
		fmt.Fprintln(w, orderText)
		s.step = stepPrintOrder
	case "m":
		if err := s.svc.View(func(g *webgraph.Graph) error { return g.RenderMatrix(w) }); err != nil {
			printErr(w, err)
		}
	case "s":
		s.step = stepSearch
	case "h", "help", "?":
		fmt.Fprintln(w, menuText)
	case "q", "quit", "exit":
		s.done = true
	case "":
	default:
		printError(w, "Invalid input %q, type H for the menu", cmd)
	}
}

func (s *session) link(ctx context.Context, src, dst string, w io.Writer) {
	defer s.reset()
	if s.op == "al" {
		if err := s.svc.AddLink(ctx, src, dst); err != nil {
			printErr(w, err)
			return
		}
		printSuccess(w, "Link added from %s to %s", StyleLink.Render(src), StyleLink.Render(dst))
		return
	}
	if err := s.svc.RemoveLink(ctx, src, dst); err != nil {
		printErr(w, err)
		return
	}
	printSuccess(w, "Link removed from %s to %s", StyleLink.Render(src), StyleLink.Render(dst))
}

func (s *session) printTable(order webgraph.Order, w io.Writer) {
	if err := s.svc.View(func(g *webgraph.Graph) error { return g.Render(w, order) }); err != nil {
		printErr(w, err)
	}
}

func (s *session) search(ctx context.Context, keyword string, w io.Writer) {
	results := s.svc.Search(ctx, keyword)
	if len(results) == 0 {
		printInfo(w, "No search results found for the keyword %s.", keyword)
		return
	}
	if err := webgraph.RenderResults(w, results); err != nil {
		printErr(w, err)
	}
}

func (s *session) fail(w io.Writer, err error) {
	printErr(w, err)
	s.reset()
}

func (s *session) reset() {
	s.step = stepMenu
	s.op = ""
	s.args = nil
}
