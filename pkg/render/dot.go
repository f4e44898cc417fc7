package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// Options configures diagram generation.
type Options struct {
	// Highlight fills pages carrying this keyword. Empty highlights nothing.
	Highlight string

	// Keywords appends each page's keywords to its label.
	Keywords bool
}

// ToDOT converts g to Graphviz DOT. Nodes are emitted in index order and
// edges in source-then-destination index order, so equal graphs produce
// identical output.
func ToDOT(g *webgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph linkrank {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range g.Pages(webgraph.ByIndex) {
		fmt.Fprintf(&buf, "  %q [%s];\n", p.URL, strings.Join(fmtAttrs(p, opts), ", "))
	}

	buf.WriteString("\n")
	for _, l := range g.Links() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.From, l.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p webgraph.Page, withKeywords bool) string {
	label := fmt.Sprintf("%s\nrank %d", p.URL, p.Rank)
	if withKeywords && len(p.Keywords) > 0 {
		label += "\n" + strings.Join(p.Keywords, " ")
	}
	return label
}

func fmtAttrs(p webgraph.Page, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(p, opts.Keywords))}
	if opts.Highlight != "" && p.HasKeyword(opts.Highlight) {
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	}
	return attrs
}

// RenderSVG lays out a DOT graph and returns it as SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one
// whose width and height match the viewBox, so browsers scale it cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
