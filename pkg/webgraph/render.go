package webgraph

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	tableHeader   = "Index     URL               PageRank  Links               Keywords"
	resultsHeader = "Rank   PageRank    URL"
)

// Render writes the pages as a table sorted by order. Each row shows the
// page index, URL, rank, the indices the page links to and its keywords.
func (g *Graph) Render(w io.Writer, order Order) error {
	var buf bytes.Buffer
	buf.WriteString(tableHeader + "\n")
	buf.WriteString(strings.Repeat("-", 99) + "\n")
	for _, p := range g.Pages(order) {
		fmt.Fprintf(&buf, "  %-3d | %-19s|    %d    | %-18s| %s\n",
			p.Index, p.URL, p.Rank, joinInts(g.links.Outgoing(p.Index)), strings.Join(p.Keywords, ", "))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderMatrix writes the raw adjacency matrix, one row per source index.
func (g *Graph) RenderMatrix(w io.Writer) error {
	var buf bytes.Buffer
	n := g.links.Len()
	buf.WriteString("  _")
	for i := 0; i < n; i++ {
		buf.WriteString(strconv.Itoa(i) + "_")
	}
	buf.WriteString("\n")
	for i := 0; i < n; i++ {
		buf.WriteString(strconv.Itoa(i) + "| ")
		for j := 0; j < n; j++ {
			if g.links.Has(i, j) {
				buf.WriteString("1 ")
			} else {
				buf.WriteString("0 ")
			}
		}
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderResults writes search results as a numbered table in the given order.
func RenderResults(w io.Writer, pages []Page) error {
	var buf bytes.Buffer
	buf.WriteString(resultsHeader + "\n")
	buf.WriteString(strings.Repeat("-", 45) + "\n")
	for i, p := range pages {
		fmt.Fprintf(&buf, "  %-3d|%4d    | %s\n", i+1, p.Rank, p.URL)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
