// Package render draws a web graph as a node-link diagram.
//
// [ToDOT] produces Graphviz DOT source with one node per page, labelled
// with its URL and rank, and one edge per link. [RenderSVG] lays that
// source out in-process with [github.com/goccy/go-graphviz]:
//
//	dot := render.ToDOT(g, render.Options{Highlight: "news"})
//	svg, err := render.RenderSVG(ctx, dot)
//
// The DOT output is plain text and can also be saved and passed to the
// external Graphviz tools.
package render
