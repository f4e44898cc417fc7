// Package io reads linkrank input files and exports graphs as JSON.
//
// # Input Format
//
// A graph is described by two plain-text files. The pages file has one page
// per line: the URL followed by zero or more keywords, all separated by
// whitespace:
//
//	a.com go graphs
//	b.com go
//	c.com
//
// The links file has one directed link per line, source URL then
// destination URL:
//
//	a.com b.com
//	c.com b.com
//
// Blank lines are ignored in both files. A links line with any other number
// of tokens is MALFORMED_INPUT and the error names the line.
//
// # Import
//
// Use [Load] to read both files and build a graph in one step, or
// [ReadPages] and [ReadLinks] with [webgraph.Build] to work from any
// io.Reader:
//
//	g, err := io.Load("pages.txt", "links.txt", webgraph.WithMaxPages(40))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Loading never returns a partial graph.
//
// # Export
//
// [WriteJSON] writes pages (in index order, with rank) and links:
//
//	{
//	  "pages": [{"url": "a.com", "index": 0, "rank": 0, "keywords": ["go"]}],
//	  "links": [{"from": "a.com", "to": "b.com"}]
//	}
//
// There is no JSON import: the text files are the only source of graph state.
package io
