// Package pkg provides the libraries behind linkrank.
//
// # Overview
//
// Linkrank keeps a directed graph of web pages and hyperlinks, ranks each
// page by its number of incoming links and answers keyword searches with the
// best-ranked pages first. The pkg directory is organized as:
//
//  1. [webgraph] - Graph engine (pages, link matrix, ranks, search, ordering)
//  2. [io] - Input files and JSON export
//  3. [service] - Concurrency-safe wrapper publishing immutable snapshots
//  4. [server] - HTTP JSON API over a service
//  5. [render] - Graphviz DOT and SVG diagrams
//  6. [config] - TOML configuration
//  7. [observability] - Hooks and Prometheus metrics
//  8. [errors] - Coded errors shared by every layer
//
// # Architecture
//
//	pages.txt + links.txt
//	         ↓
//	    [io] package (parse, then webgraph.Build)
//	         ↓
//	    [webgraph] package (mutations, ranks, search)
//	         ↓
//	    CLI output, [service] + [server], or [render]
//
// # Quick Start
//
//	g, err := io.Load("pages.txt", "links.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = g.AddLink("a.com", "b.com")
//	for _, p := range g.Search("news") {
//	    fmt.Println(p.URL, p.Rank)
//	}
//
// [webgraph]: github.com/matzehuels/linkrank/pkg/webgraph
// [io]: github.com/matzehuels/linkrank/pkg/io
// [service]: github.com/matzehuels/linkrank/pkg/service
// [server]: github.com/matzehuels/linkrank/pkg/server
// [render]: github.com/matzehuels/linkrank/pkg/render
// [config]: github.com/matzehuels/linkrank/pkg/config
// [observability]: github.com/matzehuels/linkrank/pkg/observability
// [errors]: github.com/matzehuels/linkrank/pkg/errors
package pkg
