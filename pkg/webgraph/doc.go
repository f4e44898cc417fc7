// Package webgraph provides the page/link graph behind linkrank.
//
// # Overview
//
// A [Graph] holds a set of web pages, each identified by its URL, and the
// directed links between them. Every page carries a dense index (0..N-1,
// in insertion order), its keywords and a rank. The rank is the page's
// in-degree: the number of distinct pages that link to it. It is recomputed
// from scratch after every mutation, so it never drifts from the link data.
//
// # Basic Usage
//
// Build a graph from parsed input with [Build], or start empty with [New]:
//
//	g := webgraph.New()
//	g.AddPage("a.com", []string{"go"})
//	g.AddPage("b.com", []string{"go", "graphs"})
//	g.AddLink("a.com", "b.com")
//
//	for _, p := range g.Search("go") {
//	    fmt.Println(p.URL, p.Rank) // b.com 1, then a.com 0
//	}
//
// # Index Compaction
//
// Links are stored in a square boolean [Matrix] addressed by page index.
// Removing a page deletes its row and column and shifts every higher index
// down by one, in the page registry and in both matrix dimensions. The
// compacted matrix is built in a fresh buffer and swapped in only once it is
// complete, so a failed removal never leaves the two structures out of step.
//
// # Ordering
//
// Read operations return copies sorted by an [Order]: [ByIndex], [ByURL] or
// [ByRank]. Sorting is stable, so pages with equal rank keep their index
// order. [Graph.Search] always orders by rank.
//
// # Errors
//
// Failures carry codes from the linkrank errors package (DUPLICATE_URL,
// PAGE_NOT_FOUND, ENDPOINT_NOT_FOUND, DUPLICATE_LINK, CAPACITY_EXCEEDED,
// MALFORMED_INPUT). [Graph.RemoveLink] on a link that does not exist is not
// an error.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Wrap it in the service package to
// share one graph between goroutines.
package webgraph
