package webgraph

import "slices"

// Page is a snapshot of one node in the graph.
//
// Pages returned by [Graph] methods are copies: changing their fields or
// keywords does not affect the graph.
type Page struct {
	URL      string   `json:"url"`
	Index    int      `json:"index"`
	Rank     int      `json:"rank"`
	Keywords []string `json:"keywords"`
}

// HasKeyword reports whether kw is one of the page's keywords.
// Matching is exact and case-sensitive.
func (p Page) HasKeyword(kw string) bool {
	return slices.Contains(p.Keywords, kw)
}

func (p *Page) clone() Page {
	c := *p
	c.Keywords = slices.Clone(p.Keywords)
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	return c
}

// Link is a directed edge between two pages, identified by URL.
type Link struct {
	From string `json:"from"`
	To   string `json:"to"`
}
