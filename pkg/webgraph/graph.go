package webgraph

import (
	"github.com/matzehuels/linkrank/pkg/errors"
)

// DefaultMaxPages is the page limit used when no [WithMaxPages] option is given.
const DefaultMaxPages = 40

// Option configures a [Graph].
type Option func(*Graph)

// WithMaxPages sets the maximum number of pages. Zero or a negative value
// removes the limit.
func WithMaxPages(n int) Option {
	return func(g *Graph) { g.maxPages = n }
}

// Graph is a directed graph of web pages with in-degree ranks.
//
// Every mutation updates the page registry and the link matrix together
// and then recomputes all ranks. A mutation that returns an error leaves
// the graph exactly as it was.
//
// The zero value is not usable - use [New] or [Build].
type Graph struct {
	reg      *registry
	links    *Matrix
	maxPages int
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		reg:      newRegistry(),
		links:    NewMatrix(0),
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxPages returns the page limit, or 0 when the graph is unbounded.
func (g *Graph) MaxPages() int {
	if g.maxPages < 0 {
		return 0
	}
	return g.maxPages
}

// AddPage adds a page with the next free index.
//
// Returns DUPLICATE_URL if url is empty or already present, and
// CAPACITY_EXCEEDED if the graph is full.
func (g *Graph) AddPage(url string, keywords []string) error {
	if err := g.reg.validate(url); err != nil {
		return err
	}
	if limit := g.MaxPages(); limit > 0 && g.reg.len() >= limit {
		return errors.New(errors.ErrCodeCapacityExceeded, "graph is full (%d pages)", limit)
	}
	if _, err := g.reg.add(url, keywords); err != nil {
		return err
	}
	g.links.Grow()
	g.RecomputeRanks()
	return nil
}

// RemovePage deletes the page and every link into or out of it. Pages after
// it have their index decremented, keeping indices dense.
//
// Returns PAGE_NOT_FOUND if url is not in the graph.
func (g *Graph) RemovePage(url string) error {
	k, err := g.reg.indexOf(url)
	if err != nil {
		return err
	}
	if err := g.links.Compact(k); err != nil {
		return err
	}
	g.reg.remove(k)
	g.RecomputeRanks()
	return nil
}

// AddLink adds a directed link from src to dst.
//
// Returns ENDPOINT_NOT_FOUND if either URL is not a page, and
// DUPLICATE_LINK if the link already exists.
func (g *Graph) AddLink(src, dst string) error {
	s, d, err := g.endpoints(src, dst)
	if err != nil {
		return err
	}
	if err := g.links.Add(s, d); err != nil {
		if errors.Is(err, errors.ErrCodeDuplicateLink) {
			return errors.New(errors.ErrCodeDuplicateLink, "link %s -> %s already exists", src, dst)
		}
		return err
	}
	g.RecomputeRanks()
	return nil
}

// RemoveLink removes the link from src to dst if it exists. Removing a link
// that does not exist succeeds without changing anything.
//
// Returns ENDPOINT_NOT_FOUND if either URL is not a page.
func (g *Graph) RemoveLink(src, dst string) error {
	s, d, err := g.endpoints(src, dst)
	if err != nil {
		return err
	}
	if err := g.links.Remove(s, d); err != nil {
		return err
	}
	g.RecomputeRanks()
	return nil
}

func (g *Graph) endpoints(src, dst string) (int, int, error) {
	s, ok := g.reg.find(src)
	if !ok {
		return -1, -1, errors.New(errors.ErrCodeEndpointNotFound, "source page %q not found", src)
	}
	d, ok := g.reg.find(dst)
	if !ok {
		return -1, -1, errors.New(errors.ErrCodeEndpointNotFound, "destination page %q not found", dst)
	}
	return s.Index, d.Index, nil
}

// RecomputeRanks sets every page's rank to its in-degree.
// Ranks are always recomputed in full; nothing is carried over.
func (g *Graph) RecomputeRanks() {
	for i := 0; i < g.reg.len(); i++ {
		g.reg.at(i).Rank = g.links.InDegree(i)
	}
}

// Search returns the pages that have keyword, ordered by rank descending.
// Pages with equal rank keep their index order. An empty keyword or a
// keyword with no matches yields an empty slice.
func (g *Graph) Search(keyword string) []Page {
	results := make([]Page, 0)
	if keyword == "" {
		return results
	}
	for _, p := range g.reg.pages {
		if p.HasKeyword(keyword) {
			results = append(results, p.clone())
		}
	}
	Sort(results, ByRank)
	return results
}

// Pages returns a copy of all pages sorted by order.
func (g *Graph) Pages(order Order) []Page {
	pages := make([]Page, g.reg.len())
	for i, p := range g.reg.pages {
		pages[i] = p.clone()
	}
	Sort(pages, order)
	return pages
}

// Page returns a copy of the page with url.
func (g *Graph) Page(url string) (Page, bool) {
	p, ok := g.reg.find(url)
	if !ok {
		return Page{}, false
	}
	return p.clone(), true
}

// Len returns the number of pages.
func (g *Graph) Len() int { return g.reg.len() }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return g.links.EdgeCount() }

// HasLink reports whether src links to dst.
func (g *Graph) HasLink(src, dst string) bool {
	s, d, err := g.endpoints(src, dst)
	return err == nil && g.links.Has(s, d)
}

// Links returns all links ordered by source index, then destination index.
func (g *Graph) Links() []Link {
	links := make([]Link, 0, g.links.EdgeCount())
	for i, p := range g.reg.pages {
		for _, j := range g.links.Outgoing(i) {
			links = append(links, Link{From: p.URL, To: g.reg.at(j).URL})
		}
	}
	return links
}

// Outgoing returns the indices of the pages that url links to.
func (g *Graph) Outgoing(url string) []int {
	p, ok := g.reg.find(url)
	if !ok {
		return nil
	}
	return g.links.Outgoing(p.Index)
}

// Matrix returns a copy of the link matrix.
func (g *Graph) Matrix() *Matrix { return g.links.Clone() }

// Clone returns a deep copy that shares no state with g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		reg:      g.reg.clone(),
		links:    g.links.Clone(),
		maxPages: g.maxPages,
	}
}
