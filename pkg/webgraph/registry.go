package webgraph

import (
	"slices"

	"github.com/matzehuels/linkrank/pkg/errors"
)

// registry holds the pages in index order. pages[i].Index == i always.
type registry struct {
	pages []*Page
	byURL map[string]*Page
}

func newRegistry() *registry {
	return &registry{byURL: make(map[string]*Page)}
}

func (r *registry) len() int { return len(r.pages) }

func (r *registry) find(url string) (*Page, bool) {
	p, ok := r.byURL[url]
	return p, ok
}

func (r *registry) at(index int) *Page { return r.pages[index] }

// validate reports whether url can be added. An empty URL is reported as
// DUPLICATE_URL, the same as an existing one.
func (r *registry) validate(url string) error {
	if url == "" {
		return errors.New(errors.ErrCodeDuplicateURL, "page url must not be empty")
	}
	if _, exists := r.byURL[url]; exists {
		return errors.New(errors.ErrCodeDuplicateURL, "page %q already exists", url)
	}
	return nil
}

// add appends a page with the next free index and rank 0.
func (r *registry) add(url string, keywords []string) (*Page, error) {
	if err := r.validate(url); err != nil {
		return nil, err
	}
	p := &Page{
		URL:      url,
		Index:    len(r.pages),
		Keywords: slices.Clone(keywords),
	}
	r.pages = append(r.pages, p)
	r.byURL[url] = p
	return p, nil
}

// indexOf returns the index of url, or PAGE_NOT_FOUND.
func (r *registry) indexOf(url string) (int, error) {
	p, ok := r.byURL[url]
	if !ok {
		return -1, errors.New(errors.ErrCodePageNotFound, "page %q not found", url)
	}
	return p.Index, nil
}

// remove drops the page at index k and renumbers every later page.
func (r *registry) remove(k int) {
	delete(r.byURL, r.pages[k].URL)
	r.pages = slices.Delete(r.pages, k, k+1)
	for _, p := range r.pages[k:] {
		p.Index--
	}
}

func (r *registry) clone() *registry {
	c := &registry{
		pages: make([]*Page, len(r.pages)),
		byURL: make(map[string]*Page, len(r.pages)),
	}
	for i, p := range r.pages {
		cp := p.clone()
		c.pages[i] = &cp
		c.byURL[cp.URL] = &cp
	}
	return c
}
