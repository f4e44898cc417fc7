package webgraph

import "github.com/matzehuels/linkrank/pkg/errors"

// PageEntry is one parsed line of a pages file.
type PageEntry struct {
	URL      string
	Keywords []string
}

// LinkEntry is one parsed line of a links file.
type LinkEntry struct {
	Source string
	Dest   string
}

// Build creates a graph from parsed page and link entries, in order.
//
// A duplicate or empty page URL, or a repeated link, fails with
// MALFORMED_INPUT wrapping the engine error. A link to a URL that is not
// in pages fails with ENDPOINT_NOT_FOUND. CAPACITY_EXCEEDED is returned
// unchanged. No graph is returned on error.
func Build(pages []PageEntry, links []LinkEntry, opts ...Option) (*Graph, error) {
	g := New(opts...)
	for i, p := range pages {
		if err := g.AddPage(p.URL, p.Keywords); err != nil {
			if errors.Is(err, errors.ErrCodeCapacityExceeded) {
				return nil, err
			}
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "page entry %d", i+1)
		}
	}
	for i, l := range links {
		if err := g.AddLink(l.Source, l.Dest); err != nil {
			if errors.Is(err, errors.ErrCodeEndpointNotFound) {
				return nil, errors.Wrap(errors.ErrCodeEndpointNotFound, err, "link entry %d", i+1)
			}
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "link entry %d", i+1)
		}
	}
	return g, nil
}
