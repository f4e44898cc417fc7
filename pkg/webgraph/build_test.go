package webgraph

import (
	"testing"

	"github.com/matzehuels/linkrank/pkg/errors"
)

func TestBuildRoundTrip(t *testing.T) {
	g, err := Build(
		[]PageEntry{{URL: "a.com", Keywords: []string{"x"}}, {URL: "b.com", Keywords: []string{"y"}}},
		[]LinkEntry{{Source: "a.com", Dest: "b.com"}},
	)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if r := rankOf(t, g, "b.com"); r != 1 {
		t.Errorf("rank(b.com) = %d, want 1", r)
	}
	if r := rankOf(t, g, "a.com"); r != 0 {
		t.Errorf("rank(a.com) = %d, want 0", r)
	}
	checkInvariants(t, g)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		pages []PageEntry
		links []LinkEntry
		opts  []Option
		code  errors.Code
	}{
		{
			name:  "duplicate page",
			pages: []PageEntry{{URL: "a"}, {URL: "a"}},
			code:  errors.ErrCodeMalformedInput,
		},
		{
			name:  "empty url",
			pages: []PageEntry{{URL: ""}},
			code:  errors.ErrCodeMalformedInput,
		},
		{
			name:  "unknown link source",
			pages: []PageEntry{{URL: "a"}},
			links: []LinkEntry{{Source: "x", Dest: "a"}},
			code:  errors.ErrCodeEndpointNotFound,
		},
		{
			name:  "unknown link destination",
			pages: []PageEntry{{URL: "a"}},
			links: []LinkEntry{{Source: "a", Dest: "x"}},
			code:  errors.ErrCodeEndpointNotFound,
		},
		{
			name:  "duplicate link",
			pages: []PageEntry{{URL: "a"}, {URL: "b"}},
			links: []LinkEntry{{Source: "a", Dest: "b"}, {Source: "a", Dest: "b"}},
			code:  errors.ErrCodeMalformedInput,
		},
		{
			name:  "too many pages",
			pages: []PageEntry{{URL: "a"}, {URL: "b"}},
			opts:  []Option{WithMaxPages(1)},
			code:  errors.ErrCodeCapacityExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.pages, tt.links, tt.opts...)
			if g != nil {
				t.Error("Build returned a partial graph")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	g, err := Build(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 0 || g.LinkCount() != 0 {
		t.Errorf("empty build: Len=%d LinkCount=%d", g.Len(), g.LinkCount())
	}
}
