package webgraph

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/linkrank/pkg/errors"
)

// Order selects how pages are sorted for display and search results.
type Order int

const (
	// ByIndex sorts ascending by page index (insertion order).
	ByIndex Order = iota
	// ByURL sorts ascending by URL.
	ByURL
	// ByRank sorts descending by rank. Equal ranks keep their prior order.
	ByRank
)

var orderNames = map[Order]string{
	ByIndex: "index",
	ByURL:   "url",
	ByRank:  "rank",
}

// String returns the long name of the order.
func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return "unknown"
}

// Orders lists every supported order.
func Orders() []Order { return []Order{ByIndex, ByURL, ByRank} }

// ParseOrder accepts "index", "url" and "rank", or their first letters,
// in any case. Anything else is INVALID_INPUT.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "index", "i":
		return ByIndex, nil
	case "url", "u":
		return ByURL, nil
	case "rank", "r":
		return ByRank, nil
	}
	return ByIndex, errors.New(errors.ErrCodeInvalidInput, "unknown order %q (want index, url or rank)", s)
}

// Compare returns the three-way comparison of a and b under o.
func (o Order) Compare(a, b Page) int {
	switch o {
	case ByURL:
		return strings.Compare(a.URL, b.URL)
	case ByRank:
		return cmp.Compare(b.Rank, a.Rank)
	default:
		return cmp.Compare(a.Index, b.Index)
	}
}

// Sort sorts pages in place under o. The sort is stable.
func Sort(pages []Page, o Order) {
	slices.SortStableFunc(pages, o.Compare)
}
