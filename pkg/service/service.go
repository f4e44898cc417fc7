// Package service shares one webgraph.Graph between goroutines.
//
// Mutations are serialized: only one runs at a time, and each completes
// (including rank recompute and matrix compaction) before the next starts.
// After every successful mutation the service publishes an immutable copy of
// the graph. Reads are served from that copy without taking the write lock,
// so a reader never sees a half-applied change and never blocks a writer.
//
// Every mutation and search is reported to the hooks registered in the
// observability package.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkrank/pkg/observability"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// Service serializes writes to a graph and serves reads from snapshots.
type Service struct {
	mu     sync.Mutex
	graph  *webgraph.Graph
	snap   atomic.Pointer[webgraph.Graph]
	logger *log.Logger
}

// Stats summarizes the current snapshot.
type Stats struct {
	Pages    int `json:"pages"`
	Links    int `json:"links"`
	MaxPages int `json:"max_pages"`
}

// New takes ownership of g. The caller must not use g afterwards.
// If logger is nil, log.Default() is used.
func New(g *webgraph.Graph, logger *log.Logger) *Service {
	if g == nil {
		g = webgraph.New()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Service{graph: g, logger: logger}
	s.publish(context.Background())
	return s
}

func (s *Service) publish(ctx context.Context) {
	snap := s.graph.Clone()
	s.snap.Store(snap)
	observability.Graph().OnSnapshot(ctx, snap.Len(), snap.LinkCount())
}

func (s *Service) mutate(ctx context.Context, op string, fn func(*webgraph.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := fn(s.graph)
	observability.Graph().OnMutation(ctx, op, time.Since(start), err)
	if err != nil {
		s.logger.Debug("mutation rejected", "op", op, "err", err)
		return err
	}
	s.publish(ctx)
	s.logger.Debug("mutation applied", "op", op, "pages", s.graph.Len(), "links", s.graph.LinkCount())
	return nil
}

// AddPage adds a page. See [webgraph.Graph.AddPage].
func (s *Service) AddPage(ctx context.Context, url string, keywords []string) error {
	return s.mutate(ctx, observability.OpAddPage, func(g *webgraph.Graph) error {
		return g.AddPage(url, keywords)
	})
}

// RemovePage removes a page. See [webgraph.Graph.RemovePage].
func (s *Service) RemovePage(ctx context.Context, url string) error {
	return s.mutate(ctx, observability.OpRemovePage, func(g *webgraph.Graph) error {
		return g.RemovePage(url)
	})
}

// AddLink adds a link. See [webgraph.Graph.AddLink].
func (s *Service) AddLink(ctx context.Context, src, dst string) error {
	return s.mutate(ctx, observability.OpAddLink, func(g *webgraph.Graph) error {
		return g.AddLink(src, dst)
	})
}

// RemoveLink removes a link if present. See [webgraph.Graph.RemoveLink].
func (s *Service) RemoveLink(ctx context.Context, src, dst string) error {
	return s.mutate(ctx, observability.OpRemoveLink, func(g *webgraph.Graph) error {
		return g.RemoveLink(src, dst)
	})
}

// Search runs a keyword search against the current snapshot.
func (s *Service) Search(ctx context.Context, keyword string) []webgraph.Page {
	start := time.Now()
	results := s.snap.Load().Search(keyword)
	observability.Graph().OnSearch(ctx, keyword, len(results), time.Since(start))
	return results
}

// Pages returns the pages of the current snapshot sorted by order.
func (s *Service) Pages(order webgraph.Order) []webgraph.Page {
	return s.snap.Load().Pages(order)
}

// Page looks up one page in the current snapshot.
func (s *Service) Page(url string) (webgraph.Page, bool) {
	return s.snap.Load().Page(url)
}

// Links returns the links of the current snapshot.
func (s *Service) Links() []webgraph.Link {
	return s.snap.Load().Links()
}

// Stats returns page and link counts of the current snapshot.
func (s *Service) Stats() Stats {
	g := s.snap.Load()
	return Stats{Pages: g.Len(), Links: g.LinkCount(), MaxPages: g.MaxPages()}
}

// Snapshot returns a private copy of the current graph. Changes to it do
// not affect the service.
func (s *Service) Snapshot() *webgraph.Graph {
	return s.snap.Load().Clone()
}

// View calls fn with the current snapshot. fn must only read from it.
func (s *Service) View(fn func(g *webgraph.Graph) error) error {
	return fn(s.snap.Load())
}
