// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends to the graph code.
// Consumers register hooks at startup and receive events about graph
// mutations, searches and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// [Prometheus] is the bundled implementation.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    prom := observability.NewPrometheus()
//	    observability.SetGraphHooks(prom)
//	    observability.SetHTTPHooks(prom)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	err := g.AddPage(url, keywords)
//	observability.Graph().OnMutation(ctx, "add_page", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Mutation operation names passed to [GraphHooks.OnMutation].
const (
	OpAddPage    = "add_page"
	OpRemovePage = "remove_page"
	OpAddLink    = "add_link"
	OpRemoveLink = "remove_link"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from the shared graph service.
type GraphHooks interface {
	// OnMutation records a completed mutation; err is nil on success.
	OnMutation(ctx context.Context, op string, duration time.Duration, err error)

	// OnSearch records a keyword search and its result count.
	OnSearch(ctx context.Context, keyword string, results int, duration time.Duration)

	// OnSnapshot records the size of a newly published graph snapshot.
	OnSnapshot(ctx context.Context, pages, links int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response sent for a request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnMutation(context.Context, string, time.Duration, error) {}
func (NoopGraphHooks) OnSearch(context.Context, string, int, time.Duration)     {}
func (NoopGraphHooks) OnSnapshot(context.Context, int, int)                     {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before the service is used.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	httpHooks = NoopHTTPHooks{}
}
