// Package server exposes a service.Service over HTTP.
//
// # Routes
//
//	GET    /pages?order=index|url|rank   list pages
//	POST   /pages                        add a page: {"url": "...", "keywords": [...]}
//	DELETE /pages?url=                   remove a page
//	GET    /links                        list links
//	POST   /links                        add a link: {"from": "...", "to": "..."}
//	DELETE /links?from=&to=              remove a link (no-op when absent)
//	GET    /search?q=                    pages carrying the keyword, best rank first
//	GET    /matrix                       raw adjacency matrix as text
//	GET    /graph                        pages and links as one JSON document
//	GET    /healthz                      liveness and graph size
//	GET    /metrics                      Prometheus exposition, when enabled
//
// Failures are returned as {"error": {"code": "...", "message": "..."}} with a
// status derived from the error code: duplicates are 409, unknown pages 404,
// a full graph 422 and malformed or invalid input 400.
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a random UUID is generated.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/linkrank/pkg/observability"
	"github.com/matzehuels/linkrank/pkg/service"
)

// DefaultShutdownTimeout bounds graceful shutdown when Options leaves it unset.
const DefaultShutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Addr is the TCP listen address, e.g. ":8080".
	Addr string

	// ShutdownTimeout bounds how long in-flight requests may run after the
	// serve context is cancelled.
	ShutdownTimeout time.Duration

	// Metrics, when set, is served at /metrics.
	Metrics *observability.Prometheus

	// Logger receives one line per request. Defaults to log.Default().
	Logger *log.Logger
}

// Server is the HTTP front end of a graph service.
type Server struct {
	svc     *service.Service
	opts    Options
	logger  *log.Logger
	handler http.Handler
}

// New creates a Server for svc.
func New(svc *service.Service, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, opts: opts, logger: logger}
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/pages", s.handleListPages)
	r.Post("/pages", s.handleAddPage)
	r.Delete("/pages", s.handleRemovePage)
	r.Get("/links", s.handleListLinks)
	r.Post("/links", s.handleAddLink)
	r.Delete("/links", s.handleRemoveLink)
	r.Get("/search", s.handleSearch)
	r.Get("/matrix", s.handleMatrix)
	r.Get("/graph", s.handleGraph)
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())
	}
	return r
}

// ListenAndServe listens on Options.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("Listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down", "timeout", s.opts.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errc
	return nil
}
