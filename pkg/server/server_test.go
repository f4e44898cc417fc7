package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/observability"
	"github.com/matzehuels/linkrank/pkg/service"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	g, err := webgraph.Build(
		[]webgraph.PageEntry{
			{URL: "a.com", Keywords: []string{"news"}},
			{URL: "b.com", Keywords: []string{"news", "sport"}},
			{URL: "c.com", Keywords: []string{"sport"}},
		},
		[]webgraph.LinkEntry{{Source: "a.com", Dest: "b.com"}, {Source: "c.com", Dest: "b.com"}},
		webgraph.WithMaxPages(4),
	)
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return New(service.New(g, logger), opts)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestListPages(t *testing.T) {
	s := newTestServer(t, Options{})

	w := do(t, s, http.MethodGet, "/pages?order=rank", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	pages := decode[[]webgraph.Page](t, w)
	if len(pages) != 3 || pages[0].URL != "b.com" || pages[0].Rank != 2 {
		t.Errorf("pages = %+v", pages)
	}

	w = do(t, s, http.MethodGet, "/pages?order=sideways", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad order status = %d, want 400", w.Code)
	}
}

func TestPageLifecycle(t *testing.T) {
	s := newTestServer(t, Options{})

	w := do(t, s, http.MethodPost, "/pages", `{"url":"d.com","keywords":["news"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", w.Code, w.Body)
	}
	if p := decode[webgraph.Page](t, w); p.Index != 3 || p.Rank != 0 {
		t.Errorf("added page = %+v", p)
	}

	w = do(t, s, http.MethodPost, "/links", `{"from":"d.com","to":"a.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add link status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, s, http.MethodDelete, "/pages?url=b.com", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d, body %s", w.Code, w.Body)
	}

	links := decode[[]webgraph.Link](t, do(t, s, http.MethodGet, "/links", ""))
	if len(links) != 1 || links[0] != (webgraph.Link{From: "d.com", To: "a.com"}) {
		t.Errorf("links = %+v", links)
	}

	w = do(t, s, http.MethodDelete, "/links?from=d.com&to=a.com", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("remove link status = %d", w.Code)
	}
	w = do(t, s, http.MethodDelete, "/links?from=d.com&to=a.com", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("remove missing link status = %d, want 204", w.Code)
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   errors.Code
	}{
		{"duplicate url", http.MethodPost, "/pages", `{"url":"a.com"}`, http.StatusConflict, errors.ErrCodeDuplicateURL},
		{"empty url", http.MethodPost, "/pages", `{"url":""}`, http.StatusConflict, errors.ErrCodeDuplicateURL},
		{"url with space", http.MethodPost, "/pages", `{"url":"a b"}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad keyword", http.MethodPost, "/pages", `{"url":"x.com","keywords":[""]}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad json", http.MethodPost, "/pages", `{"url":`, http.StatusBadRequest, errors.ErrCodeMalformedInput},
		{"unknown field", http.MethodPost, "/pages", `{"href":"x"}`, http.StatusBadRequest, errors.ErrCodeMalformedInput},
		{"missing page", http.MethodDelete, "/pages?url=zzz", "", http.StatusNotFound, errors.ErrCodePageNotFound},
		{"missing param", http.MethodDelete, "/pages", "", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"duplicate link", http.MethodPost, "/links", `{"from":"a.com","to":"b.com"}`, http.StatusConflict, errors.ErrCodeDuplicateLink},
		{"unknown endpoint", http.MethodPost, "/links", `{"from":"a.com","to":"zzz"}`, http.StatusNotFound, errors.ErrCodeEndpointNotFound},
		{"unknown endpoint on remove", http.MethodDelete, "/links?from=zzz&to=a.com", "", http.StatusNotFound, errors.ErrCodeEndpointNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Options{})
			w := do(t, s, tt.method, tt.target, tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.status, w.Body)
			}
			body := decode[errorBody](t, w)
			if body.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", body.Error.Code, tt.code)
			}
			if body.Error.Message == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	s := newTestServer(t, Options{})
	if w := do(t, s, http.MethodPost, "/pages", `{"url":"d.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	w := do(t, s, http.MethodPost, "/pages", `{"url":"e.com"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestSearch(t *testing.T) {
	s := newTestServer(t, Options{})

	resp := decode[searchResponse](t, do(t, s, http.MethodGet, "/search?q=sport", ""))
	if resp.Query != "sport" || len(resp.Results) != 2 {
		t.Fatalf("search = %+v", resp)
	}
	if resp.Results[0].URL != "b.com" || resp.Results[1].URL != "c.com" {
		t.Errorf("order = %s, %s", resp.Results[0].URL, resp.Results[1].URL)
	}

	w := do(t, s, http.MethodGet, "/search", "")
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Errorf("empty search body = %s", w.Body)
	}
}

func TestMatrixAndGraph(t *testing.T) {
	s := newTestServer(t, Options{})

	w := do(t, s, http.MethodGet, "/matrix", "")
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "0| 0 1 0") {
		t.Errorf("matrix = %q", w.Body)
	}

	w = do(t, s, http.MethodGet, "/graph", "")
	doc := decode[struct {
		Pages []webgraph.Page `json:"pages"`
		Links []webgraph.Link `json:"links"`
	}](t, w)
	if len(doc.Pages) != 3 || len(doc.Links) != 2 {
		t.Errorf("graph = %+v", doc)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})
	resp := decode[healthResponse](t, do(t, s, http.MethodGet, "/healthz", ""))
	if resp.Status != "ok" || resp.Version == "" || resp.Pages != 3 || resp.Links != 2 || resp.MaxPages != 4 {
		t.Errorf("health = %+v", resp)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, Options{})

	w := do(t, s, http.MethodGet, "/healthz", "")
	if id := w.Header().Get(requestIDHeader); len(id) != 36 {
		t.Errorf("generated request id = %q", id)
	}

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(requestIDHeader, "abc")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	if id := w.Header().Get(requestIDHeader); id != "abc" {
		t.Errorf("echoed request id = %q, want abc", id)
	}
}

func TestMetrics(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	prom := observability.NewPrometheus()
	observability.SetGraphHooks(prom)
	observability.SetHTTPHooks(prom)

	s := newTestServer(t, Options{Metrics: prom})
	do(t, s, http.MethodPost, "/pages", `{"url":"a.com"}`)
	do(t, s, http.MethodGet, "/search?q=news", "")

	body := do(t, s, http.MethodGet, "/metrics", "").Body.String()
	for _, want := range []string{
		`linkrank_mutations_total{op="add_page",result="DUPLICATE_URL"} 1`,
		`linkrank_http_requests_total{method="POST",route="/pages",status="409"} 1`,
		`linkrank_http_requests_total{method="GET",route="/search",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, Options{})
	if w := do(t, s, http.MethodGet, "/metrics", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t, Options{ShutdownTimeout: time.Second})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(errors.ErrCodeInternal); got != http.StatusInternalServerError {
		t.Errorf("statusFor(INTERNAL_ERROR) = %d", got)
	}
	if got := statusFor(""); got != http.StatusInternalServerError {
		t.Errorf("statusFor(\"\") = %d", got)
	}
}
