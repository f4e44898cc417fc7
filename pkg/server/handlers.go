package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/linkrank/pkg/buildinfo"
	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/io"
	"github.com/matzehuels/linkrank/pkg/service"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// maxBodyBytes caps request bodies for POST endpoints.
const maxBodyBytes = 1 << 20

type addPageRequest struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

type addLinkRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Results []webgraph.Page `json:"results"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	service.Stats
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version, Stats: s.svc.Stats()})
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	order := webgraph.ByIndex
	if v := r.URL.Query().Get("order"); v != "" {
		o, err := webgraph.ParseOrder(v)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		order = o
	}
	writeJSON(w, http.StatusOK, s.svc.Pages(order))
}

func (s *Server) handleAddPage(w http.ResponseWriter, r *http.Request) {
	var req addPageRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateURL(req.URL); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateKeywords(req.Keywords); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.AddPage(r.Context(), req.URL, req.Keywords); err != nil {
		s.writeError(w, r, err)
		return
	}
	page, _ := s.svc.Page(req.URL)
	writeJSON(w, http.StatusCreated, page)
}

func (s *Server) handleRemovePage(w http.ResponseWriter, r *http.Request) {
	url, err := requireParam(r, "url")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.RemovePage(r.Context(), url); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Links())
}

func (s *Server) handleAddLink(w http.ResponseWriter, r *http.Request) {
	var req addLinkRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.AddLink(r.Context(), req.From, req.To); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, webgraph.Link{From: req.From, To: req.To})
}

func (s *Server) handleRemoveLink(w http.ResponseWriter, r *http.Request) {
	from, err := requireParam(r, "from")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	to, err := requireParam(r, "to")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.RemoveLink(r.Context(), from, to); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, searchResponse{Query: q, Results: s.svc.Search(r.Context(), q)})
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.svc.View(func(g *webgraph.Graph) error { return g.RenderMatrix(&buf) }); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.svc.View(func(g *webgraph.Graph) error { return io.WriteJSON(g, &buf) }); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

func requireParam(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	return v, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "decode request body")
	}
	return nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeDuplicateURL, errors.ErrCodeDuplicateLink:
		return http.StatusConflict
	case errors.ErrCodePageNotFound, errors.ErrCodeEndpointNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeCapacityExceeded:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeMalformedInput, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err, "request_id", requestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: errors.UserMessage(err)}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
