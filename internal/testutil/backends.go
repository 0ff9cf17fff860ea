package testutil

import (
	"github.com/go-chi/chi/v5"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest is a request as seen by a fake backend.
type RecordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// FakeBackend serves canned responses and records every request it gets.
type FakeBackend struct {
	*httptest.Server
	mu        sync.Mutex
	Requests  []RecordedRequest
	responses map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   string
}

func (b *FakeBackend) Respond(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[method+" "+path] = cannedResponse{status: status, body: body}
}

func (b *FakeBackend) Recorded() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.Requests))
	copy(out, b.Requests)
	return out
}

func (b *FakeBackend) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.Requests = append(b.Requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	resp, ok := b.responses[r.Method+" "+chi.RouteContext(r.Context()).RoutePattern()]
	b.mu.Unlock()

	if !ok {
		http.Error(w, `{"error":"no canned response"}`, http.StatusNotImplemented)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func newFakeBackend(register func(r chi.Router, h http.HandlerFunc)) *FakeBackend {
	b := &FakeBackend{responses: make(map[string]cannedResponse)}
	r := chi.NewRouter()
	register(r, b.handler)
	b.Server = httptest.NewServer(r)
	return b
}

// NewLegacyBackend fakes the scoreboard REST API under /api.
func NewLegacyBackend() *FakeBackend {
	return newFakeBackend(func(r chi.Router, h http.HandlerFunc) {
		r.Route("/api", func(r chi.Router) {
			r.Get("/scores", h)
			r.Post("/scores/update", h)
			r.Post("/scores/archive", h)
		})
	})
}

// NewSupabaseBackend fakes the PostgREST tables under /rest/v1.
func NewSupabaseBackend() *FakeBackend {
	return newFakeBackend(func(r chi.Router, h http.HandlerFunc) {
		r.Route("/rest/v1", func(r chi.Router) {
			r.Get("/daily_scores", h)
			r.Patch("/daily_scores", h)
			r.Get("/monthly_archives", h)
			r.Post("/monthly_archives", h)
		})
	})
}
