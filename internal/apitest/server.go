// Package apitest runs an in-memory product service for tests. It records
// every request it receives and can be told to fail.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// Request is a request seen by the server.
type Request struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

type Server struct {
	Store *Store
	URL   string

	mu       sync.Mutex
	requests []Request
	failures map[string]int
	hold     map[string]chan struct{}
}

// Start launches the service on a local listener and stops it when the test
// ends.
func Start(t testing.TB, seed ...models.Product) *Server {
	t.Helper()

	s := &Server{
		Store:    NewStore(),
		failures: map[string]int{},
		hold:     map[string]chan struct{}{},
	}
	s.Store.Seed(seed...)

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	s.URL = ts.URL
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Post("/", s.createProduct)
		r.Delete("/{id}", s.deleteProduct)
	})
	return r
}

// Fail makes every request with the given method answer with status until
// Recover is called.
func (s *Server) Fail(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = status
}

func (s *Server) Recover(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, method)
}

// Hold blocks requests with the given method until the returned func is
// called.
func (s *Server) Hold(method string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.hold[method] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.hold, method)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		status, failing := s.failures[r.Method]
		hold := s.hold[r.Method]
		s.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}

		if failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, s.Store.GetAll()); err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
	}
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req models.Draft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created := s.Store.Create(req)
	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
	}
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := s.Store.Delete(id); err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}
