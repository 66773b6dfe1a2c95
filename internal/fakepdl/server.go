// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

// Package fakepdl serves an in-process stand-in for the People Data Labs API.
// It records every request and answers with canned responses registered per
// route, so tests can assert on the exact wire form a client produced and on
// how many calls reached the network.
//
//	srv := fakepdl.New()
//	defer srv.Close()
//	srv.Handle(http.MethodGet, "/location/clean", http.StatusOK, `{"status":200,"name":"new york"}`)
//
// Routes are chi patterns relative to the version segment, so "/person/retrieve/{id}"
// matches "/v5/person/retrieve/abc".
package fakepdl

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// APIKeyHeader is the header the service reads the credential from.
const APIKeyHeader = "X-Api-Key"

// Request is a recorded request.
type Request struct {
	Method   string
	Path     string
	Version  string
	Query    url.Values
	RawQuery string
	Header   http.Header
	Body     []byte
}

// HandlerFunc computes a response for a recorded request. The returned body
// is written as-is when it is a string or []byte, and JSON-encoded otherwise.
type HandlerFunc func(req Request) (status int, body any)

// Server is a fake API server.
type Server struct {
	*httptest.Server

	router chi.Router

	mu       sync.Mutex
	requests []Request
}

// New starts a server. Close it when done.
func New() *Server {
	s := &Server{router: chi.NewRouter()}
	s.router.Use(s.record)
	s.router.Use(requireAPIKey)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no route for "+r.Method+" "+r.URL.Path)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" not allowed")
	})
	s.Server = httptest.NewServer(s.router)
	return s
}

// Handle answers method+pattern with a fixed status and body.
func (s *Server) Handle(method, pattern string, status int, body string) {
	s.HandleFunc(method, pattern, func(Request) (int, any) { return status, body })
}

// HandleFunc answers method+pattern with fn. Register routes before sending requests.
func (s *Server) HandleFunc(method, pattern string, fn HandlerFunc) {
	s.router.Method(method, "/{version}"+pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := r.Context().Value(requestKey{}).(Request)
		req.Version = chi.URLParam(r, "version")
		status, body := fn(req)
		writeBody(w, status, body)
	}))
}

// Requests returns a copy of every recorded request in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns the number of requests received.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset forgets recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

type requestKey struct{}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_error", "unreadable body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		req := Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    r.URL.Query(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		}
		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestKey{}, req)))
	})
}

// requireAPIKey rejects requests without a credential, like the real service.
func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(APIKeyHeader) == "" {
			writeError(w, http.StatusUnauthorized, "authentication_error", "missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeBody(w http.ResponseWriter, status int, body any) {
	var data []byte
	switch b := body.(type) {
	case nil:
	case string:
		data = []byte(b)
	case []byte:
		data = b
	default:
		var err error
		data, err = json.Marshal(b)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeBody(w, status, map[string]any{
		"status": status,
		"error": map[string]string{
			"type":    errType,
			"message": message,
		},
	})
}
