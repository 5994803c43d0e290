// Package apitest provides an in-process fake of the panel's remote API.
// It speaks the same wire contract (paths, JSON envelopes, plain-text
// metrics) so client, panel and CLI tests can run without a real backend.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ziadkadry99/opspanel/internal/config"
)

// Request is one request the fake received.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// Server is a fake API bound to a local httptest listener.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	overrides map[string]http.HandlerFunc
	users     []map[string]any
	items     []map[string]any
	keys      map[string]string
}

// New starts a fake API and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		overrides: make(map[string]http.HandlerFunc),
		keys:      make(map[string]string),
	}
	s.Server = httptest.NewServer(s.buildRouter())
	t.Cleanup(s.Close)
	return s
}

// Config returns a default configuration pointed at the fake.
func (s *Server) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.BaseURL = s.URL
	cfg.NoHistory = true
	return cfg
}

// Handle replaces the built-in behaviour of one route.
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[routeKey(method, path)] = h
}

// Respond makes a route answer with a fixed status and body.
func (s *Server) Respond(method, path string, status int, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests hit method+path.
func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/items", s.handleCreateItem)
	r.Get("/items", s.handleListItems)
	r.Post("/api/user", s.handleCreateUser)
	r.Get("/api/users", s.handleListUsers)
	r.Post("/api/set", s.handleSet)
	r.Get("/api/func1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Func1 completed: 5000 keys written",
		})
	})
	r.Get("/api/func2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Func2 completed: 50 connections opened",
		})
	})
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		s.mu.Lock()
		users := len(s.users)
		s.mu.Unlock()
		fmt.Fprintf(w, "user_created_total %d\n", users)
		fmt.Fprintf(w, "api_requests_total{endpoint=\"/api/user\"} %d\n", users)
	})

	return r
}

// record captures the request and short-circuits to an override if one is set.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		override := s.overrides[routeKey(r.Method, r.URL.Path)]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string  `json:"name"`
		Value *float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == nil || req.Value == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid item"})
		return
	}
	doc := map[string]any{"_id": uuid.New().String(), "name": *req.Name, "value": *req.Value}

	s.mu.Lock()
	s.items = append(s.items, doc)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := append([]map[string]any{}, s.items...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName     string   `json:"first_name"`
		LastName      string   `json:"last_name"`
		Age           *float64 `json:"age"`
		MaritalStatus bool     `json:"marital_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid request"})
		return
	}
	age := 0.0
	if req.Age != nil {
		age = *req.Age
	}
	id := fmt.Sprintf("%s-%s", uuid.New().String(), strconv.FormatFloat(age, 'f', -1, 64))

	s.mu.Lock()
	s.users = append(s.users, map[string]any{
		"user_id":        id,
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"age":            age,
		"marital_status": req.MaritalStatus,
	})
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "User created successfully",
		"user_id": id,
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	users := append([]map[string]any{}, s.users...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d users", len(users)),
		"count":   len(users),
		"users":   users,
	})
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Invalid request"})
		return
	}

	s.mu.Lock()
	s.keys[req.Key] = req.Value
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Key %q stored", req.Key),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
