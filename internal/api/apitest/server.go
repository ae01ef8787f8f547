// Package apitest provides a chi-routed fake backend for package tests.
// Handlers write the same response shapes the real backend does.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// Server is an in-process fake backend
type Server struct {
	*httptest.Server
}

// New starts a fake backend with routes registered by configure. Callers
// must Close the returned server.
func New(configure func(r chi.Router)) *Server {
	r := chi.NewRouter()
	configure(r)
	return &Server{Server: httptest.NewServer(r)}
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error writes the backend's error envelope with a string message
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"message": message})
}

// ValidationError writes the backend's error envelope with an array
// message, as the real backend does for field validation failures
func ValidationError(w http.ResponseWriter, messages ...string) {
	JSON(w, http.StatusBadRequest, map[string]any{
		"message": messages,
		"error":   "Bad Request",
	})
}

// RequireAuth is middleware rejecting requests whose Authorization header
// does not carry the expected bearer token
func RequireAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				Error(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
