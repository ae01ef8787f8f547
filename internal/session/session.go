// Package session holds the authenticated user's access token and profile,
// persisted across runs as a JSON file. The session object is injected
// into the API client instead of living in process-wide state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated user's profile as returned by the backend
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type state struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user,omitempty"`
}

// Session is the persisted authentication state
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *User
}

// Load reads the session file at path. A missing file yields an empty
// (unauthenticated) session, not an error.
func Load(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	s.token = st.AccessToken
	s.user = st.User
	return s, nil
}

// Set stores the access token and user and persists them
func (s *Session) Set(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
	return s.save()
}

// Clear wipes the in-memory state and removes the session file
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token returns the stored access token, empty when unauthenticated
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the stored user profile and whether one is present
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a token is present
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Expired inspects the token's exp claim without verifying the signature
// (the client has no key; the backend re-validates every request). Tokens
// without an exp claim, or unparsable tokens, are treated as not expired
// and left for the backend to reject.
func (s *Session) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// save writes the current state to disk. Caller holds the lock.
func (s *Session) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(state{AccessToken: s.token, User: s.user}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
