package user

import (
	"context"
	"sort"
	"strings"
)

// lister is the backend access the service needs
type lister interface {
	List(ctx context.Context) ([]User, error)
}

// Service handles user lookups
type Service struct {
	repo lister
}

// NewService creates a new user service with repository dependency injected
func NewService(repo lister) *Service {
	return &Service{repo: repo}
}

// List retrieves all known users sorted by name
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool {
		return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
	})
	return users, nil
}
