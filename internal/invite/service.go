package invite

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Common errors
var (
	ErrInvalidStatus     = errors.New("status must be accepted or rejected")
	ErrUnknownInvite     = errors.New("no pending invite for this bill")
	ErrAlreadyResponding = errors.New("a response for this invite is already in progress")
)

// repository is the backend access the service needs
type repository interface {
	Pending(ctx context.Context) ([]Pending, error)
	Respond(ctx context.Context, billID int64, status Status) error
}

// Service maintains the local pending-invite cache and sends decisions.
// An invite is removed from the cache as soon as a decision is sent
// (optimistic removal); a failed round trip surfaces its error but the
// entry is not restored. The next Refresh reconciles with the backend.
type Service struct {
	repo repository
	log  *zap.SugaredLogger

	mu         sync.Mutex
	pending    map[int64]Pending
	responding map[int64]struct{}

	onAccepted func()
}

// NewService creates a new invite service
func NewService(repo repository, log *zap.SugaredLogger) *Service {
	return &Service{
		repo:       repo,
		log:        log,
		pending:    map[int64]Pending{},
		responding: map[int64]struct{}{},
	}
}

// OnAccepted registers the callback fired when an invite is accepted
// (the bill list may need reloading)
func (s *Service) OnAccepted(fn func()) {
	s.onAccepted = fn
}

// Refresh rebuilds the local cache from the backend
func (s *Service) Refresh(ctx context.Context) error {
	invites, err := s.repo.Pending(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = make(map[int64]Pending, len(invites))
	for _, inv := range invites {
		// Skip invites with a decision still in flight; the next
		// refresh after it lands reconciles them.
		if _, busy := s.responding[inv.BillID]; busy {
			continue
		}
		s.pending[inv.BillID] = inv
	}
	return nil
}

// Pending returns the cached invites, newest first
func (s *Service) Pending() []Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Pending, 0, len(s.pending))
	for _, inv := range s.pending {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Respond sends the decision for a pending invite and removes it from
// the local cache regardless of the round trip's result. Acceptance
// fires the registered callback. A decision is terminal; the invite
// never reappears for this bill.
func (s *Service) Respond(ctx context.Context, billID int64, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	if _, ok := s.pending[billID]; !ok {
		s.mu.Unlock()
		return ErrUnknownInvite
	}
	if _, busy := s.responding[billID]; busy {
		s.mu.Unlock()
		return ErrAlreadyResponding
	}
	s.responding[billID] = struct{}{}
	s.mu.Unlock()

	err := s.repo.Respond(ctx, billID, status)

	s.mu.Lock()
	delete(s.pending, billID)
	delete(s.responding, billID)
	s.mu.Unlock()

	if err != nil {
		s.log.Warnw("invite response failed", "bill_id", billID, "status", status, "error", err)
		return err
	}

	if status == StatusAccepted && s.onAccepted != nil {
		s.onAccepted()
	}
	return nil
}
