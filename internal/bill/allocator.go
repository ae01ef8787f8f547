package bill

import (
	"errors"
	"fmt"
	"math"

	"github.com/Joaolrm/racha-do-mes-fe/internal/user"
)

// ShareTolerance is the accepted distance between the share sum and 100
const ShareTolerance = 0.01

// Common errors
var (
	ErrAllUsersAdded        = errors.New("every known user is already a participant")
	ErrDuplicateParticipant = errors.New("user is already a participant")
	ErrLastParticipant      = errors.New("a bill must keep at least one participant")
	ErrShareOutOfRange      = errors.New("share percentage must be between 0 and 100")
	ErrBadShareSum          = errors.New("participant shares must sum to 100%")
	ErrNoSuchParticipant    = errors.New("no participant at that position")
)

// Allocator maintains the participant list of a bill being created and
// enforces its invariants: unique users, at least one participant, and a
// share sum of 100 within tolerance.
type Allocator struct {
	users        []user.User
	participants []Participant
}

// NewAllocator creates an allocator drawing candidates from the known users
func NewAllocator(users []user.User) *Allocator {
	return &Allocator{users: users}
}

// Seed resets the list to a single participant holding the full share.
// Used when the creation form opens with the current user preselected.
func (a *Allocator) Seed(userID int64) {
	a.participants = []Participant{{UserID: userID, SharePercentage: 100}}
}

// Add appends the first known user not yet participating, with a zero
// share. Fails without changing the list when every user is already in.
func (a *Allocator) Add() error {
	for _, u := range a.users {
		if !a.contains(u.ID) {
			a.participants = append(a.participants, Participant{UserID: u.ID})
			return nil
		}
	}
	return ErrAllUsersAdded
}

// SetUser changes the user at index. A change that would duplicate
// another participant's user is rejected and the list stays unchanged.
func (a *Allocator) SetUser(index int, userID int64) error {
	if index < 0 || index >= len(a.participants) {
		return ErrNoSuchParticipant
	}
	for i, p := range a.participants {
		if i != index && p.UserID == userID {
			return ErrDuplicateParticipant
		}
	}
	a.participants[index].UserID = userID
	return nil
}

// SetShare changes the share at index
func (a *Allocator) SetShare(index int, share float64) error {
	if index < 0 || index >= len(a.participants) {
		return ErrNoSuchParticipant
	}
	if share < 0 || share > 100 {
		return ErrShareOutOfRange
	}
	a.participants[index].SharePercentage = share
	return nil
}

// Remove drops the participant at index. The last remaining participant
// cannot be removed.
func (a *Allocator) Remove(index int) error {
	if index < 0 || index >= len(a.participants) {
		return ErrNoSuchParticipant
	}
	if len(a.participants) == 1 {
		return ErrLastParticipant
	}
	a.participants = append(a.participants[:index], a.participants[index+1:]...)
	return nil
}

// Participants returns a copy of the current list
func (a *Allocator) Participants() []Participant {
	out := make([]Participant, len(a.participants))
	copy(out, a.participants)
	return out
}

// TotalPercentage sums the shares of all participants
func (a *Allocator) TotalPercentage() float64 {
	var total float64
	for _, p := range a.participants {
		total += p.SharePercentage
	}
	return total
}

// ValidateShares checks the sum invariant. The error carries the running
// total so callers can display it.
func (a *Allocator) ValidateShares() error {
	total := a.TotalPercentage()
	if math.Abs(total-100) > ShareTolerance {
		return fmt.Errorf("%w (currently %.2f%%)", ErrBadShareSum, total)
	}
	return nil
}

func (a *Allocator) contains(userID int64) bool {
	for _, p := range a.participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
