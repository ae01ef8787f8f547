package bill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaolrm/racha-do-mes-fe/internal/user"
)

func knownUsers() []user.User {
	return []user.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
		{ID: 3, Name: "Carla"},
	}
}

func TestAllocatorAdd(t *testing.T) {
	alloc := NewAllocator(knownUsers())
	alloc.Seed(1)

	require.NoError(t, alloc.Add())
	participants := alloc.Participants()
	require.Len(t, participants, 2)
	assert.Equal(t, int64(2), participants[1].UserID, "first user not yet participating")
	assert.Zero(t, participants[1].SharePercentage, "new participants start at zero share")

	require.NoError(t, alloc.Add())
	require.Len(t, alloc.Participants(), 3)

	err := alloc.Add()
	assert.ErrorIs(t, err, ErrAllUsersAdded)
	assert.Len(t, alloc.Participants(), 3, "failed add must not change the list")
}

func TestAllocatorSetUserRejectsDuplicates(t *testing.T) {
	alloc := NewAllocator(knownUsers())
	alloc.Seed(1)
	require.NoError(t, alloc.Add()) // user 2

	err := alloc.SetUser(1, 1)
	assert.ErrorIs(t, err, ErrDuplicateParticipant)

	participants := alloc.Participants()
	assert.Equal(t, int64(1), participants[0].UserID)
	assert.Equal(t, int64(2), participants[1].UserID, "rejected change must leave the list unchanged")

	require.NoError(t, alloc.SetUser(1, 3))
	assert.Equal(t, int64(3), alloc.Participants()[1].UserID)

	// Re-assigning a participant's own user is not a duplicate.
	require.NoError(t, alloc.SetUser(1, 3))
}

func TestAllocatorRemove(t *testing.T) {
	alloc := NewAllocator(knownUsers())
	alloc.Seed(1)

	err := alloc.Remove(0)
	assert.ErrorIs(t, err, ErrLastParticipant)
	assert.Len(t, alloc.Participants(), 1)

	require.NoError(t, alloc.Add())
	require.NoError(t, alloc.Remove(1))
	assert.Len(t, alloc.Participants(), 1)
}

func TestAllocatorSetShare(t *testing.T) {
	alloc := NewAllocator(knownUsers())
	alloc.Seed(1)

	assert.ErrorIs(t, alloc.SetShare(0, -1), ErrShareOutOfRange)
	assert.ErrorIs(t, alloc.SetShare(0, 100.5), ErrShareOutOfRange)
	assert.ErrorIs(t, alloc.SetShare(3, 10), ErrNoSuchParticipant)
	require.NoError(t, alloc.SetShare(0, 60))
	assert.Equal(t, 60.0, alloc.Participants()[0].SharePercentage)
}

func TestAllocatorTotalPercentage(t *testing.T) {
	tests := []struct {
		name   string
		shares []float64
		total  float64
		valid  bool
	}{
		{"single full share", []float64{100}, 100, true},
		{"sixty forty", []float64{60, 40}, 100, true},
		{"within tolerance", []float64{33.33, 33.33, 33.34}, 100, true},
		{"one short", []float64{50, 49}, 99, false},
		{"over by a cent and a bit", []float64{50, 50.02}, 100.02, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := NewAllocator(knownUsers())
			alloc.Seed(1)
			for i, share := range tt.shares {
				if i > 0 {
					require.NoError(t, alloc.Add())
				}
				require.NoError(t, alloc.SetShare(i, share))
			}

			assert.InDelta(t, tt.total, alloc.TotalPercentage(), 0.0001)

			err := alloc.ValidateShares()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrBadShareSum)
				assert.Contains(t, err.Error(), "100", "error must name the 100%% requirement")
			}
		})
	}
}
