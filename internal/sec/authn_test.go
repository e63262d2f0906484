package sec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/bulletin/internal/storage"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

type stubUsers struct {
	storage.Users
	users map[uint64]db.User
	err   error
}

func (s stubUsers) GetUser(_ context.Context, userID uint64) (db.User, error) {
	if s.err != nil {
		return db.User{}, s.err
	}
	user, ok := s.users[userID]
	if !ok {
		return db.User{}, storage.ErrNotFound
	}
	return user, nil
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	sessions := testSessions(t)
	user := db.User{ID: 42, Username: "jdoe"}
	store := stubUsers{users: map[uint64]db.User{user.ID: user}}

	valid, err := sessions.Issue(user.ID)
	require.NoError(t, err)
	orphan, err := sessions.Issue(7)
	require.NoError(t, err)

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		_, ok, err := Authenticate(t.Context(), requestWith(nil), sessions, store)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("valid session", func(t *testing.T) {
		t.Parallel()
		actual, ok, err := Authenticate(t.Context(), requestWith(valid), sessions, store)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, user, actual)
	})

	t.Run("deleted user is anonymous", func(t *testing.T) {
		t.Parallel()
		_, ok, err := Authenticate(t.Context(), requestWith(orphan), sessions, store)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, ok, err := Authenticate(t.Context(), requestWith(valid), sessions, stubUsers{err: boom})
		require.ErrorIs(t, err, boom)
		assert.False(t, ok)
	})
}

func TestAuthenticatedUserContext(t *testing.T) {
	t.Parallel()

	_, ok := GetAuthenticatedUser(t.Context())
	assert.False(t, ok)

	user := db.User{ID: 42, Username: "jdoe"}
	ctx := SetAuthenticatedUser(t.Context(), user)
	actual, ok := GetAuthenticatedUser(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, actual)
}
