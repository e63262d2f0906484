package devseed

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/content"
	"github.com/stolasapp/bulletin/internal/storage"
)

func TestGenerateBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t, generateBody(gofakeit.New(7)), generateBody(gofakeit.New(7)))

	for seed := range uint64(20) {
		body := generateBody(gofakeit.New(seed))
		html, err := content.Render(body)
		require.NoError(t, err)
		assert.NotEmpty(t, html)
	}
}

func TestGenerateTitle(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		assert.NotEmpty(t, generateTitle(gofakeit.New(seed)))
	}
}

func TestSeed(t *testing.T) {
	t.Setenv(SeedEnv, "42")
	assert.Equal(t, uint64(42), Seed())
}

func TestPopulate(t *testing.T) {
	t.Parallel()

	store, err := storage.NewDB(t.Context(), config.Database{
		Driver: config.DriverSQLite,
		Source: filepath.Join(t.TempDir(), "db.sqlite"),
	}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.DiscardHandler)
	svc := accounts.New(store, logger)
	opts := Options{Groups: 3, Users: 2, MaxPostsUser: 2}

	res, err := Populate(t.Context(), logger, svc, store, 1, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Groups)
	require.Len(t, res.Users, 2)

	groups, err := store.ListGroups(t.Context())
	require.NoError(t, err)
	assert.Len(t, groups, 3)

	posts, err := store.ListPosts(t.Context(), 0, 100)
	require.NoError(t, err)
	assert.Len(t, posts, res.Posts)

	user, err := svc.Login(t.Context(), res.Users[0], Password)
	require.NoError(t, err)
	assert.Equal(t, res.Users[0], user.Username)

	res, err = Populate(t.Context(), logger, svc, store, 2, opts)
	require.NoError(t, err)
	assert.Zero(t, res.Groups, "existing groups are reused")
}
