package uitest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/app"
	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/devseed"
	"github.com/stolasapp/bulletin/internal/server"
	"github.com/stolasapp/bulletin/internal/storage"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

// TestSeed is the fixed seed used for reproducible test data.
const TestSeed uint64 = 12345

// Server is a test server running the app against a seeded SQLite store.
type Server struct {
	baseURL string
	cancel  context.CancelFunc
	grp     *errgroup.Group
	store   storage.Store
	seeded  devseed.Result
}

// newTestServer creates, seeds and starts a new test server. It is shut down
// when the test completes.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	grp, ctx := errgroup.WithContext(ctx)

	logger := slog.New(slog.DiscardHandler)
	cfg := testConfig(t)
	store, err := storage.NewDB(ctx, cfg.Database, logger)
	if err != nil {
		cancel()
		require.NoError(t, err)
	}

	seeded, err := devseed.Populate(ctx, logger, accounts.New(store, logger), store, TestSeed, devseed.Options{
		Groups:       3,
		Users:        3,
		MaxPostsUser: 10,
	})
	if err != nil {
		cancel()
		_ = store.Close()
		require.NoError(t, err)
	}

	listener, err := server.Listen(ctx, "127.0.0.1:0")
	if err != nil {
		cancel()
		_ = store.Close()
		require.NoError(t, err)
	}
	server.Serve(ctx, grp, app.New(cfg, logger, store).Server, listener, server.DefaultOptions)

	srv := &Server{
		baseURL: "http://" + listener.Addr().String(),
		cancel:  cancel,
		grp:     grp,
		store:   store,
		seeded:  seeded,
	}
	t.Cleanup(srv.Close)
	return srv
}

// BaseURL returns the base URL of the test server.
func (s *Server) BaseURL() string {
	return s.baseURL
}

// Close shuts down the test server.
// Errors are ignored since this runs during test cleanup where failures
// are typically unrecoverable and already logged by the errgroup.
func (s *Server) Close() {
	s.cancel()
	_ = s.grp.Wait()
	_ = s.store.Close()
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.DevMode = true
	cfg.Database.Source = filepath.Join(t.TempDir(), "ui.sqlite")
	cfg.Session.Secret = strings.Repeat("u", config.MinSecretLen)
	return cfg
}

// URL constructs a full URL from the server base URL and a path.
func (s *Server) URL(path string) string {
	return fmt.Sprintf("%s%s", s.baseURL, path)
}

// SeededUser returns the name of a generated user; all share
// [devseed.Password].
func (s *Server) SeededUser() string {
	return s.seeded.Users[0]
}

// Groups lists the groups offered on the registration form.
func (s *Server) Groups(ctx context.Context) ([]db.Group, error) {
	return s.store.ListGroups(ctx)
}

// PostCount is the number of generated posts.
func (s *Server) PostCount() int {
	return s.seeded.Posts
}
