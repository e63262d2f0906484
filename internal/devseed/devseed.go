// Package devseed fills a store with generated users, groups and posts for
// development.
package devseed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/storage"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

// Password is shared by every generated user.
const Password = "Bulletin-dev1"

// SeedEnv names the environment variable that fixes the generator seed.
const SeedEnv = "BULLETIN_SEED"

// Options sizes the generated data.
type Options struct {
	Groups       int
	Users        int
	MaxPostsUser int
}

// DefaultOptions are the sizes used by the seed command.
var DefaultOptions = Options{
	Groups:       4,
	Users:        8,
	MaxPostsUser: 6,
}

// Result counts what Populate created.
type Result struct {
	Groups int
	Users  []string
	Posts  int
}

// Seed returns the seed from the BULLETIN_SEED environment variable, or a
// random value if not set.
func Seed() uint64 {
	if env := os.Getenv(SeedEnv); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 64); err == nil {
			return seed
		}
	}
	return rand.Uint64() //nolint:gosec // intentionally weak random for test data
}

// Store is the storage required to seed.
type Store interface {
	accounts.Store
	storage.Posts
}

// Populate generates groups, then users registered through svc with random
// memberships, then posts by those users. Groups that already exist are
// reused, so it can run against a seeded store.
func Populate(
	ctx context.Context,
	logger *slog.Logger,
	svc *accounts.Service,
	store Store,
	seed uint64,
	opts Options,
) (Result, error) {
	faker := gofakeit.New(seed)
	var res Result

	groups, created, err := ensureGroups(ctx, store, opts.Groups)
	if err != nil {
		return res, err
	}
	res.Groups = created

	suffix := strconv.FormatUint(seed%10000, 10) //nolint:mnd // keep usernames short
	for i := range opts.Users {
		username := strings.ToLower(strings.ReplaceAll(faker.Username(), " ", "")) + suffix + strconv.Itoa(i)
		reg := accounts.Registration{
			Username:  username,
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Password:  Password,
		}
		for _, group := range groups {
			if faker.Float64() < 0.5 { //nolint:mnd // join about half the groups
				reg.Groups = append(reg.Groups, group.ID)
			}
		}
		user, err := svc.Register(ctx, reg)
		if err != nil {
			return res, fmt.Errorf("failed to register %q: %w", username, err)
		}
		res.Users = append(res.Users, user.Username)

		if opts.MaxPostsUser <= 0 {
			continue
		}
		for range faker.IntN(opts.MaxPostsUser + 1) {
			_, err = store.CreatePost(ctx, db.Post{
				AuthorID: user.ID,
				Title:    generateTitle(faker),
				Body:     generateBody(faker),
			})
			if err != nil {
				return res, fmt.Errorf("failed to create post for %q: %w", username, err)
			}
			res.Posts++
		}
	}

	logger.InfoContext(ctx, "seeded store",
		slog.Uint64("seed", seed),
		slog.Int("groups", res.Groups),
		slog.Int("users", len(res.Users)),
		slog.Int("posts", res.Posts),
	)
	return res, nil
}

// ensureGroups returns the first n seed groups, creating the missing ones.
func ensureGroups(ctx context.Context, store storage.Groups, n int) (groups []db.Group, created int, err error) {
	existing, err := store.ListGroups(ctx)
	if err != nil {
		return nil, 0, err
	}
	byName := make(map[string]db.Group, len(existing))
	for _, group := range existing {
		byName[group.Name] = group
	}

	for _, name := range groupNames[:min(n, len(groupNames))] {
		group, ok := byName[name]
		if !ok {
			if group, err = store.CreateGroup(ctx, name); err != nil {
				return nil, created, fmt.Errorf("failed to create group %q: %w", name, err)
			}
			created++
		}
		groups = append(groups, group)
	}
	return groups, created, nil
}
