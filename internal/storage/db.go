package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/influxdata/influxdb/pkg/snowflake"

	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

// DB is a [Store] backed by a SQLite or PostgreSQL database.
type DB struct {
	ids     *snowflake.Generator
	db      *sql.DB
	queries *db.Queries
}

// NewDB initializes a DB with the given config and logger.
func NewDB(ctx context.Context, cfg config.Database, logger *slog.Logger) (*DB, error) {
	dialect := db.Dialect(cfg.Driver)
	handle, err := db.Open(ctx, logger, dialect, cfg.Source)
	if err != nil {
		return nil, err
	}
	return &DB{
		ids:     snowflake.New(rand.IntN(1023)), //nolint:gosec,mnd // this isn't for crypto
		db:      handle,
		queries: db.New(handle, dialect),
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// GetUser satisfies the [Users] interface.
func (d *DB) GetUser(ctx context.Context, userID uint64) (db.User, error) {
	user, err := d.queries.GetUser(ctx, userID)
	return user, classify(err)
}

// GetUserByName satisfies the [Users] interface.
func (d *DB) GetUserByName(ctx context.Context, username string) (db.User, error) {
	user, err := d.queries.GetUserByName(ctx, username)
	return user, classify(err)
}

// CreateUser satisfies the [Users] interface.
func (d *DB) CreateUser(ctx context.Context, user db.User, groupIDs ...uint64) (db.User, error) {
	if user.ID == 0 {
		user.ID = d.ids.Next()
	}
	user.CreatedAt = now()
	err := d.inTx(ctx, func(queries *db.Queries) error {
		if err := queries.CreateUser(ctx, db.CreateUserParams(user)); err != nil {
			return classify(err)
		}
		for _, groupID := range groupIDs {
			err := queries.AddUserToGroup(ctx, db.UserGroupAssociation{
				UserID:  user.ID,
				GroupID: groupID,
			})
			if err = classify(err); errors.Is(err, ErrNotFound) {
				return fmt.Errorf("group %d: %w", groupID, err)
			} else if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return db.User{}, err
	}
	return user, nil
}

// DeleteUser satisfies the [Users] interface.
func (d *DB) DeleteUser(ctx context.Context, userID uint64) error {
	switch affected, err := d.queries.DeleteUser(ctx, userID); {
	case err != nil:
		return classify(err)
	case affected == 0:
		return ErrNotFound
	default:
		return nil
	}
}

// ListUserGroups satisfies the [Users] interface.
func (d *DB) ListUserGroups(ctx context.Context, userID uint64) ([]db.Group, error) {
	groups, err := d.queries.ListUserGroups(ctx, userID)
	return groups, classify(err)
}

// ListGroups satisfies the [Groups] interface.
func (d *DB) ListGroups(ctx context.Context) ([]db.Group, error) {
	groups, err := d.queries.ListGroups(ctx)
	return groups, classify(err)
}

// CreateGroup satisfies the [Groups] interface.
func (d *DB) CreateGroup(ctx context.Context, name string) (db.Group, error) {
	group := db.Group{
		ID:   d.ids.Next(),
		Name: name,
	}
	if err := d.queries.CreateGroup(ctx, group); err != nil {
		return db.Group{}, classify(err)
	}
	return group, nil
}

// ListPosts satisfies the [Posts] interface.
func (d *DB) ListPosts(ctx context.Context, before uint64, limit int) ([]db.PostView, error) {
	if before == 0 || before > math.MaxInt64 {
		before = math.MaxInt64
	}
	posts, err := d.queries.ListPosts(ctx, db.ListPostsParams{
		Before: before,
		Limit:  int64(limit),
	})
	return posts, classify(err)
}

// GetPost satisfies the [Posts] interface.
func (d *DB) GetPost(ctx context.Context, postID uint64) (db.PostView, error) {
	post, err := d.queries.GetPost(ctx, postID)
	return post, classify(err)
}

// CreatePost satisfies the [Posts] interface.
func (d *DB) CreatePost(ctx context.Context, post db.Post) (db.Post, error) {
	post.ID = d.ids.Next()
	post.CreatedAt = now()
	if err := d.queries.CreatePost(ctx, post); err != nil {
		return db.Post{}, classify(err)
	}
	return post, nil
}

func (d *DB) inTx(ctx context.Context, fn func(*db.Queries) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(d.queries.WithTx(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// now returns the current time at the precision every dialect round-trips.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

var _ Store = (*DB)(nil)
