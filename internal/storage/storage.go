// Package storage provides the state management for users, groups and posts.
package storage

import (
	"context"

	"github.com/stolasapp/bulletin/internal/storage/db"
)

const (
	// ErrNotFound is returned when a user, group or post cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique user or group already exists.
	ErrAlreadyExists Error = "already exists"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Users are the methods on a storage implementation that are responsible for
// accessing and modifying users and their group memberships.
type Users interface {
	// GetUser returns a single user with the specified ID. An [ErrNotFound] is
	// returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByName returns a single user with the specified username. An
	// [ErrNotFound] is returned if the username does not exist.
	GetUserByName(ctx context.Context, username string) (db.User, error)
	// CreateUser inserts the user and its memberships in the given groups in
	// a single transaction. If user.ID is zero, an ID is assigned. An
	// [ErrAlreadyExists] is returned if the username is already in use; an
	// [ErrNotFound] is returned if one of the groups does not exist.
	CreateUser(ctx context.Context, user db.User, groupIDs ...uint64) (db.User, error)
	// DeleteUser removes a user, their group memberships and their posts.
	// Note that this is a hard delete; data is not recoverable. An
	// [ErrNotFound] is returned if the user ID does not exist.
	DeleteUser(ctx context.Context, userID uint64) error
	// ListUserGroups returns the groups the user belongs to, ordered by name.
	ListUserGroups(ctx context.Context, userID uint64) ([]db.Group, error)
}

// Groups are the methods on a storage implementation that are responsible for
// accessing and modifying groups.
type Groups interface {
	// ListGroups returns every group, ordered by name.
	ListGroups(ctx context.Context) ([]db.Group, error)
	// CreateGroup inserts a group with the given name. An [ErrAlreadyExists]
	// is returned if the name is already in use.
	CreateGroup(ctx context.Context, name string) (db.Group, error)
}

// Posts are the methods on a storage implementation that are responsible for
// accessing and modifying blog posts.
type Posts interface {
	// ListPosts returns up to limit posts newest first. If before is non-zero,
	// only posts with smaller IDs are returned.
	ListPosts(ctx context.Context, before uint64, limit int) ([]db.PostView, error)
	// GetPost returns a single post. An [ErrNotFound] is returned if the post
	// does not exist.
	GetPost(ctx context.Context, postID uint64) (db.PostView, error)
	// CreatePost inserts a post, assigning its ID and creation time. An
	// [ErrNotFound] is returned if the author does not exist.
	CreatePost(ctx context.Context, post db.Post) (db.Post, error)
}

// Store is the combination interface for [Users], [Groups] and [Posts].
type Store interface {
	Users
	Groups
	Posts
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
