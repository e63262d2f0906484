// Package accounts implements registration, login and removal of user
// accounts on top of the storage layer.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stolasapp/bulletin/internal/sec"
	"github.com/stolasapp/bulletin/internal/storage"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

// Login failures. These intentionally reveal which field was wrong.
const (
	ErrIncorrectUsername sec.ValidationError = "Incorrect username."
	ErrIncorrectPassword sec.ValidationError = "Incorrect password."
)

// Registration is a submitted registration form.
type Registration struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	// Groups are the IDs of the groups the user opted into. IDs that do not
	// name an existing group are ignored.
	Groups []uint64
}

// Credentials returns the normalized credentials of the registration. The
// username is lowercased; names and email are trimmed.
func (r Registration) Credentials() sec.Credentials {
	return sec.Credentials{
		Username:  strings.ToLower(r.Username),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
	}
}

// Store is the storage the service needs.
type Store interface {
	storage.Users
	storage.Groups
}

// Service handles account operations. User-facing failures are returned as
// [sec.ValidationError] values; any other error is a system failure.
type Service struct {
	store  Store
	logger *slog.Logger
}

// New returns a Service backed by store.
func New(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Register validates and creates a new user along with its group memberships.
func (s *Service) Register(ctx context.Context, reg Registration) (db.User, error) {
	creds := reg.Credentials()
	if err := sec.ValidateCredentials(creds); err != nil {
		return db.User{}, err
	}
	hash, err := sec.HashPassword(creds.Password)
	if err != nil {
		return db.User{}, err
	}

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return db.User{}, fmt.Errorf("failed to list groups: %w", err)
	}
	selected := make(map[uint64]bool, len(reg.Groups))
	for _, id := range reg.Groups {
		selected[id] = true
	}
	var groupIDs []uint64
	for _, group := range groups {
		if selected[group.ID] {
			groupIDs = append(groupIDs, group.ID)
		}
	}

	user, err := s.store.CreateUser(ctx, db.User{
		Username:     creds.Username,
		FirstName:    creds.FirstName,
		LastName:     creds.LastName,
		Email:        creds.Email,
		PasswordHash: hash,
	}, groupIDs...)
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return db.User{}, sec.ValidationError(fmt.Sprintf("User %s is already registered.", creds.Username))
	case err != nil:
		return db.User{}, fmt.Errorf("failed to create user %q: %w", creds.Username, err)
	}
	s.logger.InfoContext(ctx, "registered user",
		slog.Uint64("user_id", user.ID),
		slog.String("username", user.Username),
		slog.Int("groups", len(groupIDs)),
	)
	return user, nil
}

// Login checks a username and password, returning the matching user.
func (s *Service) Login(ctx context.Context, username, password string) (db.User, error) {
	username = strings.ToLower(username)
	switch {
	case username == "":
		return db.User{}, sec.ErrUsernameRequired
	case password == "":
		return db.User{}, sec.ErrPasswordRequired
	}
	user, err := s.store.GetUserByName(ctx, username)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return db.User{}, ErrIncorrectUsername
	case err != nil:
		return db.User{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if err = sec.ComparePassword(password, user.PasswordHash); err != nil {
		s.logger.DebugContext(ctx, "password mismatch",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return db.User{}, ErrIncorrectPassword
	}
	return user, nil
}

// Delete removes the named user and everything they own.
func (s *Service) Delete(ctx context.Context, username string) error {
	username = strings.ToLower(username)
	user, err := s.store.GetUserByName(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if err = s.store.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user %q: %w", username, err)
	}
	s.logger.InfoContext(ctx, "deleted user",
		slog.Uint64("user_id", user.ID),
		slog.String("username", username),
	)
	return nil
}

// UserMessage returns the message of a user-facing failure that should be
// shown on the submitted form. ok is false for system failures.
func UserMessage(err error) (msg string, ok bool) {
	var verr sec.ValidationError
	if errors.As(err, &verr) {
		return verr.Error(), true
	}
	return "", false
}
