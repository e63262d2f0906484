package sec

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/authn"

	"github.com/stolasapp/bulletin/internal/storage"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

// Authenticate resolves the logged in user from req's session cookie. ok is
// false for anonymous requests: no cookie, a cookie that fails verification,
// or a user that no longer exists. Any other store failure is returned.
func Authenticate(ctx context.Context, req *http.Request, sessions *Sessions, store storage.Users) (user db.User, ok bool, err error) {
	userID, ok := sessions.UserID(req)
	if !ok {
		return user, false, nil
	}
	switch user, err = store.GetUser(ctx, userID); {
	case errors.Is(err, storage.ErrNotFound):
		return db.User{}, false, nil
	case err != nil:
		return db.User{}, false, err
	default:
		return user, true, nil
	}
}

// GetAuthenticatedUser returns the user information for the authenticated
// user. ok is false if the context has no authenticated user.
func GetAuthenticatedUser(ctx context.Context) (user db.User, ok bool) {
	user, ok = authn.GetInfo(ctx).(db.User)
	return user, ok
}

// SetAuthenticatedUser sets the user information for an authenticated user on
// the returned context.
func SetAuthenticatedUser(ctx context.Context, user db.User) context.Context {
	return authn.SetInfo(ctx, user)
}
