package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/bulletin/internal/app/component"
	"github.com/stolasapp/bulletin/internal/sec"
	"github.com/stolasapp/bulletin/internal/storage"
)

// loadIdentity attaches the user named by the session cookie to the request
// context. Requests without a valid session continue anonymously.
func loadIdentity(logger *slog.Logger, sessions *sec.Sessions, users storage.Users) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			user, ok, err := sec.Authenticate(ctx, req, sessions, users)
			if err != nil {
				return fmt.Errorf("failed to load session user: %w", err)
			}
			if !ok {
				return next(c)
			}
			logger.DebugContext(ctx, "authenticated request", slog.Uint64("user_id", user.ID))
			c.SetRequest(req.WithContext(sec.SetAuthenticatedUser(ctx, user)))
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page and otherwise
// calls next unchanged.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := sec.GetAuthenticatedUser(c.Request().Context()); !ok {
			return c.Redirect(http.StatusFound, component.PathLogin)
		}
		return next(c)
	}
}
