// Package app contains the web front-end.
package app

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/app/component"
	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/sec"
	"github.com/stolasapp/bulletin/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// New creates a web front-end server.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	store storage.Store,
) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)
	srv.Debug = cfg.DevMode
	srv.HTTPErrorHandler = handleError(logger)

	sessions := sec.NewSessions(cfg.Session)

	srv.Use(
		logRequests(logger),
		middleware.Recover(),
		middleware.RequestID(),
		middleware.Decompress(),
		middleware.Gzip(),
		middleware.Secure(),
		middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:" + component.FieldCSRF,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteLaxMode,
			CookieSecure:   cfg.Session.Secure,
		}),
		loadIdentity(logger, sessions, store),
	)

	handler{
		accounts: accounts.New(store, logger),
		store:    store,
		sessions: sessions,
		logger:   logger,
	}.register(srv)

	staticFS := echo.MustSubFS(staticFiles, "static")
	srv.StaticFS(component.PathStatic, staticFS)
	srv.FileFS("/robots.txt", "robots.txt", staticFS)
	return srv
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelDebug,
				"request handled",
				attrs...,
			)
			return nil
		}
	}
}
