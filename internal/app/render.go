package app

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/stolasapp/bulletin/internal/app/component"
	"github.com/stolasapp/bulletin/internal/pagination"
	"github.com/stolasapp/bulletin/internal/slugconv"
	"github.com/stolasapp/bulletin/internal/storage"
)

var renderBufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// render writes the component as an HTML response. The component is buffered
// first so a rendering failure can still produce an error response.
func render(c echo.Context, status int, comp templ.Component) error {
	buf := renderBufferPool.Get().(*bytes.Buffer) //nolint:forcetypeassert // guaranteed by impl
	defer renderBufferPool.Put(buf)
	buf.Reset()

	if err := comp.Render(c.Request().Context(), buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// csrfToken returns the token the CSRF middleware issued for this request. It
// is empty when the request was allowed through on its Sec-Fetch-Site header.
func csrfToken(c echo.Context) string {
	tok, _ := c.Get("csrf").(string)
	return tok
}

// toHTTPError converts an error to an Echo HTTPError with the appropriate
// HTTP status code. Other errors pass through unchanged.
func toHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var tokenErr pagination.TokenError
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, slugconv.ErrInvalidSlug):
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	case errors.As(err, &tokenErr):
		return echo.NewHTTPError(http.StatusBadRequest, tokenErr.Error()).SetInternal(err)
	default:
		return err
	}
}

// handleError renders an error page. Unexpected errors are logged and shown
// as a 500 without their details.
func handleError(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(toHTTPError(err), &httpErr) {
			code = httpErr.Code
			msg = http.StatusText(code)
			if m, ok := httpErr.Message.(string); ok && code < http.StatusInternalServerError {
				msg = m
			}
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("uri", c.Request().RequestURI),
				slog.Any("error", err),
			)
		}

		var rerr error
		if c.Request().Method == http.MethodHead {
			rerr = c.NoContent(code)
		} else {
			rerr = render(c, code, component.ErrorPage(msg))
		}
		if rerr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to render error page",
				slog.Any("error", rerr),
			)
		}
	}
}
