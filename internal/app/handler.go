package app

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/app/component"
	"github.com/stolasapp/bulletin/internal/sec"
	"github.com/stolasapp/bulletin/internal/storage"
)

const (
	pageSize     = 20
	excerptLimit = 280
)

type handler struct {
	accounts *accounts.Service
	store    storage.Store
	sessions *sec.Sessions
	logger   *slog.Logger
}

func (h handler) register(e *echo.Echo) {
	e.GET(component.PathIndex, h.index)
	e.GET(component.PathAbout, h.about)
	e.GET(component.PathProfile, RequireLogin(h.profile))

	auth := e.Group("/auth")
	auth.GET("/register", h.registerForm)
	auth.POST("/register", h.registerSubmit)
	auth.GET("/login", h.loginForm)
	auth.POST("/login", h.loginSubmit)
	auth.GET("/logout", h.logout)

	posts := e.Group("/posts")
	posts.GET("/new", RequireLogin(h.newPostForm))
	posts.POST("/new", RequireLogin(h.newPostSubmit))
	posts.GET("/:slug", h.post)
}
