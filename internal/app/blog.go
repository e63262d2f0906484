package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/bulletin/internal/app/component"
	"github.com/stolasapp/bulletin/internal/content"
	"github.com/stolasapp/bulletin/internal/pagination"
	"github.com/stolasapp/bulletin/internal/sec"
	"github.com/stolasapp/bulletin/internal/slugconv"
	"github.com/stolasapp/bulletin/internal/storage/db"
)

const (
	errTitleRequired sec.ValidationError = "Title is required."
	errBodyRequired  sec.ValidationError = "Body is required."
)

func (h handler) index(c echo.Context) error {
	ctx := c.Request().Context()
	cur, err := pagination.FromToken(c.QueryParam(component.PageParam))
	if err != nil {
		return toHTTPError(err)
	}

	// one extra to learn whether another page follows
	posts, err := h.store.ListPosts(ctx, cur.Before, pageSize+1)
	if err != nil {
		return err
	}

	var nextURL string
	if len(posts) > pageSize {
		posts = posts[:pageSize]
		tkn, err := pagination.ToToken(pagination.Cursor{Before: posts[pageSize-1].ID})
		if err != nil {
			return err
		}
		nextURL = component.IndexURL(tkn)
	}

	summaries := make([]component.PostSummary, len(posts))
	for i, post := range posts {
		excerpt, err := content.Excerpt(post.Body, excerptLimit)
		if err != nil {
			return fmt.Errorf("failed to render excerpt of post %d: %w", post.ID, err)
		}
		summaries[i] = component.PostSummary{PostView: post, Excerpt: excerpt}
	}
	return render(c, http.StatusOK, component.IndexPage(summaries, nextURL))
}

func (h handler) post(c echo.Context) error {
	slug := c.Param("slug")
	postID, err := slugconv.PostIDFromSlug(slug)
	if err != nil {
		return toHTTPError(err)
	}

	post, err := h.store.GetPost(c.Request().Context(), postID)
	if err != nil {
		return toHTTPError(err)
	}
	if canonical := slugconv.PostSlug(post.ID, post.Title); slug != canonical {
		return c.Redirect(http.StatusMovedPermanently, component.PostURL(post.ID, post.Title))
	}

	body, err := content.Render(post.Body)
	if err != nil {
		return fmt.Errorf("failed to render post %d: %w", post.ID, err)
	}
	return render(c, http.StatusOK, component.PostPage(post, body))
}

func (h handler) newPostForm(c echo.Context) error {
	return render(c, http.StatusOK, component.NewPostPage("", "", "", csrfToken(c)))
}

func (h handler) newPostSubmit(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := sec.GetAuthenticatedUser(ctx)
	title := strings.TrimSpace(c.FormValue(component.FieldTitle))
	body := c.FormValue(component.FieldBody)

	var verr sec.ValidationError
	switch {
	case title == "":
		verr = errTitleRequired
	case strings.TrimSpace(body) == "":
		verr = errBodyRequired
	}
	if verr != "" {
		return render(c, http.StatusOK, component.NewPostPage(title, body, verr.Error(), csrfToken(c)))
	}

	post, err := h.store.CreatePost(ctx, db.Post{
		AuthorID: user.ID,
		Title:    title,
		Body:     body,
	})
	if err != nil {
		return err
	}
	h.logger.InfoContext(ctx, "created post",
		slog.Uint64("post_id", post.ID),
		slog.Uint64("author_id", user.ID),
	)
	return c.Redirect(http.StatusFound, component.PostURL(post.ID, post.Title))
}

func (h handler) profile(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := sec.GetAuthenticatedUser(ctx)
	groups, err := h.store.ListUserGroups(ctx, user.ID)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, component.ProfilePage(user, groups))
}

func (h handler) about(c echo.Context) error {
	return render(c, http.StatusOK, component.AboutPage())
}
