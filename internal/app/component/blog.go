package component

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/stolasapp/bulletin/internal/storage/db"
)

const dateFormat = "Jan 2, 2006"

// PostSummary is a listing entry.
type PostSummary struct {
	db.PostView
	Excerpt string
}

func postMeta(hw *htmlWriter, author string, created time.Time) {
	hw.raw(`<p class="`, ClassPostMeta, `">by `)
	hw.text(author)
	hw.raw(` on <time datetime="`, created.UTC().Format(time.RFC3339), `">`,
		created.Format(dateFormat), `</time></p>`)
}

// IndexPage renders a page of the post listing. nextURL links to the following
// page and is empty on the last one.
func IndexPage(posts []PostSummary, nextURL string) templ.Component {
	return Layout("", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>Posts</h1>`)
		if len(posts) == 0 {
			hw.raw(`<p class="`, ClassEmpty, `">Nothing has been posted yet.</p>`)
			return hw.err
		}
		hw.raw(`<div id="`, IDPostList, `">`)
		for _, post := range posts {
			hw.raw(`<article class="`, ClassPost, `"><h2><a href="`)
			hw.url(PostURL(post.ID, post.Title))
			hw.raw(`">`)
			hw.text(post.Title)
			hw.raw(`</a></h2>`)
			postMeta(hw, post.AuthorName, post.CreatedAt)
			hw.raw(`<p>`)
			hw.text(post.Excerpt)
			hw.raw(`</p></article>`)
		}
		hw.raw(`</div>`)
		if nextURL != "" {
			hw.raw(`<nav class="`, ClassPagination, `"><a rel="next" href="`)
			hw.url(nextURL)
			hw.raw(`">Older posts</a></nav>`)
		}
		return hw.err
	}))
}

// PostPage renders a single post. body is sanitized HTML.
func PostPage(post db.PostView, body string) templ.Component {
	return Layout(post.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<article class="`, ClassPost, `"><h1>`)
		hw.text(post.Title)
		hw.raw(`</h1>`)
		postMeta(hw, post.AuthorName, post.CreatedAt)
		hw.raw(`<div class="`, ClassPostBody, `">`, body, `</div></article>`)
		return hw.err
	}))
}

// NewPostPage renders the post editor, echoing back any submitted values.
func NewPostPage(title, body, errMsg, csrf string) templ.Component {
	return Layout("New post", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>New post</h1>`)
		hw.component(Alert(errMsg))
		hw.raw(`<form method="post" action="`, PathNewPost, `">`)
		csrfField(hw, csrf)
		inputField(hw, "Title", "text", FieldTitle, title, true)
		hw.raw(`<label for="`, FieldBody, `">Body (Markdown)</label>`,
			`<textarea id="`, FieldBody, `" name="`, FieldBody, `" rows="16" required>`)
		hw.text(body)
		hw.raw(`</textarea><button type="submit">Publish</button></form>`)
		return hw.err
	}))
}

// ProfilePage renders the authenticated user's account details.
func ProfilePage(user db.User, groups []db.Group) templ.Component {
	return Layout(user.Username, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>`)
		hw.text(user.Username)
		hw.raw(`</h1><dl><dt>Name</dt><dd>`)
		hw.text(user.FullName())
		hw.raw(`</dd><dt>Email</dt><dd>`)
		hw.text(user.Email)
		hw.raw(`</dd><dt>Member since</dt><dd>`, user.CreatedAt.Format(dateFormat), `</dd></dl>`)
		hw.raw(`<h2>Groups</h2>`)
		if len(groups) == 0 {
			hw.raw(`<p class="`, ClassEmpty, `">Not a member of any group.</p>`)
			return hw.err
		}
		hw.raw(`<ul class="`, ClassGroups, `">`)
		for _, group := range groups {
			hw.raw(`<li>`)
			hw.text(group.Name)
			hw.raw(`</li>`)
		}
		hw.raw(`</ul>`)
		return hw.err
	}))
}

// AboutPage renders the static about page.
func AboutPage() templ.Component {
	return Layout("About", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>About</h1>`,
			`<p>`, siteName, ` is a small community blog. `,
			`Anyone can read; <a href="`, PathRegister, `">register</a> to write posts.</p>`,
			`<p>Posts are written in Markdown.</p>`)
		return hw.err
	}))
}

// ErrorPage renders a minimal page for HTTP errors.
func ErrorPage(msg string) templ.Component {
	return Layout(msg, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>`)
		hw.text(msg)
		hw.raw(`</h1><p><a href="`, PathIndex, `">Back to posts</a></p>`)
		return hw.err
	}))
}
