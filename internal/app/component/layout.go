package component

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stolasapp/bulletin/internal/sec"
)

const siteName = "Bulletin"

// Layout wraps page content in the site chrome. The navigation reflects the
// user authenticated on ctx.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		if title != "" {
			hw.text(title)
			hw.raw(` - `)
		}
		hw.raw(siteName, `</title>`,
			`<link rel="stylesheet" href="`, PathStatic, `style.css">`,
			`</head><body>`)

		hw.raw(`<header class="`, ClassSiteHeader, `"><a class="`, ClassSiteTitle, `" href="`, PathIndex, `">`,
			siteName, `</a><nav class="`, ClassNav, `">`)
		hw.raw(`<a href="`, PathAbout, `">About</a>`)
		if user, ok := sec.GetAuthenticatedUser(ctx); ok {
			hw.raw(`<a href="`, PathNewPost, `">New post</a>`)
			hw.raw(`<a href="`, PathProfile, `">`)
			hw.text(user.Username)
			hw.raw(`</a>`)
			hw.raw(`<a href="`, PathLogout, `">Log out</a>`)
		} else {
			hw.raw(`<a href="`, PathRegister, `">Register</a>`)
			hw.raw(`<a href="`, PathLogin, `">Log in</a>`)
		}
		hw.raw(`</nav></header>`)

		hw.raw(`<main id="`, IDContent, `">`)
		hw.component(content)
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}
