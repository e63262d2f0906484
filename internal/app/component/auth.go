package component

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stolasapp/bulletin/internal/storage/db"
)

// LoginPage renders the login form. username is echoed back after a failed
// attempt; the password never is.
func LoginPage(username, errMsg, csrf string) templ.Component {
	return Layout("Log in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>Log in</h1>`)
		hw.component(Alert(errMsg))
		hw.raw(`<form method="post" action="`, PathLogin, `">`)
		csrfField(hw, csrf)
		inputField(hw, "Username", "text", FieldUsername, username, true)
		inputField(hw, "Password", "password", FieldPassword, "", true)
		hw.raw(`<button type="submit">Log in</button></form>`)
		hw.raw(`<p>No account yet? <a href="`, PathRegister, `">Register</a></p>`)
		return hw.err
	}))
}

// RegisterForm holds the values submitted to the registration form.
type RegisterForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Selected  map[uint64]bool
}

// RegisterPage renders the registration form with a checkbox per group.
func RegisterPage(groups []db.Group, form RegisterForm, errMsg, csrf string) templ.Component {
	return Layout("Register", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw(`<h1>Register</h1>`)
		hw.component(Alert(errMsg))
		hw.raw(`<form method="post" action="`, PathRegister, `">`)
		csrfField(hw, csrf)
		inputField(hw, "Username", "text", FieldUsername, form.Username, true)
		inputField(hw, "First name", "text", FieldFirstName, form.FirstName, true)
		inputField(hw, "Last name", "text", FieldLastName, form.LastName, true)
		inputField(hw, "Email", "email", FieldEmail, form.Email, true)
		inputField(hw, "Password", "password", FieldPassword, "", true)
		if len(groups) > 0 {
			hw.raw(`<fieldset class="`, ClassGroups, `"><legend>Groups</legend>`)
			for _, group := range groups {
				name := GroupField(group.ID)
				hw.raw(`<label><input type="checkbox" name="`, name, `" value="`, CheckboxOn, `"`)
				if form.Selected[group.ID] {
					hw.raw(` checked`)
				}
				hw.raw(`> `)
				hw.text(group.Name)
				hw.raw(`</label>`)
			}
			hw.raw(`</fieldset>`)
		}
		hw.raw(`<button type="submit">Register</button></form>`)
		hw.raw(`<p>Already registered? <a href="`, PathLogin, `">Log in</a></p>`)
		return hw.err
	}))
}
