package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/bulletin/internal/accounts"
	"github.com/stolasapp/bulletin/internal/app/component"
)

func (h handler) registerForm(c echo.Context) error {
	return h.renderRegister(c, component.RegisterForm{}, "")
}

func (h handler) registerSubmit(c echo.Context) error {
	form, err := parseRegisterForm(c)
	if err != nil {
		return err
	}

	reg := accounts.Registration{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  c.FormValue(component.FieldPassword),
	}
	for id := range form.Selected {
		reg.Groups = append(reg.Groups, id)
	}

	_, err = h.accounts.Register(c.Request().Context(), reg)
	if msg, ok := accounts.UserMessage(err); ok {
		return h.renderRegister(c, form, msg)
	} else if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, component.PathLogin)
}

func (h handler) renderRegister(c echo.Context, form component.RegisterForm, errMsg string) error {
	groups, err := h.store.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, component.RegisterPage(groups, form, errMsg, csrfToken(c)))
}

// parseRegisterForm reads the submitted registration fields, selecting every
// group whose checkbox was checked.
func parseRegisterForm(c echo.Context) (component.RegisterForm, error) {
	params, err := c.FormParams()
	if err != nil {
		return component.RegisterForm{}, echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	form := component.RegisterForm{
		Username:  params.Get(component.FieldUsername),
		FirstName: params.Get(component.FieldFirstName),
		LastName:  params.Get(component.FieldLastName),
		Email:     params.Get(component.FieldEmail),
		Selected:  make(map[uint64]bool),
	}
	for name := range params {
		id, ok := component.GroupIDFromField(name)
		if ok && params.Get(name) == component.CheckboxOn {
			form.Selected[id] = true
		}
	}
	return form, nil
}

func (h handler) loginForm(c echo.Context) error {
	return render(c, http.StatusOK, component.LoginPage("", "", csrfToken(c)))
}

func (h handler) loginSubmit(c echo.Context) error {
	username := c.FormValue(component.FieldUsername)
	user, err := h.accounts.Login(
		c.Request().Context(),
		username,
		c.FormValue(component.FieldPassword),
	)
	if msg, ok := accounts.UserMessage(err); ok {
		return render(c, http.StatusOK, component.LoginPage(username, msg, csrfToken(c)))
	} else if err != nil {
		return err
	}

	cookie, err := h.sessions.Issue(user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, component.PathIndex)
}

func (h handler) logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear())
	return c.Redirect(http.StatusFound, component.PathIndex)
}
