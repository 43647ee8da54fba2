package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
	"github.com/iliyamo/wildlife-park-booking/internal/repository"
	"github.com/iliyamo/wildlife-park-booking/internal/session"
)

// Form error messages shown to visitors.  Deliberately generic: validation
// problems name the fix, storage problems reveal nothing.
const (
	errAllFields  = "Please enter all fields."
	errUnexpected = "An unexpected error occurred."
)

// SignupHandler serves both signup flavors.  Member signup and guest
// booking are one operation differing only in the membership flag, so a
// single handler takes the flag and the template as parameters.
type SignupHandler struct {
	Accounts repository.AccountStore
	Sessions session.Store
}

func NewSignupHandler(a repository.AccountStore, s session.Store) *SignupHandler {
	return &SignupHandler{Accounts: a, Sessions: s}
}

// JoinSignup handles GET and POST /join_signup (membership flag = member).
func (h *SignupHandler) JoinSignup(c echo.Context) error {
	return h.signup(c, model.MemberJoined, "join_signup.html")
}

// BookSignup handles GET and POST /book_signup (membership flag = guest).
func (h *SignupHandler) BookSignup(c echo.Context) error {
	return h.signup(c, model.MemberGuest, "book_signup.html")
}

// signup renders the form on GET and runs the signup workflow on POST:
// validate, find-or-create the account (first signup's password wins),
// record the enrolment booking, establish the session and move the visitor
// on to ticket selection.
func (h *SignupHandler) signup(c echo.Context, member int, tmpl string) error {
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, tmpl, echo.Map{"Email": ""})
	}

	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Render(http.StatusOK, tmpl, echo.Map{"Error": errAllFields, "Email": email})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Accounts.Signup(ctx, email, password, member)
	if err != nil {
		return c.Render(http.StatusOK, tmpl, echo.Map{"Error": errUnexpected, "Email": email})
	}
	if err := h.Sessions.Save(c, session.Data{AccountID: a.ID}); err != nil {
		return c.Render(http.StatusOK, tmpl, echo.Map{"Error": errUnexpected, "Email": email})
	}
	return c.Redirect(http.StatusFound, "/book_ticket")
}
