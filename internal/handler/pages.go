package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Static informational pages.  Nothing here touches the database or the
// session; these routes sit behind the response cache when Redis is
// available.

// Main renders the landing page.
func Main(c echo.Context) error {
	return c.Render(http.StatusOK, "main.html", echo.Map{})
}

// Visit renders the visiting-information page.
func Visit(c echo.Context) error {
	return c.Render(http.StatusOK, "visit.html", echo.Map{})
}

// Conservation renders the conservation page.
func Conservation(c echo.Context) error {
	return c.Render(http.StatusOK, "conservation.html", echo.Map{})
}

// JoinMain renders the "become a member" landing page.
func JoinMain(c echo.Context) error {
	return c.Render(http.StatusOK, "join_main.html", echo.Map{})
}

// BookMain renders the "book a visit" landing page.
func BookMain(c echo.Context) error {
	return c.Render(http.StatusOK, "book_main.html", echo.Map{})
}

// LoginPage renders the booking-login form.  The historical site exposed
// the same form at /login and /book_login; both routes map here for GET.
func LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "book_login.html", echo.Map{"Email": ""})
}
