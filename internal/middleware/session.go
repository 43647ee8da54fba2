package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/session"
)

// CtxSession is the context key under which the session guard stores the
// loaded session payload.  Handlers read it via c.Get().
const CtxSession = "session_data"

// RequireSession returns an Echo middleware that loads the visitor's
// session and injects the payload into the request context.  A visitor
// without a valid session is redirected to the booking login rather than
// shown an error, matching the site's step-back policy.
func RequireSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, ok := store.Get(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/book_login")
			}
			c.Set(CtxSession, d)
			return next(c)
		}
	}
}
