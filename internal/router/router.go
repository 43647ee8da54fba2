package router // package router defines how HTTP routes are registered for the site

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/wildlife-park-booking/internal/handler"    // import the handlers that implement the workflow
	"github.com/iliyamo/wildlife-park-booking/internal/middleware" // import the session guard and response cache
	"github.com/iliyamo/wildlife-park-booking/internal/session"    // session store backing the guard
)

// RegisterPages registers the routes that never touch the database: the
// informational pages, the form-only GET routes and the health check.  The
// cache middleware fronts the informational pages; pass a pass-through
// middleware when caching is disabled.
func RegisterPages(e *echo.Echo, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	e.GET("/", handler.Main, cache)
	e.GET("/visit", handler.Visit, cache)
	e.GET("/conservation", handler.Conservation, cache)

	e.GET("/login", handler.LoginPage)
	e.GET("/join_main", handler.JoinMain)
	e.GET("/book_main", handler.BookMain)
}

// RegisterBooking registers the booking workflow.  Signup and login are
// reachable anonymously; ticket selection sits behind the session guard,
// which redirects visitors without a session to the booking login.  The
// payment summary checks its own precondition (ticket state in the
// session) and steps back to ticket selection when it is missing.
func RegisterBooking(e *echo.Echo, su *handler.SignupHandler, li *handler.LoginHandler,
	tk *handler.TicketHandler, pay *handler.PaymentHandler, store session.Store) {

	// Each form endpoint serves its own GET (render) and POST (submit).
	e.GET("/join_signup", su.JoinSignup)
	e.POST("/join_signup", su.JoinSignup)
	e.GET("/book_signup", su.BookSignup)
	e.POST("/book_signup", su.BookSignup)
	e.GET("/book_login", li.Login)
	e.POST("/book_login", li.Login)

	guard := middleware.RequireSession(store)
	e.GET("/book_ticket", tk.Select, guard)
	e.POST("/book_ticket", tk.Select, guard)
	e.GET("/paymentpage", pay.Summary)
	e.POST("/paymentpage", pay.Summary)
}
