package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/session"
)

// PaymentHandler serves GET and POST /paymentpage.
type PaymentHandler struct {
	Sessions session.Store
}

func NewPaymentHandler(s session.Store) *PaymentHandler {
	return &PaymentHandler{Sessions: s}
}

// Summary renders the payment summary for the ticket counts stashed in the
// session by the selection step.  Anything short of a session with ticket
// state sends the visitor back to the selection form (which itself bounces
// session-less visitors on to the login).  The page displays the computed
// total only; no payment is taken and nothing is persisted.
func (h *PaymentHandler) Summary(c echo.Context) error {
	sess, ok := h.Sessions.Get(c)
	if !ok || sess.Tickets == nil {
		return c.Redirect(http.StatusFound, "/book_ticket")
	}

	t := *sess.Tickets
	adult, student, child, infant := t.Subtotals()
	return c.Render(http.StatusOK, "paymentpage.html", echo.Map{
		"Tickets":      t,
		"AdultTotal":   adult,
		"StudentTotal": student,
		"ChildTotal":   child,
		"InfantTotal":  infant,
		"Total":        t.Total(),
	})
}
