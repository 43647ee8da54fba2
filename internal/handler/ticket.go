package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/middleware"
	"github.com/iliyamo/wildlife-park-booking/internal/model"
	"github.com/iliyamo/wildlife-park-booking/internal/queue"
	"github.com/iliyamo/wildlife-park-booking/internal/repository"
	"github.com/iliyamo/wildlife-park-booking/internal/session"
)

const errNoTickets = "Please select at least one ticket."
const errBadCounts = "Ticket counts must be whole numbers of zero or more."

var errInvalidCount = errors.New("invalid ticket count")

// TicketHandler serves GET and POST /book_ticket.  Routes using it must be
// wrapped in middleware.RequireSession, which guarantees a session payload
// in the request context.
type TicketHandler struct {
	Accounts repository.AccountStore
	Bookings repository.BookingStore
	Sessions session.Store
	// Publish sends the booking-created event after a successful booking.
	// Best-effort: failures are logged, never surfaced to the visitor.
	// May be nil (e.g. in tests).
	Publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewTicketHandler(a repository.AccountStore, b repository.BookingStore, s session.Store,
	publish func(ctx context.Context, ev queue.BookingCreatedEvent) error) *TicketHandler {
	return &TicketHandler{Accounts: a, Bookings: b, Sessions: s, Publish: publish}
}

// Select renders the ticket form on GET and books the selection on POST.
func (h *TicketHandler) Select(c echo.Context) error {
	sess, _ := c.Get(middleware.CtxSession).(session.Data)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	account, err := h.Accounts.ByID(ctx, sess.AccountID)
	if err != nil {
		// Session points at an account that no longer resolves; send the
		// visitor back through login rather than erroring.
		return c.Redirect(http.StatusFound, "/book_login")
	}

	if c.Request().Method != http.MethodPost {
		return h.renderForm(c, account, "")
	}

	counts, err := parseCounts(c)
	if err != nil {
		return h.renderForm(c, account, errBadCounts)
	}
	if counts.IsZero() {
		return h.renderForm(c, account, errNoTickets)
	}

	booking, err := h.Bookings.Create(ctx, account.ID, counts)
	if err != nil {
		return h.renderForm(c, account, errUnexpected)
	}

	sess.Tickets = &counts
	if err := h.Sessions.Save(c, sess); err != nil {
		return h.renderForm(c, account, errUnexpected)
	}

	if h.Publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID: booking.ID,
			AccountID: account.ID,
			Login:     account.Login,
			Member:    account.Member,
			Adult:     counts.Adult,
			Student:   counts.Student,
			Child:     counts.Child,
			Infant:    counts.Infant,
			Total:     counts.Total(),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("booking-event: publish failed: %v", err)
		}
	}

	return c.Redirect(http.StatusFound, "/paymentpage")
}

func (h *TicketHandler) renderForm(c echo.Context, account model.Account, formErr string) error {
	past := 0
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if bookings, err := h.Bookings.ByAccount(ctx, account.ID); err == nil {
		// Enrolment rows carry no counts; only real selections count as
		// previous bookings.
		for _, b := range bookings {
			if b.Counts != nil {
				past++
			}
		}
	}
	data := echo.Map{"Account": account, "PastBookings": past}
	if formErr != "" {
		data["Error"] = formErr
	}
	return c.Render(http.StatusOK, "book_ticket.html", data)
}

// parseCounts reads the four count fields.  Field names match the original
// booking form ("Adults" really is capitalized).  Missing or blank fields
// default to zero; non-numeric or negative values are a validation error.
func parseCounts(c echo.Context) (model.TicketCounts, error) {
	var counts model.TicketCounts
	for field, dst := range map[string]*int{
		"Adults":  &counts.Adult,
		"student": &counts.Student,
		"child":   &counts.Child,
		"infant":  &counts.Infant,
	} {
		raw := strings.TrimSpace(c.FormValue(field))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.TicketCounts{}, errInvalidCount
		}
		*dst = n
	}
	if !counts.Valid() {
		return model.TicketCounts{}, errInvalidCount
	}
	return counts, nil
}
