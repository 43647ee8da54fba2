package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
)

// TestAllTemplatesExecute renders every page with representative data so a
// renamed field or template breaks here instead of in production.
func TestAllTemplatesExecute(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	account := model.Account{ID: 1, Login: "a@x.com", Member: model.MemberJoined}
	cases := map[string]interface{}{
		"main.html":         echo.Map{},
		"visit.html":        echo.Map{},
		"conservation.html": echo.Map{},
		"join_main.html":    echo.Map{},
		"book_main.html":    echo.Map{},
		"join_signup.html":  echo.Map{"Email": "a@x.com", "Error": "Please enter all fields."},
		"book_signup.html":  echo.Map{"Email": ""},
		"book_login.html":   echo.Map{"Email": "", "Error": "Invalid email or password."},
		"book_ticket.html":  echo.Map{"Account": account, "PastBookings": 2},
		"paymentpage.html": echo.Map{
			"Tickets":      model.TicketCounts{Adult: 2, Child: 1},
			"AdultTotal":   30,
			"StudentTotal": 0,
			"ChildTotal":   5,
			"InfantTotal":  0,
			"Total":        35,
		},
	}

	for name, data := range cases {
		var buf bytes.Buffer
		if err := r.Render(&buf, name, data, nil); err != nil {
			t.Fatalf("Render(%s): %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("Render(%s): empty output", name)
		}
	}
}

func TestErrorMessageIsShown(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, "book_login.html", echo.Map{"Email": "", "Error": "Invalid email or password."}, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "Invalid email or password.") {
		t.Fatalf("error message not rendered: %s", buf.String())
	}
}
