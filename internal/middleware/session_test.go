package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/session"
)

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	store := &session.CookieStore{Secret: "test-secret", TTL: time.Hour}
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "secret content")
	}, RequireSession(store))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/book_login" {
		t.Fatalf("Location = %q, want /book_login", loc)
	}
	if rec.Body.String() != "" && rec.Body.String() == "secret content" {
		t.Fatal("protected content must not render for anonymous visitors")
	}
}

func TestRequireSessionInjectsPayload(t *testing.T) {
	store := &session.CookieStore{Secret: "test-secret", TTL: time.Hour}
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		d, ok := c.Get(CtxSession).(session.Data)
		if !ok {
			return c.String(http.StatusInternalServerError, "no session payload")
		}
		return c.String(http.StatusOK, fmt.Sprintf("account=%d", d.AccountID))
	}, RequireSession(store))

	// Establish a session first.
	seed := httptest.NewRecorder()
	if err := store.Save(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), seed), session.Data{AccountID: 42}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, ck := range seed.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "account=42" {
		t.Fatalf("body = %q, want account=42", rec.Body.String())
	}
}
