package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for signing and parsing session tokens
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
)

// CookieStore keeps the whole session inside the cookie as an HS256-signed
// JWT keyed by the server secret.  Nothing is stored server-side, so it
// works without Redis; the signature stops visitors from editing their
// account id or ticket counts, and the exp claim enforces the TTL.
type CookieStore struct {
	Secret string
	TTL    time.Duration
}

// Get parses and verifies the session token from the cookie.  Any signature
// mismatch, wrong algorithm, expiry or malformed claim reads as "no
// session".
func (s *CookieStore) Get(c echo.Context) (Data, bool) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return Data{}, false
	}

	tok, err := jwt.Parse(ck.Value, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; accepting other
		// algorithms would let a forged token pick its own key.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(s.Secret), nil
	})
	if err != nil || !tok.Valid {
		return Data{}, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Data{}, false
	}

	var d Data
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return Data{}, false
	}
	d.AccountID = uint64(sub)

	// The tickets claim is optional: present only after ticket selection.
	if m, ok := claims["tickets"].(map[string]interface{}); ok {
		d.Tickets = &model.TicketCounts{
			Adult:   claimInt(m, "adult"),
			Student: claimInt(m, "student"),
			Child:   claimInt(m, "child"),
			Infant:  claimInt(m, "infant"),
		}
	}
	return d, true
}

// Save signs a fresh token with the payload and the TTL and sets it as the
// session cookie.  Every save restarts the expiry window.
func (s *CookieStore) Save(c echo.Context, d Data) error {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": d.AccountID,
		"exp": now.Add(s.TTL).Unix(),
		"iat": now.Unix(),
	}
	if d.Tickets != nil {
		claims["tickets"] = map[string]int{
			"adult":   d.Tickets.Adult,
			"student": d.Tickets.Student,
			"child":   d.Tickets.Child,
			"infant":  d.Tickets.Infant,
		}
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return err
	}
	setSessionCookie(c, signed, s.TTL)
	return nil
}

// claimInt reads a numeric claim that JSON decoding produced as float64.
func claimInt(m map[string]interface{}, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}
