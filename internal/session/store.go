// Package session carries the per-browser visitor state: the account id
// established at signup or login and, between ticket selection and the
// payment summary, the chosen ticket counts.  State lives either server-side
// in Redis (session id cookie) or entirely inside a signed cookie; both
// expire after the configured TTL.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/wildlife-park-booking/internal/model"
)

// CookieName is the cookie carrying either the session id (Redis store) or
// the signed session token (cookie store).
const CookieName = "park_session"

// Data is the session payload.  Tickets stays nil until the visitor submits
// the ticket-selection form; the payment summary requires it.
type Data struct {
	AccountID uint64              `json:"account_id"`
	Tickets   *model.TicketCounts `json:"tickets,omitempty"`
}

// Store abstracts where session data lives.  Get reports ok=false for a
// missing, expired or tampered session; handlers translate that into a
// redirect to the appropriate earlier step, never an error page.
type Store interface {
	Get(c echo.Context) (Data, bool)
	Save(c echo.Context, d Data) error
}

// NewStore picks the backing store: Redis when a client is available,
// otherwise the signed-cookie store.  Both honor the same TTL.
func NewStore(rdb *redis.Client, secret string, ttl time.Duration) Store {
	if rdb != nil {
		return &RedisStore{RDB: rdb, TTL: ttl}
	}
	return &CookieStore{Secret: secret, TTL: ttl}
}

func setSessionCookie(c echo.Context, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	})
}
