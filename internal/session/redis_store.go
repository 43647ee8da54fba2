package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/wildlife-park-booking/internal/utils"
)

// RedisStore keeps session payloads server-side under sess:<id> with the
// configured TTL; the browser only ever sees the random session id.
type RedisStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func sessionKey(id string) string { return "sess:" + id }

// Get loads the session payload for the id cookie.  A missing cookie,
// missing key (expired or never written) or undecodable payload all read
// as "no session".
func (s *RedisStore) Get(c echo.Context) (Data, bool) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return Data{}, false
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	raw, err := s.RDB.Get(ctx, sessionKey(ck.Value)).Bytes()
	if err != nil {
		return Data{}, false
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil || d.AccountID == 0 {
		return Data{}, false
	}
	return d, true
}

// Save writes the payload under the existing session id when the cookie
// carries one this store issued, otherwise under a fresh random id.
// Writing resets the TTL, so the session slides on every state change.
func (s *RedisStore) Save(c echo.Context, d Data) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	// Only reuse an id we handed out ourselves: it must look like one of
	// our random ids and already live in Redis.  Anything else gets a
	// fresh id, so a client can never pick its own session key.
	id := ""
	if ck, err := c.Cookie(CookieName); err == nil && isStoreID(ck.Value) {
		if n, err := s.RDB.Exists(ctx, sessionKey(ck.Value)).Result(); err == nil && n == 1 {
			id = ck.Value
		}
	}
	if id == "" {
		id, err = utils.RandomHex(32)
		if err != nil {
			return err
		}
	}

	if err := s.RDB.Set(ctx, sessionKey(id), raw, s.TTL).Err(); err != nil {
		return err
	}
	setSessionCookie(c, id, s.TTL)
	return nil
}

// isStoreID reports whether v has the shape of an id this store generates:
// exactly 64 lowercase hex characters (utils.RandomHex with 32 bytes).
func isStoreID(v string) bool {
	if len(v) != 64 {
		return false
	}
	for i := 0; i < len(v); i++ {
		ch := v[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}
