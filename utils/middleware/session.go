package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/utils/session"
)

// SessionIDHeader is the header the public clients send their persisted
// session token in.
const SessionIDHeader = "x-session-id"

const sessionLocalsKey = "session_id"

// SessionID resolves the effective session identifier for every request: the
// x-session-id header when the client supplies one, otherwise a deterministic
// per-day hash of the client IP and user agent.
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(SessionIDHeader)
		if id == "" {
			id = session.ID(c.IP(), c.Get(fiber.HeaderUserAgent), time.Now())
		}
		c.Locals(sessionLocalsKey, id)
		return c.Next()
	}
}

// GetSessionID returns the session identifier resolved for this request.
func GetSessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionLocalsKey).(string); ok {
		return id
	}
	return ""
}
