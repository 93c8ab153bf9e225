package middleware

import (
	"context"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "quill_session"

// SessionResolver resolves an opaque session token to a stored session.
// A nil session with a nil error means "no such session".
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

// SessionAuth enforces a valid session cookie for protected routes. On
// success the acting user's ID is stored in c.Locals("userID") as a uint;
// handlers and services only ever see that opaque user ID.
func SessionAuth(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication required"))
		}

		session, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if session == nil || session.Expired() {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired session"))
		}

		c.Locals("userID", session.UserID)
		c.Locals("sessionToken", session.Token)
		return c.Next()
	}
}

// OptionalSession resolves the session cookie when present but never rejects
// the request. Public read endpoints use it so responses can still be
// personalized for logged-in callers.
func OptionalSession(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}

		session, err := sessions.Resolve(c.UserContext(), token)
		if err == nil && session != nil && !session.Expired() {
			c.Locals("userID", session.UserID)
		}
		return c.Next()
	}
}
