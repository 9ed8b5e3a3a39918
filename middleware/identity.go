package middleware

import (
	"errors"
	"strings"
	"time"

	"worklog/config"
	"worklog/identity"

	"github.com/gofiber/fiber/v2"
)

// Identity resolves the acting user for every request and stores the
// result in locals. In dynamic mode this may provision an anonymous
// principal; its session cookie is issued here so the identity survives
// the next request. Resolution failure aborts the request, since without
// an identity no query below can be scoped.
func Identity(resolver identity.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := identity.Credentials{
			SessionID: c.Cookies("session_id"),
		}

		authHeader := c.Get("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			creds.BearerToken = parts[1]
		}

		principal, err := resolver.Resolve(c.Context(), creds)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve identity",
			})
		}

		if principal.NewSession {
			c.Cookie(&fiber.Cookie{
				Name:     "session_id",
				Value:    principal.SessionID,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				Secure:   config.AppConfig.Env == "production",
				SameSite: "Lax",
				Path:     "/",
			})
		}

		c.Locals("userID", principal.UserID)
		if principal.SessionID != "" {
			c.Locals("sessionID", principal.SessionID)
		}

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
