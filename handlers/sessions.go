package handlers

import (
	"worklog/app"
	"worklog/middleware"
	"worklog/models"

	"github.com/gofiber/fiber/v2"
)

// GetSessions lists the user's work sessions, optionally narrowed to one
// date via ?date=YYYY-MM-DD.
func GetSessions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		if date := c.Query("date"); date != "" {
			sessions, err := a.Sessions.GetByDate(userID, date)
			if err != nil {
				return serverErrorWithDetails(c, "Failed to fetch sessions", err)
			}
			return success(c, fiber.Map{"sessions": sessions})
		}

		sessions, err := a.Sessions.GetAll(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch sessions", err)
		}
		return success(c, fiber.Map{"sessions": sessions})
	}
}

// GetSession retrieves one of the user's work sessions by id
func GetSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		id := c.Params("id")

		session, err := a.Sessions.GetByID(userID, id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch session", err)
		}
		if session == nil {
			return notFound(c, "Session not found")
		}

		return success(c, fiber.Map{"session": session})
	}
}

// CreateSession records a new work session for the user
func CreateSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSessionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)

		session, err := a.Sessions.Add(userID, &req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save session", err)
		}

		return created(c, fiber.Map{"session": session})
	}
}

// DeleteSession removes one of the user's work sessions. An id owned by
// another user matches nothing, which is still a success.
func DeleteSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		id := c.Params("id")

		if err := a.Sessions.Delete(userID, id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete session", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
