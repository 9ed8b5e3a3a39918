package handlers

import (
	"worklog/app"
	"worklog/middleware"

	"github.com/gofiber/fiber/v2"
)

// Me returns the identity resolved for this request
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		user, err := a.Repo.GetUser(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch user", err)
		}

		// Fixed-identity deployments have no user row behind the constant id
		anonymous := true
		if user != nil {
			anonymous = user.Anonymous
		}

		return success(c, fiber.Map{
			"user_id":   userID,
			"anonymous": anonymous,
		})
	}
}
