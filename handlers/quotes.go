package handlers

import (
	"worklog/app"

	"github.com/gofiber/fiber/v2"
)

// GetRandomQuote returns one milestone quote picked uniformly from the
// reference set. Quotes are not identity-scoped, and an empty reference
// set degrades to a fixed fallback rather than failing.
func GetRandomQuote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quote, err := a.Quotes.Random()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch quote", err)
		}

		return success(c, fiber.Map{"quote": quote})
	}
}
