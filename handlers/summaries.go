package handlers

import (
	"worklog/app"
	"worklog/middleware"
	"worklog/models"

	"github.com/gofiber/fiber/v2"
)

// GetSummaries lists the user's daily summaries. ?date= narrows to a
// single day (a missing day yields a null summary, not an error),
// ?start=&end= to an inclusive range.
func GetSummaries(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		if date := c.Query("date"); date != "" {
			summary, err := a.Summaries.GetByDate(userID, date)
			if err != nil {
				return serverErrorWithDetails(c, "Failed to fetch summary", err)
			}
			return success(c, fiber.Map{"summary": summary})
		}

		start, end := c.Query("start"), c.Query("end")
		if start != "" || end != "" {
			if start == "" || end == "" {
				return badRequest(c, "start and end are both required for a range")
			}
			summaries, err := a.Summaries.GetByDateRange(userID, start, end)
			if err != nil {
				return serverErrorWithDetails(c, "Failed to fetch summaries", err)
			}
			return success(c, fiber.Map{"summaries": summaries})
		}

		summaries, err := a.Summaries.GetAll(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch summaries", err)
		}
		return success(c, fiber.Map{"summaries": summaries})
	}
}

// UpsertSummary inserts or replaces the user's summary for a date
func UpsertSummary(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpsertSummaryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)

		if err := a.Summaries.Upsert(userID, &req); err != nil {
			return serverErrorWithDetails(c, "Failed to save summary", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
