package handlers

import (
	"errors"

	"worklog/app"
	"worklog/middleware"
	"worklog/models"
	"worklog/services"

	"github.com/gofiber/fiber/v2"
)

// GetGoals lists the user's goals. ?month=YYYY-MM narrows to a month,
// and ?type=major|minor further narrows within it.
func GetGoals(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		if month := c.Query("month"); month != "" {
			goals, err := a.Goals.GetByMonth(userID, month, c.Query("type"))
			if errors.Is(err, services.ErrInvalidGoalType) {
				return badRequest(c, err.Error())
			}
			if err != nil {
				return serverErrorWithDetails(c, "Failed to fetch goals", err)
			}
			return success(c, fiber.Map{"goals": goals})
		}

		goals, err := a.Goals.GetAll(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch goals", err)
		}
		return success(c, fiber.Map{"goals": goals})
	}
}

// CreateGoal records a new goal for the user
func CreateGoal(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateGoalRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)

		goal, err := a.Goals.Add(userID, &req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save goal", err)
		}

		return created(c, fiber.Map{"goal": goal})
	}
}

// UpdateGoal applies a partial patch to one of the user's goals
func UpdateGoal(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateGoalRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationFailed(c, err)
		}

		userID := middleware.GetUserID(c)
		id := c.Params("id")

		if err := a.Goals.Update(userID, id, &req); err != nil {
			return serverErrorWithDetails(c, "Failed to update goal", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// DeleteGoal removes one of the user's goals
func DeleteGoal(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		id := c.Params("id")

		if err := a.Goals.Delete(userID, id); err != nil {
			return serverErrorWithDetails(c, "Failed to delete goal", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}

// DeleteGoalsByMonth bulk-removes the user's goals for ?month=YYYY-MM
func DeleteGoalsByMonth(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		if month == "" {
			return badRequest(c, "month is required")
		}

		userID := middleware.GetUserID(c)

		if err := a.Goals.DeleteByMonth(userID, month); err != nil {
			return serverErrorWithDetails(c, "Failed to delete goals", err)
		}

		return success(c, fiber.Map{"success": true})
	}
}
