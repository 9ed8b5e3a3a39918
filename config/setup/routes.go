package setup

import (
	"time"

	"worklog/app"
	"worklog/handlers"
	"worklog/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Public routes
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Quotes are reference data, outside identity scope
	fiberApp.Get("/api/quotes/random", handlers.GetRandomQuote(application))

	// Identity-scoped API routes. The identity middleware resolves the
	// acting user for every request below; this is the single place the
	// isolation filter's user id comes from.
	api := fiberApp.Group("/api", middleware.Identity(application.Resolver), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(string); ok {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Get("/me", handlers.Me(application))

	api.Get("/sessions", handlers.GetSessions(application))
	api.Post("/sessions", handlers.CreateSession(application))
	api.Get("/sessions/:id", handlers.GetSession(application))
	api.Delete("/sessions/:id", handlers.DeleteSession(application))

	api.Get("/summaries", handlers.GetSummaries(application))
	api.Put("/summaries", handlers.UpsertSummary(application))

	api.Get("/goals", handlers.GetGoals(application))
	api.Post("/goals", handlers.CreateGoal(application))
	api.Patch("/goals/:id", handlers.UpdateGoal(application))
	api.Delete("/goals", handlers.DeleteGoalsByMonth(application))
	api.Delete("/goals/:id", handlers.DeleteGoal(application))
}
