package app

import (
	"log/slog"

	"worklog/database"
	"worklog/identity"
	"worklog/services"
	"worklog/session"
	"worklog/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SessionStore *session.Store
	Resolver     identity.Resolver
	Sessions     *services.SessionService
	Summaries    *services.SummaryService
	Goals        *services.GoalService
	Quotes       *services.QuoteService
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, resolver identity.Resolver, logger *slog.Logger) *App {
	return &App{
		Repo:         repo,
		SessionStore: sessionStore,
		Resolver:     resolver,
		Sessions:     services.NewSessionService(repo),
		Summaries:    services.NewSummaryService(repo),
		Goals:        services.NewGoalService(repo),
		Quotes:       services.NewQuoteService(repo),
		Validator:    validator.New(),
		Logger:       logger,
	}
}
