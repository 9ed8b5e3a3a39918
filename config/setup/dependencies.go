package setup

import (
	"log/slog"

	"worklog/app"
	"worklog/config"
	"worklog/database"
	"worklog/identity"
	"worklog/models"
	"worklog/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	// Milestone quotes are reference data; populate only an empty table
	if err := repo.SeedQuotes(); err != nil {
		return nil, err
	}

	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine()
	logger.Info("session cleanup routine started")

	// Identity policy is selected here, once; nothing below this point
	// branches on the mode.
	var resolver identity.Resolver
	switch config.AppConfig.IdentityMode {
	case config.IdentityModeFixed:
		// The constant identity must exist as a row so foreign keys hold
		if err := repo.CreateUser(&models.User{ID: config.AppConfig.FixedUserID}); err != nil {
			return nil, err
		}
		resolver = identity.Fixed{UserID: config.AppConfig.FixedUserID}
		logger.Info("identity resolver configured", "mode", "fixed")
	default:
		resolver = identity.NewDynamic(repo, sessionStore, config.AppConfig.GoogleClientID)
		logger.Info("identity resolver configured", "mode", "dynamic",
			"bearer_tokens", config.AppConfig.GoogleClientID != "")
	}

	application := app.New(repo, sessionStore, resolver, logger)
	logger.Info("application initialized with dependency injection")

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
