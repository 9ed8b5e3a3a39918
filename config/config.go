package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Identity modes select how the acting user is resolved.
const (
	IdentityModeDynamic = "dynamic"
	IdentityModeFixed   = "fixed"
)

type Config struct {
	Port           string
	Env            string
	DBPath         string
	IdentityMode   string
	FixedUserID    string
	GoogleClientID string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		DBPath:         GetEnv("DB_PATH", "./data/worklog.db"),
		IdentityMode:   GetEnv("IDENTITY_MODE", IdentityModeDynamic),
		FixedUserID:    GetEnv("FIXED_USER_ID", ""),
		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID", ""),
	}

	if AppConfig.IdentityMode != IdentityModeDynamic && AppConfig.IdentityMode != IdentityModeFixed {
		log.Fatalf("IDENTITY_MODE must be %q or %q", IdentityModeDynamic, IdentityModeFixed)
	}
	if AppConfig.IdentityMode == IdentityModeFixed && AppConfig.FixedUserID == "" {
		log.Fatal("FIXED_USER_ID is required when IDENTITY_MODE is fixed")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
