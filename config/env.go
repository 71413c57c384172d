package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Server
	Port string

	// Database
	DatabaseDriver   string
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabasePath     string

	// Authentication
	JWTSecret string

	// Seed admin
	AdminUsername string
	AdminPassword string

	// Discord
	DiscordBotToken  string
	DiscordChannelId string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port: getEnvWithDefault("PORT", "8000"),

		// "postgres" or "sqlite"; production runs postgres, sqlite keeps
		// local setups to a single file
		DatabaseDriver:   getEnvWithDefault("DATABASE_DRIVER", "postgres"),
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabasePath:     getEnvWithDefault("DATABASE_PATH", "epochrank.db"),

		JWTSecret: getEnvWithDefault("JWT_SECRET", "dummyjwt"),

		AdminUsername: getEnvWithDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvWithDefault("ADMIN_PASSWORD", "admin123"),

		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelId: os.Getenv("DISCORD_CHANNEL_ID"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}
