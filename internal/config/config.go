package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	AutoApprove   bool
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":5000"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "quotes"),
		AutoApprove:   getEnv("AUTO_APPROVE", "false") == "true",
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	log.Println("✅ Config loaded")
	return cfg
}

// AutoApproveEnabled reflects the deployment flag at call time, so a
// redeploy with a changed flag needs no code path through Config.
func AutoApproveEnabled() bool {
	return getEnv("AUTO_APPROVE", "false") == "true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
