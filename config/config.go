package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Tarunamathi/lms-auth-service/pkg/constant"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	BcryptCost          int
	ResetTokenExpiryMin int
}

func Load() *Config {
	// Local development convenience; env vars always win.
	_ = godotenv.Load()

	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DBURL:               mustGetEnv("DB_URL"),
		BcryptCost:          getEnvAsInt("BCRYPT_COST", constant.DefaultBcryptCost),
		ResetTokenExpiryMin: getEnvAsInt("RESET_TOKEN_EXPIRY", constant.DefaultResetTokenExpiryMin),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
