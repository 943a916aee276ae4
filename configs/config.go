package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	BaseURL       string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	_ = godotenv.Load()

	ttlHours := 24
	if v, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && v > 0 {
		ttlHours = v
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "sabor.db"),
		Port:          getEnv("PORT", "8000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(ttlHours) * time.Hour,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
