package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL      string
	SendCookies     bool
	Port            string
	SessionSecret   string
	DataDir         string
	DefaultLang     string
	HTTPTimeoutSecs int
	WebDir          string
}

// LoadConfig loads the environment variables and returns the gateway config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		BackendURL:      getEnv("BACKEND_URL", "https://kisandrishti.onrender.com"),
		SendCookies:     getEnvBool("BACKEND_SEND_COOKIES", true),
		Port:            getEnv("PORT", "8877"),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DefaultLang:     getEnv("DEFAULT_LANG", "en"),
		HTTPTimeoutSecs: getEnvInt("HTTP_TIMEOUT_SECONDS", 0),
		WebDir:          getEnv("WEB_DIR", "./web"),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET not set")
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a bool, using default %v", key, v, def)
		return def
	}
	return b
}
