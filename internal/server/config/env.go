package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables take precedence over it.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g., ":5000")
//	DATABASE_DSN  PostgreSQL DSN
//	JWT_SECRET    session token signing secret
//	TOKEN_TTL     token validity as a Go duration (e.g., "24h")
//	APP_ENV       "development" or "production"
//	CORS_ORIGINS  comma-separated list of allowed origins
func parseEnv(config *Config) {
	// godotenv does not override variables that are already set.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.AppEnv = v
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		config.CORSAllowedOrigins = origins
	}
}
