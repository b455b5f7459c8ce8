package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. Unset
// variables keep their current values; an unparsable TOKEN_VALIDITY or DEBUG
// is ignored rather than fatal, matching the overlay semantics of the other
// layers.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		config.GeminiAPIKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("DEBUG"); ok {
		config.Debug = v == "1" || v == "true"
	}
}
