package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"braindash/internal/flagx"
	"braindash/internal/timex"
)

// JSONConfig is the DTO for the optional JSON configuration file. Durations
// accept either strings like "168h" or integer nanoseconds.
type JSONConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	GeminiAPIKey          string         `json:"gemini_api_key"`
	Debug                 bool           `json:"debug"`
}

// parseJSON overlays values from the file named by -c/-config, when present.
// Absent fields keep their current values.
func parseJSON(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", jsonConfigFile, err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.GeminiAPIKey != "" {
		config.GeminiAPIKey = c.GeminiAPIKey
	}
	if c.Debug {
		config.Debug = true
	}
	return nil
}
