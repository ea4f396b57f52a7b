package config

import (
	"fmt"
	"os"

	"github.com/osse101/PoE2Craft_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared. An unset
// version is allowed so the service runs on defaults alone.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Warnings lists settings that work but are probably not intended
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if !c.AuthEnabled() && c.Environment == logger.EnvironmentProduction {
		warnings = append(warnings, "API_KEY is empty in prod - the API is unauthenticated")
	}
	if !c.HistoryEnabled() {
		warnings = append(warnings, "DATABASE_URL is empty - craft history is disabled")
	}
	return warnings
}
