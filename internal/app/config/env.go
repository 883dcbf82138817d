package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists, so
// paths in the config file may reference them. Missing .env is not an
// error; system-wide environment variables still apply.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}
