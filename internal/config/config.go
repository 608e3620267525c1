package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration. CLI flags parsed in cmd/ override
// the values loaded here.
type Config struct {
	User        string // profile name selecting the per-user store file
	Language    string // BCP-47 UI language tag
	Speak       bool   // read prompts aloud via TTS
	DataDir     string // directory holding the per-user CSV files
	StoreFile   string // explicit store path, bypassing User/DataDir
	LocalesPath string // optional Key,English,German override file
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is applied first when
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		User:        getEnv("SPELL_USER", ""),
		Language:    getEnv("SPELL_LANGUAGE", "en"),
		Speak:       getEnvBool("SPELL_SPEAK", false),
		DataDir:     getEnv("SPELL_DATA_DIR", "./data"),
		StoreFile:   getEnv("SPELL_FILE", ""),
		LocalesPath: getEnv("SPELL_LOCALES", "./locales.csv"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool reads a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
