package config

import (
	"log"
	"os"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	StorageBackend string // "memory" or "firestore"
	UseMockLLM     bool   // true = use mock even on GCP

	// TokenSecret signs bearer tokens. Required outside local mode.
	TokenSecret string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("SOLACE_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("SOLACE_PORT", "8080"),

		GCPProjectID: getEnv("SOLACE_GCP_PROJECT", ""),
		GCPLocation:  getEnv("SOLACE_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("SOLACE_MODEL_NAME", "gemini-2.5-flash"),

		StorageBackend: getEnv("SOLACE_STORAGE_BACKEND", "memory"),
		UseMockLLM:     getBoolEnv("SOLACE_USE_MOCK_LLM", mode == ModeLocal),

		TokenSecret: getEnv("SOLACE_TOKEN_SECRET", ""),
	}

	// Minimal validation outside local mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("SOLACE_GCP_PROJECT must be set in gcp mode")
	}
	if cfg.Mode == ModeGCP && cfg.TokenSecret == "" {
		log.Fatal("SOLACE_TOKEN_SECRET must be set in gcp mode")
	}
	if cfg.TokenSecret == "" {
		// Local dev only. Tokens minted with this secret are worthless.
		cfg.TokenSecret = "solace-dev-secret"
	}

	return cfg
}
