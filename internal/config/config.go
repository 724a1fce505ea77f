// Package config centralises all environment / flag configuration for the
// AI service. It should be imported only by `cmd/server` (and test code).
// Business-logic layers receive an already-built Config instance via
// dependency-injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple; prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Data stores
	MongoURI string
	DBName   string

	// Generative completion
	LLMProvider string // "openai" (default) or "vertex"
	LLMBaseURL  string // OpenAI-compatible endpoint, e.g. GitHub Models
	LLMModel    string
	ProjectID   string // Vertex only
	Location    string // Vertex only

	// Forecast model
	ModelPath string

	// Interaction log side channel
	ChatLogURL     string
	ChatLogTimeout time.Duration

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// It terminates the process on missing critical variables so
// mis-configurations fail fast.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist; safe in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       must("MONGODB_URI"),
		DBName:         getEnv("MONGODB_DB", "hotel_mgmt"),
		LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "https://models.inference.ai.azure.com"),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		ModelPath:      getEnv("FORECAST_MODEL_PATH", "booking_model.json"),
		ChatLogURL:     os.Getenv("CHAT_LOG_URL"),
		ChatLogTimeout: getDuration("CHAT_LOG_TIMEOUT_SEC", 3),
		ReadTimeout:    getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:   getDuration("WRITE_TIMEOUT_SEC", 30),
	}

	if cfg.LLMProvider == "vertex" {
		cfg.ProjectID = must("GCP_PROJECT_ID")
		cfg.Location = must("GCP_LOCATION")
	}

	return cfg
}

// must fetches a required env var or terminates the program.
func must(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("env var %s is required", key)
	}
	return val
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
