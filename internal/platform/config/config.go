package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config captures process level configuration for the generator service and CLI.
type Config struct {
	Addr        string
	Environment string

	// Avatar backend. An empty BaseURL disables the AI backend and the
	// chain starts at the procedural renderer. An empty ModelID leaves
	// the client's built-in default in place.
	AvatarBaseURL string
	AvatarAPIKey  string
	AvatarModelID string
	AvatarTimeout time.Duration

	// Card rendering: fonts and the blank template live under AssetsDir,
	// rendered cards go to OutputDir.
	AssetsDir string
	OutputDir string

	// Generation defaults. Seed 0 means derive from wall clock.
	Seed         int64
	BatchWorkers int

	RequestTimeout time.Duration
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment when one exists. Variables already set stay untouched; a
// malformed file is logged and skipped rather than taking the process down.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:           getEnv("SHENFEN_ADDR", ":8080"),
		Environment:    getEnv("SHENFEN_ENV", "development"),
		AvatarBaseURL:  os.Getenv("SHENFEN_AVATAR_BASE_URL"),
		AvatarAPIKey:   os.Getenv("SHENFEN_AVATAR_API_KEY"),
		AvatarModelID:  os.Getenv("SHENFEN_AVATAR_MODEL_ID"),
		AvatarTimeout:  getDuration("SHENFEN_AVATAR_TIMEOUT", 60*time.Second),
		AssetsDir:      getEnv("SHENFEN_ASSETS_DIR", "assets"),
		OutputDir:      getEnv("SHENFEN_OUTPUT_DIR", "output"),
		Seed:           getInt64("SHENFEN_SEED", 0),
		BatchWorkers:   getInt("SHENFEN_BATCH_WORKERS", 4),
		RequestTimeout: getDuration("SHENFEN_REQUEST_TIMEOUT", 120*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
