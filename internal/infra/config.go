package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StrategyCost       = "cost"
	StrategyPreference = "preference"
)

type Config struct {
	Port    string
	AppEnv  string
	MapsKey string

	CompletionProvider string
	CompletionAPIKey   string
	CompletionModel    string
	CompletionBaseURL  string
	CompletionJSONMode bool
	CompletionTimeout  time.Duration

	BudgetStrategy string
	CORSOrigins    []string
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return ConfigFromEnv()
}

func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnvWithDefault("PORT", "8000"),
		AppEnv:             getEnvWithDefault("APP_ENV", "dev"),
		MapsKey:            os.Getenv("GOOGLE_MAPS_API_KEY"),
		CompletionProvider: strings.ToLower(getEnvWithDefault("COMPLETION_PROVIDER", "openai")),
		BudgetStrategy:     strings.ToLower(getEnvWithDefault("BUDGET_REMOVAL_STRATEGY", StrategyCost)),
	}

	switch cfg.CompletionProvider {
	case "openai":
		cfg.CompletionAPIKey = os.Getenv("OPENAI_API_KEY")
		cfg.CompletionModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
		cfg.CompletionBaseURL = os.Getenv("OPENAI_BASE_URL")
		if cfg.CompletionAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		cfg.CompletionAPIKey = os.Getenv("GEMINI_API_KEY")
		cfg.CompletionModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if cfg.CompletionAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", cfg.CompletionProvider)
	}

	jsonMode, err := strconv.ParseBool(getEnvWithDefault("COMPLETION_JSON_MODE", "true"))
	if err != nil {
		return nil, fmt.Errorf("COMPLETION_JSON_MODE: %w", err)
	}
	cfg.CompletionJSONMode = jsonMode

	timeout, err := time.ParseDuration(getEnvWithDefault("COMPLETION_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.CompletionTimeout = timeout

	switch cfg.BudgetStrategy {
	case StrategyCost, StrategyPreference:
	default:
		return nil, fmt.Errorf("BUDGET_REMOVAL_STRATEGY must be %q or %q, got %q", StrategyCost, StrategyPreference, cfg.BudgetStrategy)
	}

	for _, origin := range strings.Split(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
