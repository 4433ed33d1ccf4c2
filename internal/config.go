package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration, sourced from environment
// variables (optionally loaded from a .env file).
type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// CatalogBaseURL is the external product source.
	CatalogBaseURL string

	// SessionPath is the directory holding the durable session slot.
	SessionPath string

	// TemplatesDir is the root of the html/template view files.
	TemplatesDir string

	// LoginDelay is the simulated network latency for the mock sign-in.
	LoginDelay time.Duration

	// RedirectDelay is how long the order confirmation stays up before
	// the shopper is sent back to the catalog.
	RedirectDelay time.Duration

	// TaxRate is the fixed percentage applied at checkout (0.10 = 10%).
	TaxRate float64

	MetricsNamespace string
}

// NewConfig loads configuration from the environment. A .env file in
// the working directory (or up to two parents) is loaded first if
// present.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		dir, _ := os.Getwd()
		found := false
		for range 2 {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("no .env file found, using environment variables and defaults")
		}
	}

	v := viper.New()
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 3000)
	v.SetDefault("CATALOG_BASE_URL", "https://fakestoreapi.com")
	v.SetDefault("SESSION_PATH", "./data")
	v.SetDefault("TEMPLATES_DIR", "./web/templates")
	v.SetDefault("LOGIN_DELAY", "800ms")
	v.SetDefault("REDIRECT_DELAY", "5s")
	v.SetDefault("TAX_RATE", 0.10)
	v.SetDefault("METRICS_NAMESPACE", "neotech")
	v.AutomaticEnv()

	cfg := &Config{
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		Port:             v.GetUint16("PORT"),
		CatalogBaseURL:   v.GetString("CATALOG_BASE_URL"),
		SessionPath:      v.GetString("SESSION_PATH"),
		TemplatesDir:     v.GetString("TEMPLATES_DIR"),
		LoginDelay:       v.GetDuration("LOGIN_DELAY"),
		RedirectDelay:    v.GetDuration("REDIRECT_DELAY"),
		TaxRate:          v.GetFloat64("TAX_RATE"),
		MetricsNamespace: v.GetString("METRICS_NAMESPACE"),
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		slog.Default().Warn("invalid environment, using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		slog.Default().Warn("invalid log level, using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.TaxRate < 0 {
		slog.Default().Warn("negative tax rate, using default: 0.10", slog.Float64("value", cfg.TaxRate))
		cfg.TaxRate = 0.10
	}

	return cfg, nil
}
