package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	BackendSheets   = "sheets"
	BackendPostgres = "postgres"

	devSessionSecret = "dev-session-secret"
)

// Config holds all configuration for the application.
type Config struct {
	Environment        string   `env:"GO_ENV" envDefault:"development"`
	Port               string   `env:"PORT" envDefault:"8080"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	PersistenceBackend string `env:"PERSISTENCE_BACKEND" envDefault:"sheets"`
	// SheetsAPIURL is the spreadsheet web app. Empty runs the offline demo backend.
	SheetsAPIURL string `env:"SHEETS_API_URL"`
	DBUrl        string `env:"DATABASE_URL"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	TotalBudget float64 `env:"TOTAL_BUDGET" envDefault:"5000000"`
	DaysToGo    int     `env:"DAYS_TO_GO" envDefault:"45"`
	Currency    string  `env:"CURRENCY" envDefault:"PKR"`

	SyncTimeout    time.Duration `env:"SYNC_TIMEOUT" envDefault:"15s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"72h"`

	Email EmailConfig
}

// EmailConfig selects and configures the reminder mailer.
type EmailConfig struct {
	Provider              string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string `env:"EMAIL_FROM_ADDRESS"`
	FromName              string `env:"EMAIL_FROM_NAME"`
	AWSRegion             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY"`
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load loads configuration from environment variables.
// Outside production a .env file is read first; a missing file is not an error.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != EnvProduction {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn(".env file couldn't be loaded", "err", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.PersistenceBackend {
	case BackendSheets:
	case BackendPostgres:
		if c.DBUrl == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown PERSISTENCE_BACKEND %q", c.PersistenceBackend)
	}
	if c.TotalBudget < 0 {
		return errors.New("TOTAL_BUDGET must not be negative")
	}
	if c.DaysToGo < 0 {
		return errors.New("DAYS_TO_GO must not be negative")
	}
	if c.SyncTimeout <= 0 || c.RequestTimeout <= 0 || c.SessionTTL <= 0 {
		return errors.New("SYNC_TIMEOUT, REQUEST_TIMEOUT and SESSION_TTL must be positive")
	}
	if c.IsProduction() && (c.SessionSecret == "" || c.SessionSecret == devSessionSecret) {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}
