package mockup

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/craftlane/mockup/internal/infra"
)

type envConfig struct {
	Provider         string        `env:"MOCKUP_PROVIDER" envDefault:"default-generator"`
	AppEnv           string        `env:"MOCKUP_ENV" envDefault:"production"`
	HTTPTimeout      time.Duration `env:"MOCKUP_HTTP_TIMEOUT" envDefault:"60s"`
	PollInterval     time.Duration `env:"MOCKUP_POLL_INTERVAL" envDefault:"2s"`
	MaxPolls         int           `env:"MOCKUP_MAX_POLLS" envDefault:"60"`
	PollTimeout      time.Duration `env:"MOCKUP_POLL_TIMEOUT" envDefault:"5m"`
	BatchConcurrency int           `env:"MOCKUP_BATCH_CONCURRENCY" envDefault:"4"`
}

// FromEnv constructs an Enhancer from MOCKUP_* environment variables, with
// .env files loaded first when present. The credential is read from the
// variable the selected provider expects (see Provider.CredentialEnvVar);
// it may be absent, in which case the first generation call fails fast.
func FromEnv() (*Enhancer, error) {
	// Missing .env files are fine; the process environment still applies.
	_ = godotenv.Load(".env", ".env.local")

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("mockup: parse environment: %w", err)
	}

	provider := Provider(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderDefaultGenerator
	}
	logger := infra.NewLogger(cfg.AppEnv)
	return New(Options{
		Credential:       strings.TrimSpace(os.Getenv(provider.CredentialEnvVar())),
		Provider:         provider,
		Logger:           &logger,
		Timeout:          cfg.HTTPTimeout,
		PollInterval:     cfg.PollInterval,
		MaxPolls:         cfg.MaxPolls,
		PollTimeout:      cfg.PollTimeout,
		BatchConcurrency: cfg.BatchConcurrency,
	})
}
