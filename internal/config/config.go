package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Default values applied when the config file omits the optional fields.
const (
	DefaultIdentityDomain      = "uchicago.edu"
	DefaultStoreRetries        = 3
	DefaultStoreTimeoutSeconds = 30
)

// Config represents the application configuration.
type Config struct {
	// StoreBackend selects where assignment records live.
	StoreBackend string `yaml:"storeBackend" validate:"required,oneof=sheets postgres"`

	// DatabaseSheetID is the spreadsheet holding the ledger (sheets backend).
	DatabaseSheetID string `yaml:"databaseSheetID,omitempty" validate:"required_if=StoreBackend sheets"`

	// PostgresURL is the connection string for the postgres backend.
	PostgresURL string `yaml:"postgresURL,omitempty" validate:"required_if=StoreBackend postgres"`

	// AdminSecret is the shared secret the manager presents for approve,
	// adminList, and resetPeriod. One secret for all coordinators; there
	// are no per-manager accounts.
	AdminSecret string `yaml:"adminSecret" validate:"required"`

	// IdentityDomain is the email domain attendants must submit with.
	IdentityDomain string `yaml:"identityDomain,omitempty"`

	// StoreRetries bounds how many times a failing store call is attempted.
	StoreRetries int `yaml:"storeRetries,omitempty" validate:"omitempty,min=1,max=10"`

	// StoreTimeoutSeconds caps how long one operation may wait on the store.
	StoreTimeoutSeconds int `yaml:"storeTimeoutSeconds,omitempty" validate:"omitempty,min=1"`

	// PeriodRule is an optional RFC-5545 RRULE describing when new
	// scheduling periods begin, used to report the next period start
	// after a reset (e.g. "FREQ=WEEKLY;BYDAY=MO").
	PeriodRule string `yaml:"periodRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for the given
// environment, looking for "pub_scheduler_config.<env>.yaml" (falling back
// to "pub_scheduler_config.yaml") in the current directory, then home.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the period rule
// syntax when one is set.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.PeriodRule != "" {
		if _, err := rrule.StrToRRule(cfg.PeriodRule); err != nil {
			return fmt.Errorf("invalid rrule in periodRule: %w", err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.IdentityDomain == "" {
		cfg.IdentityDomain = DefaultIdentityDomain
	}
	if cfg.StoreRetries == 0 {
		cfg.StoreRetries = DefaultStoreRetries
	}
	if cfg.StoreTimeoutSeconds == 0 {
		cfg.StoreTimeoutSeconds = DefaultStoreTimeoutSeconds
	}
}

// findConfigFile searches the current directory then the home directory,
// preferring the env-specific file name.
func findConfigFile(env string) (string, error) {
	candidates := []string{"pub_scheduler_config.yaml"}
	if env != "" {
		candidates = []string{"pub_scheduler_config." + env + ".yaml", "pub_scheduler_config.yaml"}
	}

	homeDir, homeErr := os.UserHomeDir()

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		if homeErr == nil {
			homePath := filepath.Join(homeDir, name)
			if _, err := os.Stat(homePath); err == nil {
				return homePath, nil
			}
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
