package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/conduit-lang/odatacore/internal/edm"
)

// Config represents the odatactx configuration
type Config struct {
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// CatalogConfig controls schema registration
type CatalogConfig struct {
	// ConflictPolicy is "reject" or "first_wins"
	ConflictPolicy string `mapstructure:"conflict_policy"`
}

// ProjectionConfig controls select/expand rendering
type ProjectionConfig struct {
	OmitBareExpansions bool `mapstructure:"omit_bare_expansions"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// MetricsConfig controls metric collection
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// EnvPrefix prefixes environment overrides, e.g. ODATACTX_LOGGING_LEVEL.
const EnvPrefix = "ODATACTX"

// Load loads configuration from file, or from odatactx.yaml / odatactx.yml
// in the working directory when file is empty. A missing default file is
// not an error.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("catalog.conflict_policy", edm.ConflictReject.String())
	v.SetDefault("projection.omit_bare_expansions", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("metrics.enabled", false)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("odatactx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConflictPolicy returns the parsed catalog conflict policy.
func (c *Config) ConflictPolicy() edm.ConflictPolicy {
	p, err := edm.ParseConflictPolicy(c.Catalog.ConflictPolicy)
	if err != nil {
		return edm.ConflictReject
	}
	return p
}

func validateConfig(cfg *Config) error {
	if _, err := edm.ParseConflictPolicy(cfg.Catalog.ConflictPolicy); err != nil {
		return fmt.Errorf("catalog.conflict_policy: %w", err)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got: %s", cfg.Logging.Level)
	}
	return nil
}
