// Package config loads horizon's configuration from layered sources:
// built-in defaults, an optional YAML file, then HORIZON_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before mapping them to
// config keys: HORIZON_API_BASE_URL -> api.base_url.
const EnvPrefix = "HORIZON_"

// Config is the full application configuration.
type Config struct {
	API     APIConfig     `koanf:"api"`
	UI      UIConfig      `koanf:"ui"`
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
}

// APIConfig describes the remote recommendation service.
type APIConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// Client-side limits mirror the server's per-client quotas.
	SearchPerMinute  int `koanf:"search_per_minute" validate:"gte=1"`
	CommentPerMinute int `koanf:"comment_per_minute" validate:"gte=1"`

	BreakerFailures uint32        `koanf:"breaker_failures" validate:"gte=1"`
	BreakerCooldown time.Duration `koanf:"breaker_cooldown" validate:"gt=0"`
}

// UIConfig holds timing and presentation knobs.
type UIConfig struct {
	Debounce       time.Duration `koanf:"debounce" validate:"gt=0"`
	ChartDelay     time.Duration `koanf:"chart_delay" validate:"gte=0"`
	ToastDuration  time.Duration `koanf:"toast_duration" validate:"gt=0"`
	FallbackShelf  int           `koanf:"fallback_shelf" validate:"gte=1,lte=20"`
	HistoryLimit   int           `koanf:"history_limit" validate:"gte=1"`
	DefaultLang    string        `koanf:"default_lang" validate:"omitempty,oneof=tr en"`
	AltScreen      bool          `koanf:"alt_screen"`
	MaxCommentRune int           `koanf:"max_comment_runes" validate:"gte=1"`
}

// StorageConfig locates on-disk state.
type StorageConfig struct {
	DataDir string `koanf:"data_dir" validate:"required"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// DBPath returns the SQLite database location inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.Storage.DataDir, "horizon.db")
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := ".horizon"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".horizon")
	}
	return &Config{
		API: APIConfig{
			BaseURL:          "http://localhost:5000",
			Timeout:          15 * time.Second,
			SearchPerMinute:  60,
			CommentPerMinute: 5,
			BreakerFailures:  5,
			BreakerCooldown:  30 * time.Second,
		},
		UI: UIConfig{
			Debounce:       300 * time.Millisecond,
			ChartDelay:     100 * time.Millisecond,
			ToastDuration:  3 * time.Second,
			FallbackShelf:  4,
			HistoryLimit:   10,
			AltScreen:      true,
			MaxCommentRune: 500,
		},
		Storage: StorageConfig{DataDir: dataDir},
		Log:     LogConfig{Level: "info"},
	}
}

// Load builds the config. configPath may be empty, in which case
// $HORIZON_CONFIG and then ./horizon.yaml are tried.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// envKey maps HORIZON_API_BASE_URL to api.base_url. Only the first
// underscore separates the section; the rest belong to the field name.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if s == "config" {
		return ""
	}
	section, field, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + field
}

func findConfigFile() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	for _, p := range []string{"horizon.yaml", "horizon.yml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
