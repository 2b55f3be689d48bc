package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "POKETEST"

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds remote catalog configuration
type CatalogConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	SpriteBase        string        `mapstructure:"sprite_base"`
	ArtworkBase       string        `mapstructure:"artwork_base"`
	PageSize          int           `mapstructure:"page_size"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"` // 0 = unlimited
}

// UIConfig holds terminal UI configuration
type UIConfig struct {
	PrefetchThreshold int    `mapstructure:"prefetch_threshold"` // Rows left below the cursor that still trigger the next page
	ShowClock         bool   `mapstructure:"show_clock"`
	ImageViewer       string `mapstructure:"image_viewer"` // Empty for the system default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:     "https://pokeapi.co/api/v2",
			SpriteBase:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon",
			ArtworkBase: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork",
			PageSize:    100,
			Timeout:     15 * time.Second,
		},
		UI: UIConfig{
			PrefetchThreshold: 5,
			ShowClock:         true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "poketest", "poketest.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "poketest", "poketest.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "poketest")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "poketest")
	}
}

// newViper returns a viper instance seeded with the defaults
func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("catalog.base_url", d.Catalog.BaseURL)
	v.SetDefault("catalog.sprite_base", d.Catalog.SpriteBase)
	v.SetDefault("catalog.artwork_base", d.Catalog.ArtworkBase)
	v.SetDefault("catalog.page_size", d.Catalog.PageSize)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.requests_per_second", d.Catalog.RequestsPerSecond)
	v.SetDefault("ui.prefetch_threshold", d.UI.PrefetchThreshold)
	v.SetDefault("ui.show_clock", d.UI.ShowClock)
	v.SetDefault("ui.image_viewer", d.UI.ImageViewer)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. POKETEST_CATALOG_PAGE_SIZE
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the client cannot work without
func (c *Config) Validate() error {
	u, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("catalog.base_url %q is not an absolute URL", c.Catalog.BaseURL)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog.page_size must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive, got %s", c.Catalog.Timeout)
	}
	if c.Catalog.RequestsPerSecond < 0 {
		return fmt.Errorf("catalog.requests_per_second must not be negative, got %d", c.Catalog.RequestsPerSecond)
	}
	if c.UI.PrefetchThreshold < 0 {
		return fmt.Errorf("ui.prefetch_threshold must not be negative, got %d", c.UI.PrefetchThreshold)
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, creating the directory if needed
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.sprite_base", cfg.Catalog.SpriteBase)
	v.Set("catalog.artwork_base", cfg.Catalog.ArtworkBase)
	v.Set("catalog.page_size", cfg.Catalog.PageSize)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.requests_per_second", cfg.Catalog.RequestsPerSecond)
	v.Set("ui.prefetch_threshold", cfg.UI.PrefetchThreshold)
	v.Set("ui.show_clock", cfg.UI.ShowClock)
	v.Set("ui.image_viewer", cfg.UI.ImageViewer)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
