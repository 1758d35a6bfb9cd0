package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig    `yaml:"data" envconfig:"DATA"`
	Display  DisplayConfig `yaml:"display" envconfig:"DISPLAY"`
	Outliers OutlierConfig `yaml:"outliers" envconfig:"OUTLIERS"`
	Logging  LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DataConfig maps city keys to their data files
type DataConfig struct {
	// Dir is the directory holding the city data files, relative to
	// the working directory unless absolute.
	Dir string `yaml:"dir" envconfig:"DIR"`
	// Cities maps a lowercase city key to its data file name. The
	// loader resolves the file inside Dir and accepts either a .csv
	// or an .xlsx file.
	Cities map[string]string `yaml:"cities" envconfig:"CITIES"`
}

// DisplayConfig controls the interactive output
type DisplayConfig struct {
	// PageSize is the number of raw rows shown per pager window.
	PageSize int `yaml:"page_size" envconfig:"PAGE_SIZE"`
}

// OutlierConfig holds the trip-duration outlier parameters
type OutlierConfig struct {
	IQRMultiplier float64 `yaml:"iqr_multiplier" envconfig:"IQR_MULTIPLIER"`
	ZScoreLimit   float64 `yaml:"zscore_limit" envconfig:"ZSCORE_LIMIT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load builds the configuration in three layers: built-in defaults,
// then an optional config.yaml, then BIKESHARE_* environment
// variables. Later layers win.
func Load() (*Config, error) {
	cfg := Default()

	if path := configFilePath(); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// CityKeys returns the configured city keys in sorted order.
func (c *Config) CityKeys() []string {
	keys := make([]string, 0, len(c.Data.Cities))
	for k := range c.Data.Cities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validate validates the configuration
func (c *Config) validate() error {
	if len(c.Data.Cities) == 0 {
		return fmt.Errorf("at least one city must be configured")
	}
	for key, file := range c.Data.Cities {
		if file == "" {
			return fmt.Errorf("city %q has no data file configured", key)
		}
	}

	if c.Display.PageSize <= 0 {
		return fmt.Errorf("invalid page size: %d", c.Display.PageSize)
	}

	if c.Outliers.IQRMultiplier <= 0 {
		return fmt.Errorf("IQR multiplier must be positive")
	}
	if c.Outliers.ZScoreLimit <= 0 {
		return fmt.Errorf("z-score limit must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path required for output %q", c.Logging.Output)
	}

	return nil
}

// configFilePath returns the path to the config file
func configFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return "" // no config file, defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: DefaultDataDir,
			Cities: map[string]string{
				"chicago":       "chicago.csv",
				"new york city": "new_york_city.csv",
				"washington":    "washington.csv",
			},
		},
		Display: DisplayConfig{
			PageSize: DefaultPageSize,
		},
		Outliers: OutlierConfig{
			IQRMultiplier: DefaultIQRMultiplier,
			ZScoreLimit:   DefaultZScoreLimit,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: filepath.Join(DefaultLogsDir, AppName+".log"),
		},
	}
}
