package config

import (
	"fmt"
	"strings"

	"fjacquet/budget-advisor/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. BUDGET_LOG_LEVEL.
const EnvPrefix = "BUDGET"

// LogConfig controls the logging backend
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls how transaction files are read and written
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// RulesConfig points at an optional categorization rules file
type RulesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// AdvisorConfig tunes the budget recommendations
type AdvisorConfig struct {
	OverspendThreshold float64 `mapstructure:"overspend_threshold" yaml:"overspend_threshold"`
	ReductionRate      float64 `mapstructure:"reduction_rate" yaml:"reduction_rate"`
	TopCategories      int     `mapstructure:"top_categories" yaml:"top_categories"`
	TargetSavings      float64 `mapstructure:"target_savings" yaml:"target_savings"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Rules   RulesConfig   `mapstructure:"rules" yaml:"rules"`
	Advisor AdvisorConfig `mapstructure:"advisor" yaml:"advisor"`
}

// DefaultConfig returns the configuration used when no file or environment override exists.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		CSV: CSVConfig{Delimiter: ","},
		Advisor: AdvisorConfig{
			OverspendThreshold: -500,
			ReductionRate:      0.2,
			TopCategories:      3,
			TargetSavings:      2000,
		},
	}
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then BUDGET_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-advisor")
	v.AddConfigPath(".budget-advisor")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// LOG_LEVEL is honoured without prefix, as it is for the global logger in main
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL environment variable: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("csv.delimiter", defaults.CSV.Delimiter)

	v.SetDefault("rules.file", defaults.Rules.File)

	v.SetDefault("advisor.overspend_threshold", defaults.Advisor.OverspendThreshold)
	v.SetDefault("advisor.reduction_rate", defaults.Advisor.ReductionRate)
	v.SetDefault("advisor.top_categories", defaults.Advisor.TopCategories)
	v.SetDefault("advisor.target_savings", defaults.Advisor.TargetSavings)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Advisor.ReductionRate <= 0 || config.Advisor.ReductionRate > 1 {
		return fmt.Errorf("advisor.reduction_rate must be in (0, 1], got: %f", config.Advisor.ReductionRate)
	}

	if config.Advisor.TopCategories < 1 {
		return fmt.Errorf("advisor.top_categories must be at least 1, got: %d", config.Advisor.TopCategories)
	}

	if config.Advisor.TargetSavings < 0 {
		return fmt.Errorf("advisor.target_savings cannot be negative, got: %f", config.Advisor.TargetSavings)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune
func (c *Config) Delimiter() rune {
	runes := []rune(c.CSV.Delimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	return logging.NewLogrusLogger(config.Log.Level, config.Log.Format, nil)
}
