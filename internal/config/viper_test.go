package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "", config.Rules.File)
	assert.Equal(t, -500.0, config.Advisor.OverspendThreshold)
	assert.Equal(t, 0.2, config.Advisor.ReductionRate)
	assert.Equal(t, 3, config.Advisor.TopCategories)
	assert.Equal(t, 2000.0, config.Advisor.TargetSavings)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	t.Setenv("BUDGET_LOG_LEVEL", "debug")
	t.Setenv("BUDGET_LOG_FORMAT", "json")
	t.Setenv("BUDGET_CSV_DELIMITER", ";")
	t.Setenv("BUDGET_RULES_FILE", "rules.yaml")
	t.Setenv("BUDGET_ADVISOR_TARGET_SAVINGS", "1500")
	t.Setenv("BUDGET_ADVISOR_TOP_CATEGORIES", "5")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "rules.yaml", config.Rules.File)
	assert.Equal(t, 1500.0, config.Advisor.TargetSavings)
	assert.Equal(t, 5, config.Advisor.TopCategories)
}

func TestInitializeConfig_UnprefixedLogLevel(t *testing.T) {
	clearTestEnvVars(t)
	chdirTemp(t)

	t.Setenv("LOG_LEVEL", "warn")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
rules:
  file: "my-rules.yaml"
advisor:
  overspend_threshold: -1000
  reduction_rate: 0.1
  top_categories: 2
  target_savings: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "my-rules.yaml", config.Rules.File)
	assert.Equal(t, -1000.0, config.Advisor.OverspendThreshold)
	assert.Equal(t, 0.1, config.Advisor.ReductionRate)
	assert.Equal(t, 2, config.Advisor.TopCategories)
	assert.Equal(t, 0.0, config.Advisor.TargetSavings)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
advisor:
  top_categories: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))

	t.Setenv("BUDGET_LOG_LEVEL", "error")
	t.Setenv("BUDGET_ADVISOR_TOP_CATEGORIES", "6")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 6, config.Advisor.TopCategories)
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	clearTestEnvVars(t)
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0644))

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "zero reduction rate",
			modifyConfig: func(c *Config) { c.Advisor.ReductionRate = 0 },
			expectError:  "advisor.reduction_rate",
		},
		{
			name:         "no top categories",
			modifyConfig: func(c *Config) { c.Advisor.TopCategories = 0 },
			expectError:  "advisor.top_categories",
		},
		{
			name:         "negative target savings",
			modifyConfig: func(c *Config) { c.Advisor.TargetSavings = -1 },
			expectError:  "advisor.target_savings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestConfig_Delimiter(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, ',', config.Delimiter())

	config.CSV.Delimiter = ";"
	assert.Equal(t, ';', config.Delimiter())

	config.CSV.Delimiter = ""
	assert.Equal(t, ',', config.Delimiter())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := DefaultConfig()
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(originalDir)
	})
	return dir
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"LOG_LEVEL",
		"BUDGET_LOG_LEVEL",
		"BUDGET_LOG_FORMAT",
		"BUDGET_CSV_DELIMITER",
		"BUDGET_RULES_FILE",
		"BUDGET_ADVISOR_OVERSPEND_THRESHOLD",
		"BUDGET_ADVISOR_REDUCTION_RATE",
		"BUDGET_ADVISOR_TOP_CATEGORIES",
		"BUDGET_ADVISOR_TARGET_SAVINGS",
	}

	for _, envVar := range envVars {
		// Setenv registers the restore; Unsetenv then hides the variable for this test
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
