package root

import (
	"fmt"

	"fjacquet/budget-advisor/internal/config"
	"fjacquet/budget-advisor/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options is the effective configuration of one command run:
// the loaded configuration with command-line overrides applied.
type Options struct {
	Config        *config.Config
	Format        report.Format
	TargetSavings float64
}

// LoadOptions loads .env and the configuration, then applies the flags that were
// set on the command line.
func LoadOptions(cmd *cobra.Command) (*Options, error) {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if value, ok := changedString(flags, FlagRules); ok {
		cfg.Rules.File = value
	}
	if value, ok := changedString(flags, FlagDelimiter); ok {
		if len([]rune(value)) != 1 {
			return nil, fmt.Errorf("CSV delimiter must be a single character, got: %s", value)
		}
		cfg.CSV.Delimiter = value
	}
	if value, ok := changedString(flags, FlagLogLevel); ok {
		if _, err := logrus.ParseLevel(value); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", value)
		}
		cfg.Log.Level = value
	}

	format, err := report.ParseFormat(stringFlag(flags, FlagFormat))
	if err != nil {
		return nil, err
	}

	opts := &Options{
		Config:        cfg,
		Format:        format,
		TargetSavings: cfg.Advisor.TargetSavings,
	}
	if flag := flags.Lookup(FlagTargetSavings); flag != nil && flag.Changed {
		target, err := flags.GetFloat64(FlagTargetSavings)
		if err != nil {
			return nil, err
		}
		if target < 0 {
			return nil, fmt.Errorf("target savings cannot be negative, got: %.2f", target)
		}
		opts.TargetSavings = target
	}

	return opts, nil
}

func stringFlag(flags *pflag.FlagSet, name string) string {
	value, err := flags.GetString(name)
	if err != nil {
		return ""
	}
	return value
}

func changedString(flags *pflag.FlagSet, name string) (string, bool) {
	flag := flags.Lookup(name)
	if flag == nil || !flag.Changed {
		return "", false
	}
	return flag.Value.String(), true
}
