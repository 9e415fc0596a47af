package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/budget-advisor/cmd/categorize"
	"fjacquet/budget-advisor/cmd/root"
	"fjacquet/budget-advisor/cmd/rules"
	"fjacquet/budget-advisor/cmd/summary"
	"fjacquet/budget-advisor/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, so LOG_LEVEL from .env applies to the global logger
	config.LoadEnv()
	configureLogLevel()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL
func configureLogLevel() {
	level, err := logrus.ParseLevel(strings.ToLower(config.GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	// Failures are reported on stdout; the exit status stays 0.
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
	}
}
