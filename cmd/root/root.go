// Package root contains the root command for the application
package root

import (
	"fjacquet/budget-advisor/internal/container"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ExampleHeader is shown with the usage line
const ExampleHeader = "date,description,amount"

// Flag names shared by all commands
const (
	FlagRules         = "rules"
	FlagFormat        = "format"
	FlagDelimiter     = "delimiter"
	FlagLogLevel      = "log-level"
	FlagTargetSavings = "target-savings"
)

// Cmd is the root command
var Cmd = NewCommand()

// NewCommand builds a root command with its flags and no subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget-advisor [transactions.csv]",
		Short: "Categorize a transactions CSV and suggest a monthly budget.",
		Long: `budget-advisor reads a CSV file with date, description and amount columns,
assigns each transaction a category by keyword, totals them by month and
prints budget recommendations for the most recent month.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			HandleError(cmd.OutOrStdout(), adviseFunc(cmd, args))
		},
	}

	cmd.PersistentFlags().StringP(FlagRules, "r", "", "YAML file with categorization rules (default: built-in rules)")
	cmd.PersistentFlags().StringP(FlagFormat, "f", "text", "Output format: text, json or yaml")
	cmd.PersistentFlags().StringP(FlagDelimiter, "d", "", "CSV field delimiter (default from configuration, ',')")
	cmd.PersistentFlags().String(FlagLogLevel, "", "Log level: debug, info, warn or error")
	cmd.Flags().Float64P(FlagTargetSavings, "t", 2000, "Monthly savings target; 0 disables the savings suggestion")

	return cmd
}

func adviseFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &UsageError{}
	}

	opts, err := LoadOptions(cmd)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(opts.Config)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	r, err := c.Advise(args[0], decimal.NewFromFloat(opts.TargetSavings))
	if err != nil {
		return err
	}

	return c.GetReportGenerator().WriteReport(cmd.OutOrStdout(), r, opts.Format)
}
