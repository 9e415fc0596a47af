// Package categorize handles the transaction categorization export command
package categorize

import (
	"fmt"

	"fjacquet/budget-advisor/cmd/root"
	"fjacquet/budget-advisor/internal/container"
	"fjacquet/budget-advisor/internal/validation"

	"github.com/spf13/cobra"
)

// FlagOutput names the output file flag
const FlagOutput = "output"

// Cmd represents the categorize command
var Cmd = NewCommand()

// NewCommand builds the categorize command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <transactions.csv>",
		Short: "Categorize transactions and export them as CSV",
		Long: `Categorize every transaction of the input file by keyword and write them as CSV
with date, description, amount and category columns, to a file or standard output.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root.HandleError(cmd.OutOrStdout(), categorizeFunc(cmd, args))
		},
	}
	cmd.Flags().StringP(FlagOutput, "o", "", "Output CSV file (default: standard output)")
	return cmd
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return err
	}
	if output != "" {
		if err := validation.ValidateOutputFile(output); err != nil {
			return err
		}
	}

	opts, err := root.LoadOptions(cmd)
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

	result, err := c.Process(args[0])
	if err != nil {
		return err
	}

	generator := c.GetReportGenerator()
	delimiter := opts.Config.Delimiter()
	if output == "" {
		return generator.WriteCategorizedCSV(cmd.OutOrStdout(), result.Transactions, delimiter)
	}

	if err := generator.WriteCategorizedCSVFile(output, result.Transactions, delimiter); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d categorized transactions to %s\n", len(result.Transactions), output)
	return nil
}
