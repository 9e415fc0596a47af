// Package summary prints the monthly totals with a per-category breakdown
package summary

import (
	"fjacquet/budget-advisor/cmd/root"
	"fjacquet/budget-advisor/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = NewCommand()

// NewCommand builds the summary command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <transactions.csv>",
		Short: "Show monthly totals broken down by category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root.HandleError(cmd.OutOrStdout(), summaryFunc(cmd, args))
		},
	}
}

func summaryFunc(cmd *cobra.Command, args []string) error {
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

	return c.GetReportGenerator().WriteReport(cmd.OutOrStdout(), c.BuildReport(result, nil, true), opts.Format)
}
