// Package rules prints the active categorization rules
package rules

import (
	"fjacquet/budget-advisor/cmd/root"
	"fjacquet/budget-advisor/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the rules command
var Cmd = NewCommand()

// NewCommand builds the rules command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active categorization rules in precedence order",
		Long: `List the keyword rules used to categorize transactions. The first matching rule wins.
With --rules the listed rules come from that YAML file, otherwise from rules.yaml when present
or the built-in defaults.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			root.HandleError(cmd.OutOrStdout(), rulesFunc(cmd))
		},
	}
}

func rulesFunc(cmd *cobra.Command) error {
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

	return c.GetReportGenerator().WriteRules(cmd.OutOrStdout(), c.GetCategorizer().Rules(), opts.Format)
}
