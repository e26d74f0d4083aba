// Command intentcheck exercises the FAQ rule table from the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var rulesPath string

	loadDispatcher := func() (*intent.Dispatcher, error) {
		if rulesPath == "" {
			return intent.Default(), nil
		}
		return intent.LoadFile(rulesPath)
	}

	root := &cobra.Command{
		Use:           "intentcheck",
		Short:         "Inspect and test RohitAI intent rules",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.PersistentFlags().StringVar(&rulesPath, "rules", "", "YAML rule file to use instead of the built-in table")

	askCmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Resolve a message and print the matched intent and reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDispatcher()
			if err != nil {
				return err
			}
			result := d.Match(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "intent: %s\n\n%s\n", result.Rule, result.Response)
			return nil
		},
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "List rules in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDispatcher()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tINTENT\tTRIGGERS")
			for i, rule := range d.Rules() {
				quoted := make([]string, len(rule.Triggers))
				for j, trigger := range rule.Triggers {
					quoted[j] = fmt.Sprintf("%q", trigger)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, rule.Name, strings.Join(quoted, ", "))
			}
			return tw.Flush()
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a YAML rule file loads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := intent.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules OK\n", args[0], len(d.Rules()))
			return nil
		},
	}

	root.AddCommand(askCmd, rulesCmd, validateCmd)
	return root
}
