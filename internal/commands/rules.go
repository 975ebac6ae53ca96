package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bankcat-dev/bankcat/internal/categorize"
)

func newRulesCommand() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the categorization rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := categorize.DefaultRules()
			if rulesPath != "" {
				user, err := categorize.LoadRules(rulesPath)
				if err != nil {
					return fmt.Errorf("loading rules: %w", err)
				}
				rules = append(user, rules...)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tCATEGORY\tSIGN\tKEYWORDS")
			for i, rule := range rules {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i+1, rule.Name, rule.Category, signLabel(rule.Sign), strings.Join(rule.Keywords, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "extra categorization rules, tried before the built-ins")

	return cmd
}

func signLabel(s categorize.Sign) string {
	switch s {
	case categorize.SignIncoming:
		return "incoming"
	case categorize.SignOutgoing:
		return "outgoing"
	default:
		return "any"
	}
}
