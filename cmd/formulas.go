package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rmcalc/internal/rm"
	"github.com/spf13/cobra"
)

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List the 1RM formulas and their inverses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !cfg.Output.Color {
			color.NoColor = true
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Fprintln(out, boldGreen("Formulas:"))
		fmt.Fprintf(out, "  w = weight lifted, r = reps performed, b = estimated 1RM, e = target reps\n\n")
		for i, f := range rm.Formulas {
			fmt.Fprintf(out, "%s %s (%s)\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(f.Name), f.Key)
			fmt.Fprintf(out, "   %s %s\n", cyan("1RM:"), f.Expression)
			fmt.Fprintf(out, "   %s %s\n", cyan("nRM:"), f.Inverse)
		}
		fmt.Fprintf(out, "\n%s mean of the seven formulas\n", yellow("Average:"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formulasCmd)
}
