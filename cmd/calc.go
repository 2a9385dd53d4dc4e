package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/rmcalc/internal/render"
	"github.com/spf13/cobra"
)

var (
	calcWeight  string
	calcReps    int
	calcFormat  string
	calcNoColor bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Estimate 1RM through 10RM from a weight and a rep count",
	Example: `  rmcalc calc -w 100 -r 5
  rmcalc calc -w 62.5 -r 8 -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reps := calcReps
		if !cmd.Flags().Changed("reps") {
			reps = cfg.Calculator.DefaultReps
		}
		format := cfg.Output.Format
		if cmd.Flags().Changed("format") {
			format = calcFormat
		}
		if !render.ValidFormat(format) {
			return fmt.Errorf("Invalid format %q. Must be one of %s", format, strings.Join(render.Formats, ", "))
		}

		in := render.ParseInput(calcWeight, strconv.Itoa(reps))
		model := render.Build(newEngine().WithInput(in))

		out := cmd.OutOrStdout()
		if strings.EqualFold(format, render.FormatTable) {
			colorize := cfg.Output.Color && !calcNoColor && !color.NoColor
			return render.WriteTable(out, model, colorize)
		}
		return render.Encode(out, format, model)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcWeight, "weight", "w", "", "Weight lifted, in kg")
	calcCmd.Flags().IntVarP(&calcReps, "reps", "r", 1, "Repetitions performed (1-10)")
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", render.FormatTable, "Output format: table, json, toml or yaml")
	calcCmd.Flags().BoolVar(&calcNoColor, "no-color", false, "Disable colored output")
	calcCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(calcCmd)
}
