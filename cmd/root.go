package cmd

import (
	"fmt"

	"github.com/misterclayt0n/rmcalc/internal/config"
	"github.com/misterclayt0n/rmcalc/internal/rm"
	"github.com/spf13/cobra"
)

var (
	configPath       string
	rejectZeroWeight bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "rmcalc",
	Short:         "One-rep max calculator: estimate 1RM through 10RM from a single set",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("reject-zero-weight") {
			loaded.Calculator.RejectZeroWeight = rejectZeroWeight
		}
		cfg = loaded
		return nil
	},
}

// newEngine builds the estimation engine from the loaded configuration.
func newEngine() *rm.Engine {
	return rm.New(cfg.EngineOptions())
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ~/.config/rmcalc/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&rejectZeroWeight, "reject-zero-weight", false, "Treat a weight of 0 as no result")
}
