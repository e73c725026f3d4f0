// Package cli implements the investadvisor command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"InvestAdvisor/internal/config"
	"InvestAdvisor/pkg/logger"
)

// app carries state shared by every subcommand.
type app struct {
	cfgPath string
	cfg     *config.Config
	log     zerolog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "investadvisor",
		Short: "InvestAdvisor - rule-based investment recommendations",
		Long: `InvestAdvisor matches an investor profile against inflation-dependent rules,
suggests an investment category, ranks recent top-performing stocks and
splits the invested amount between stocks and funds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractive(cmd.Context(), a)
		},
	}

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newRecommendCmd(a))
	rootCmd.AddCommand(newInteractiveCmd(a))
	rootCmd.AddCommand(newFAQCmd(a))
	rootCmd.AddCommand(newLanguagesCmd(a))
	rootCmd.AddCommand(newSnapshotCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))

	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", defaultPath, "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Human-readable console logs")

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		cfg.Log.Pretty = true
	}

	a.cfg = cfg
	a.log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Out: os.Stderr})
	logger.SetGlobalLogger(a.log)
	return nil
}
