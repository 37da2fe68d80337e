package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/haulplan/config"
	"github.com/kilianp07/haulplan/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "haulplan",
	Short:         "Truck delivery schedule planner",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration file and applies its logging section.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	opts := cfg.Logging.Options()
	opts.Out = rootCmd.ErrOrStderr()
	if err := logger.Configure(opts); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return cfg, nil
}
