// Command perceptron trains a perceptron on a two-class dataset
// and generates random linearly-separable datasets.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "perceptron",
		Short:        "Perceptron learning for linearly-separable data",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to TOML config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newGenerateCmd())
	return rootCmd
}
