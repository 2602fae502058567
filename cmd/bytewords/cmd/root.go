/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/config"
	"github.com/ssargent/bytewords/pkg/di"
	"github.com/ssargent/bytewords/pkg/logging"
	"go.uber.org/zap"
)

var (
	container *di.Container

	// resolved by the root command before any subcommand runs
	cfg        *config.Config
	configPath string
)

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bytewords",
	Short: "Bytewords - human-readable encoding for binary data",
	Long: `Bytewords encodes arbitrary bytes as a sequence of English words,
one word per byte, followed by a CRC-32 checksum. Words can be written
in full, joined with hyphens for URIs, or abbreviated to their first
and last letters.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		level, _ := cmd.Flags().GetString("log-level")

		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		loaded := config.DefaultConfig()
		if config.ConfigExists(path) {
			var err error
			loaded, err = config.LoadConfig(path)
			if err != nil {
				return err
			}
		}
		if level != "" {
			loaded.Logging.Level = level
		}

		l, err := logging.New(loaded.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logging.SetLogger(l)

		cfg = loaded
		configPath = path
		l.Debug("configuration resolved", zap.String("path", path), zap.String("style", cfg.Codec.Style))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Logger().Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/bytewords/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}
