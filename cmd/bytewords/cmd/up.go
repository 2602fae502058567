/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/config"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap configuration and start the server",
	Long: `Start Bytewords with zero configuration. On first run a config file
with a freshly generated API key is written, then the server starts.

Examples:
  bytewords up
  bytewords up --data-dir ./data --port 9000 --print-key`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		printKey, _ := cmd.Flags().GetBool("print-key")

		if !config.ConfigExists(configPath) {
			bootstrapped, err := config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return fmt.Errorf("error bootstrapping config: %w", err)
			}
			cfg = bootstrapped
			cmd.Printf("✅ Configuration created at %s\n", configPath)

			if printKey {
				cmd.Printf("\n🔑 API Key: %s\n", cfg.Security.APIKey)
				cmd.Printf("⚠️  Store this key securely! It is also saved in %s\n", configPath)
			}
		}

		applyServerFlags(cmd, cfg)
		return runServer(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
	addServerFlags(upCmd)
	upCmd.Flags().Bool("print-key", false, "Print the generated API key to console")
}
