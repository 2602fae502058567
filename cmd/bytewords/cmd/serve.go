/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/api"
	"github.com/ssargent/bytewords/pkg/config"
	"github.com/ssargent/bytewords/pkg/logging"
	"go.uber.org/zap"
)

var errNoAPIKey = errors.New("API key not configured: run 'bytewords up' or pass --api-key")

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the Bytewords REST API server. Encoding, decoding and the
payload vault sit behind API key authentication; health, metrics and
the swagger document are public.

Examples:
  bytewords serve --api-key=mysecretkey --port=8080
  bytewords serve --config /etc/bytewords/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyServerFlags(cmd, cfg)
		return runServer(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServerFlags(serveCmd)
	serveCmd.Flags().String("api-key", "", "API key for client authentication (default from config)")
}

func addServerFlags(c *cobra.Command) {
	c.Flags().StringP("data-dir", "d", "", "Data directory for the payload vault (default from config)")
	c.Flags().IntP("port", "p", 8080, "Port to listen on")
	c.Flags().String("bind", "127.0.0.1", "Address to bind server to")
}

// applyServerFlags copies explicitly set flags over the loaded config
func applyServerFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.Flags().Changed("data-dir") {
		c.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("port") {
		c.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		c.Bind, _ = cmd.Flags().GetString("bind")
	}
	if f := cmd.Flags().Lookup("api-key"); f != nil && f.Changed {
		c.Security.APIKey = f.Value.String()
	}
}

// runServer opens the vault and blocks serving the API until interrupted
func runServer(cmd *cobra.Command, c *config.Config) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}
	if c.Security.APIKey == "" || c.Security.APIKey == "auto" {
		return errNoAPIKey
	}

	style, err := c.Style()
	if err != nil {
		return err
	}
	codec, err := c.NewCodec()
	if err != nil {
		return err
	}

	v, err := container.GetVaultOpener().OpenVault(c.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := v.Close(); cerr != nil {
			logging.Logger().Warn("failed to close vault", zap.Error(cerr))
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverConfig := api.ServerConfig{
		Port:         c.Port,
		Bind:         c.Bind,
		APIKey:       c.Security.APIKey,
		DefaultStyle: style,
		Codec:        codec,
		Logger:       logging.Logger(),
	}

	cmd.Printf("🚀 Starting Bytewords server on %s\n", serverConfig.Addr())
	cmd.Printf("📁 Data directory: %s\n", c.DataDir)

	starter := container.GetServerFactory().CreateServerStarter()
	if err := starter.StartServer(ctx, v, serverConfig); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
