package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/api"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"github.com/ssargent/bytewords/pkg/logging"
	"github.com/ssargent/bytewords/pkg/vault"
	"go.uber.org/zap"
)

// vaultCmd represents the vault command
var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Store and retrieve payloads in the local vault",
	Long: `Manage payloads kept in the local vault. Every payload gets a
sortable ID and can be read back as bytewords in any style.`,
}

var vaultPutCmd = &cobra.Command{
	Use:   "put [data]",
	Short: "Store a payload",
	Long: `Store a payload and print its ID and bytewords.

Examples:
  bytewords vault put 48656c6c6f
  echo -n secret | bytewords vault put --input-format raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("input-format")
		style, err := resolveStyle(cmd)
		if err != nil {
			return err
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		payload, err := parseBinary(input, format)
		if err != nil {
			return err
		}
		if len(payload) == 0 {
			return fmt.Errorf("%w: %w", vault.ErrEmptyPayload, errEmptyPayload)
		}

		return withVault(cmd, func(v api.VaultCloser) error {
			id, err := v.Put(payload)
			if err != nil {
				return err
			}
			logging.Logger().Info("payload stored", zap.String("id", id.String()), zap.Int("bytes", len(payload)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, bytewords.Encode(style, payload))
			return err
		})
	},
}

var vaultGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored payload as bytewords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := resolveStyle(cmd)
		if err != nil {
			return err
		}
		id, err := vault.ParseID(args[0])
		if err != nil {
			return err
		}

		return withVault(cmd, func(v api.VaultCloser) error {
			text, err := v.Encoded(id, style)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		})
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored payload IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(cmd, func(v api.VaultCloser) error {
			ids, err := v.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, id.Time().UTC().Format("2006-01-02T15:04:05Z")); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := vault.ParseID(args[0])
		if err != nil {
			return err
		}

		return withVault(cmd, func(v api.VaultCloser) error {
			if err := v.Delete(id); err != nil {
				return err
			}
			logging.Logger().Info("payload deleted", zap.String("id", id.String()))
			cmd.Printf("Deleted %s\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	vaultCmd.AddCommand(vaultPutCmd, vaultGetCmd, vaultListCmd, vaultDeleteCmd)

	vaultCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the payload vault (default from config)")

	vaultPutCmd.Flags().StringP("input-format", "i", formatHex, "Input format: hex, base64 or raw")
	vaultPutCmd.Flags().StringP("style", "s", "", "Encoding style for the printed payload")
	vaultGetCmd.Flags().StringP("style", "s", "", "Encoding style: standard, uri or minimal (default from config)")
}

// withVault opens the vault for the duration of fn
func withVault(cmd *cobra.Command, fn func(v api.VaultCloser) error) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	v, err := container.GetVaultOpener().OpenVault(dataDir)
	if err != nil {
		return err
	}

	fnErr := fn(v)
	if err := v.Close(); err != nil && fnErr == nil {
		return fmt.Errorf("failed to close vault: %w", err)
	}
	return fnErr
}
