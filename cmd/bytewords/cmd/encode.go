package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"github.com/ssargent/bytewords/pkg/logging"
	"go.uber.org/zap"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [data]",
	Short: "Encode bytes as bytewords",
	Long: `Encode binary data as bytewords. The data is read from the argument,
or from stdin when no argument is given.

Examples:
  bytewords encode 48656c6c6f
  bytewords encode --style minimal 0x00
  echo -n Hello | bytewords encode --input-format raw --style uri`,
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
		data, err := parseBinary(input, format)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			return errEmptyPayload
		}

		encoded := bytewords.Encode(style, data)
		logging.Logger().Debug("encoded payload", zap.Int("bytes", len(data)), zap.Stringer("style", style))

		_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return err
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("style", "s", "", "Encoding style: standard, uri or minimal (default from config)")
	encodeCmd.Flags().StringP("input-format", "i", formatHex, "Input format: hex, base64 or raw")
}
