package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"github.com/ssargent/bytewords/pkg/logging"
	"go.uber.org/zap"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode bytewords back to bytes",
	Long: `Decode bytewords text and verify its checksum. The text is read from
the argument, or from stdin when no argument is given.

Examples:
  bytewords decode "fund inch jazz jazz jowl yell tent loud leaf"
  bytewords decode --style minimal --output-format raw fdihjzjzjlylttldlf`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output-format")
		permissive, _ := cmd.Flags().GetBool("permissive")

		style, err := resolveStyle(cmd)
		if err != nil {
			return err
		}

		codec, err := cfg.NewCodec()
		if err != nil {
			return err
		}
		if permissive {
			codec = bytewords.NewCodec(bytewords.WithChecksumMode(bytewords.ChecksumPermissive))
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		data, err := codec.Decode(style, strings.TrimSpace(string(input)))
		if err != nil {
			logging.Logger().Debug("decode failed", zap.Stringer("style", style), zap.Error(err))
			if errors.Is(err, bytewords.ErrChecksumMismatch) {
				return fmt.Errorf("%w (use --permissive to skip verification)", err)
			}
			return err
		}

		return writeBinary(cmd.OutOrStdout(), data, format)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("style", "s", "", "Encoding style: standard, uri or minimal (default from config)")
	decodeCmd.Flags().StringP("output-format", "o", formatHex, "Output format: hex, base64 or raw")
	decodeCmd.Flags().Bool("permissive", false, "Do not fail when the checksum does not match")
}
