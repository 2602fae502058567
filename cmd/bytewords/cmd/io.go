package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"golang.org/x/term"
)

// Binary formats accepted on input and produced on output
const (
	formatHex    = "hex"
	formatBase64 = "base64"
	formatRaw    = "raw"
)

var (
	errNoInput      = errors.New("no input: pass it as an argument or pipe it on stdin")
	errEmptyPayload = errors.New("empty payload: bytewords need at least one data byte to decode")
)

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput returns the single positional argument, or all of stdin when
// stdin is piped.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func parseBinary(input []byte, format string) ([]byte, error) {
	switch format {
	case formatHex:
		s := strings.TrimSpace(string(input))
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		data, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	case formatBase64:
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(input)))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return data, nil
	case formatRaw:
		return input, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func writeBinary(w io.Writer, data []byte, format string) error {
	var err error
	switch format {
	case formatHex:
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	case formatBase64:
		_, err = fmt.Fprintln(w, base64.StdEncoding.EncodeToString(data))
	case formatRaw:
		_, err = w.Write(data)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return err
}

// resolveStyle reads --style, falling back to the configured default
func resolveStyle(cmd *cobra.Command) (bytewords.Style, error) {
	name, _ := cmd.Flags().GetString("style")
	if name == "" {
		return cfg.Style()
	}
	return bytewords.ParseStyle(name)
}
