package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ssargent/bytewords/pkg/api"
	"github.com/ssargent/bytewords/pkg/bytewords"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	minimalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the bytewords table",
	Long: `Print all 256 words with their byte value and minimal form.

Examples:
  bytewords words
  bytewords words --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		entries := make([]api.WordEntry, 0, len(bytewords.Words()))
		for i := range bytewords.Words() {
			entries = append(entries, api.NewWordEntry(byte(i)))
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		case "text":
			if isTerminal(out) {
				return renderStyled(out, entries)
			}
			return renderPlain(out, entries)
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
}

func renderPlain(w io.Writer, entries []api.WordEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tHEX\tWORD\tMINIMAL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Value, e.Hex, e.Word, e.Minimal)
	}
	return tw.Flush()
}

func renderStyled(w io.Writer, entries []api.WordEntry) error {
	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(7).Render("VALUE"),
		headerStyle.Width(5).Render("HEX"),
		headerStyle.Width(6).Render("WORD"),
		headerStyle.Width(9).Render("MINIMAL"),
	))
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			valueStyle.Width(7).Render(fmt.Sprintf("%d", e.Value)),
			valueStyle.Width(5).Render(e.Hex),
			wordStyle.Width(6).Render(e.Word),
			minimalStyle.Width(9).Render(e.Minimal),
		))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
