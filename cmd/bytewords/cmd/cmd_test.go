package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ssargent/bytewords/pkg/api"
	"github.com/ssargent/bytewords/pkg/di"
)

// recordingStarter captures the server configuration instead of listening
type recordingStarter struct {
	called  bool
	config  api.ServerConfig
	stored  int
	startFn func(ctx context.Context) error
}

func (s *recordingStarter) StartServer(ctx context.Context, store api.PayloadStore, config api.ServerConfig) error {
	s.called = true
	s.config = config
	n, err := store.Count()
	if err != nil {
		return err
	}
	s.stored = n
	if s.startFn != nil {
		return s.startFn(ctx)
	}
	return nil
}

type recordingFactory struct {
	starter *recordingStarter
}

func (f *recordingFactory) CreateServerStarter() api.ServerStarter {
	return f.starter
}

// resetFlags restores every flag to its default so commands do not leak
// state between executions of the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with the given config file and stdin
func execute(t *testing.T, configFile, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", configFile, "--log-level", "error"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// executeCommand runs the CLI against a config path that does not exist,
// so built-in defaults apply.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return execute(t, filepath.Join(t.TempDir(), "config.yaml"), stdin, args...)
}

func withContainer(t *testing.T, c *di.Container) {
	t.Helper()
	previous := container
	SetContainer(c)
	t.Cleanup(func() { SetContainer(previous) })
}
