package cmd

import (
	"strings"
	"testing"

	"github.com/ssargent/bytewords/pkg/di"
	"github.com/ssargent/bytewords/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultCommands(t *testing.T) {
	withContainer(t, di.NewContainer())
	dataDir := t.TempDir()

	out, err := executeCommand(t, "", "vault", "put", "--data-dir", dataDir, "--style", "standard", "48656c6c6f")
	require.NoError(t, err)

	fields := strings.SplitN(strings.TrimSpace(out), "\t", 2)
	require.Len(t, fields, 2)
	id := fields[0]
	assert.Equal(t, helloStandard, fields[1])

	t.Run("get", func(t *testing.T) {
		out, err := executeCommand(t, "", "vault", "get", "--data-dir", dataDir, "--style", "minimal", id)
		require.NoError(t, err)
		assert.Equal(t, "fdihjzjzjlylttldlf\n", out)
	})

	t.Run("put raw from stdin", func(t *testing.T) {
		out, err := executeCommand(t, "Hello", "vault", "put", "--data-dir", dataDir, "-s", "uri", "--input-format", "raw")
		require.NoError(t, err)
		assert.Contains(t, out, "fund-inch-jazz-jazz-jowl-yell-tent-loud-leaf")
	})

	t.Run("list", func(t *testing.T) {
		out, err := executeCommand(t, "", "vault", "list", "--data-dir", dataDir)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, out, id)
	})

	t.Run("delete", func(t *testing.T) {
		out, err := executeCommand(t, "", "vault", "delete", "--data-dir", dataDir, id)
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted "+id)

		_, err = executeCommand(t, "", "vault", "get", "--data-dir", dataDir, id)
		assert.ErrorIs(t, err, vault.ErrNotFound)

		_, err = executeCommand(t, "", "vault", "delete", "--data-dir", dataDir, id)
		assert.ErrorIs(t, err, vault.ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := executeCommand(t, "", "vault", "get", "--data-dir", dataDir, "not-an-id")
		assert.ErrorIs(t, err, vault.ErrInvalidID)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := executeCommand(t, "", "vault", "put", "--data-dir", dataDir, "")
		assert.ErrorIs(t, err, vault.ErrEmptyPayload)
		assert.ErrorIs(t, err, errEmptyPayload)

		_, err = executeCommand(t, "", "vault", "put", "--data-dir", dataDir, "--input-format", "raw")
		assert.ErrorIs(t, err, errEmptyPayload)

		// only the raw payload stored above survives the delete
		out, err := executeCommand(t, "", "vault", "list", "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
	})
}
