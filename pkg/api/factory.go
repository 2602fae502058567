// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssargent/bytewords/pkg/vault"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store PayloadStore, config ServerConfig) error {
	return StartServer(ctx, store, config)
}

// DefaultVaultOpener opens pebble vaults under <dataDir>/vault
type DefaultVaultOpener struct{}

// NewVaultOpener creates a new vault opener
func NewVaultOpener() VaultOpener {
	return &DefaultVaultOpener{}
}

// VaultDir returns the vault directory inside dataDir
func VaultDir(dataDir string) string {
	return filepath.Join(dataDir, "vault")
}

// OpenVault opens or creates the vault in dataDir
func (o *DefaultVaultOpener) OpenVault(dataDir string) (VaultCloser, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	v, err := vault.Open(VaultDir(dataDir))
	if err != nil {
		return nil, err
	}
	return v, nil
}
