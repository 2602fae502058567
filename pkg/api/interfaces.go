// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/bytewords/pkg/bytewords"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer runs the API server until ctx is cancelled
	StartServer(ctx context.Context, store PayloadStore, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

// VaultCloser is a payload store that must be closed after use
type VaultCloser interface {
	PayloadStore
	// Encoded returns the payload stored under id rendered in style
	Encoded(id ksuid.KSUID, style bytewords.Style) (string, error)
	Close() error
}

// VaultOpener opens the payload vault under a data directory
type VaultOpener interface {
	// OpenVault opens or creates the vault in dataDir
	OpenVault(dataDir string) (VaultCloser, error)
}
