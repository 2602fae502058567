// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/bytewords/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	serverFactory api.ServerFactory
	vaultOpener   api.VaultOpener
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory: api.NewServerFactory(),
		vaultOpener:   api.NewVaultOpener(),
	}
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// GetVaultOpener returns the vault opener
func (c *Container) GetVaultOpener() api.VaultOpener {
	return c.vaultOpener
}

// SetVaultOpener allows overriding the vault opener (for testing)
func (c *Container) SetVaultOpener(opener api.VaultOpener) {
	c.vaultOpener = opener
}
