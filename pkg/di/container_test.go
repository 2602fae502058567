package di

import (
	"context"
	"testing"

	"github.com/ssargent/bytewords/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStarter struct{}

func (fakeStarter) StartServer(ctx context.Context, store api.PayloadStore, config api.ServerConfig) error {
	return nil
}

type fakeFactory struct{}

func (fakeFactory) CreateServerStarter() api.ServerStarter { return fakeStarter{} }

func TestNewContainer(t *testing.T) {
	c := NewContainer()

	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())
	assert.IsType(t, &api.DefaultVaultOpener{}, c.GetVaultOpener())
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()
	c.SetServerFactory(fakeFactory{})

	starter := c.GetServerFactory().CreateServerStarter()
	require.NotNil(t, starter)
	assert.NoError(t, starter.StartServer(context.Background(), nil, api.ServerConfig{}))
}

func TestDefaultVaultOpener(t *testing.T) {
	v, err := NewContainer().GetVaultOpener().OpenVault(t.TempDir())
	require.NoError(t, err)
	defer v.Close()

	id, err := v.Put([]byte{0x2a})
	require.NoError(t, err)

	got, err := v.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2a}, got)
}
