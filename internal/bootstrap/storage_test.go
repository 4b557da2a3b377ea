package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospital-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{StoreBackend: config.StoreMemory}}
	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.StoreMemory, s.Backend)
	assert.Equal(t, config.StoreMemory, s.Feed)
	assert.NotNil(t, s.Users)
	assert.NotNil(t, s.TxRunner)
	assert.NotNil(t, s.Activity)

	n, err := s.Patients.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_BackendDesconocido(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{App: config.AppConfig{StoreBackend: "sqlite"}}, nil)
	assert.Error(t, err)
}

func TestOpen_RedisInalcanzable(t *testing.T) {
	cfg := &config.Config{
		App:   config.AppConfig{StoreBackend: config.StoreMemory},
		Redis: config.RedisConfig{Addr: "127.0.0.1:1"},
	}
	_, err := Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}
