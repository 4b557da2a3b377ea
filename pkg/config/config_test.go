package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.App.StoreBackend)
	assert.Equal(t, 200, cfg.Hospital.BedCapacity)
	assert.Equal(t, "Africa/Bissau", cfg.Hospital.Timezone)
	assert.Equal(t, "XOF", cfg.Hospital.Currency)
	assert.Equal(t, "10-M", cfg.RateLimit.Login)
	assert.True(t, cfg.App.MetricsEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("HOSPITAL_BED_CAPACITY", "120")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Hospital.BedCapacity)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.App.MetricsEnabled)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "hnsm", Password: "p@ss:word", DBName: "hnsm", SSLMode: "disable"}
	assert.Equal(t, "postgres://hnsm:p%40ss%3Aword@db:5432/hnsm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
