package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCfg_Defaults(t *testing.T) {
	t.Setenv("CALCULATOR_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "0.0.0.0:9090", cfg.Grpc.Addr())
	assert.True(t, cfg.Grpc.Enabled)
	assert.Equal(t, "calculator", cfg.DB.DBName)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "calculator.evaluations", cfg.Kafka.Topic)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadCfg_Environment(t *testing.T) {
	t.Setenv("CALCULATOR_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CALCULATOR_STORAGE", "pg")
	t.Setenv("CALCULATOR_SERVER_PORT", "18080")
	t.Setenv("CALCULATOR_REDIS_ENABLED", "true")
	t.Setenv("CALCULATOR_REDIS_TTL", "5m")
	t.Setenv("CALCULATOR_LOG_LEVEL", "debug")

	cfg, err := LoadCfg()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "18080", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadCfg_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CALCULATOR_GRPC_PORT=19090\n"), 0o600))
	t.Setenv("CALCULATOR_ENV_FILE", path)
	// godotenv never overrides variables that are already set, so register the key
	// with t.Setenv and clear it to get it restored afterwards.
	t.Setenv("CALCULATOR_GRPC_PORT", "")
	require.NoError(t, os.Unsetenv("CALCULATOR_GRPC_PORT"))

	cfg, err := LoadCfg()
	require.NoError(t, err)
	assert.Equal(t, "19090", cfg.Grpc.Port)
}

func TestLoadCfg_UnknownStorage(t *testing.T) {
	t.Setenv("CALCULATOR_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CALCULATOR_STORAGE", "sqlite")

	_, err := LoadCfg()
	assert.ErrorContains(t, err, "unknown storage")
}
