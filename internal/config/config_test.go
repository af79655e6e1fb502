package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"POS_DATABASE_URL", "POS_RABBITMQ_URL", "POS_HTTP_PORT", "POS_STORAGE"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FileOverDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
database:
  host: db
  user: pos
  password: secret
  database: kitchen
rabbitmq:
  host: mq
  enabled: true
http:
  port: 9090
log:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, "postgres://pos:secret@db:5432/kitchen?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQURL())
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "pos_events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POS_DATABASE_URL", "postgres://u:p@elsewhere:6543/pos")
	t.Setenv("POS_RABBITMQ_URL", "amqp://u:p@broker:5673/pos")
	t.Setenv("POS_HTTP_PORT", "7000")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@elsewhere:6543/pos", cfg.DatabaseURL())
	assert.Equal(t, "amqp://u:p@broker:5673/pos", cfg.RabbitMQURL())
	assert.Equal(t, 7000, cfg.HTTP.Port)
}

func TestLoad_MissingFileWithMemoryStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("POS_STORAGE", "memory")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{
			name: "postgres without database fields",
			body: "storage:\n  driver: postgres\n",
			want: "host, user and database are required",
		},
		{
			name: "unknown storage driver",
			body: "storage:\n  driver: sqlite\n",
			want: "storage.driver",
		},
		{
			name: "http port out of range",
			body: "storage:\n  driver: memory\nhttp:\n  port: 70000\n",
			want: "http.port",
		},
		{
			name: "bad port in env",
			body: "storage:\n  driver: memory\n",
			env:  map[string]string{"POS_HTTP_PORT": "eighty"},
			want: "POS_HTTP_PORT",
		},
		{
			name: "malformed yaml",
			body: "database: [",
			want: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_OverridesRunBeforeValidation(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), func(c *config.Config) {
		c.Storage.Driver = config.StorageMemory
		c.HTTP.Port = 9001
	})
	require.NoError(t, err)
	assert.Equal(t, ":9001", cfg.HTTPAddr())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), func(c *config.Config) {
		c.Storage.Driver = "sqlite"
	})
	assert.Error(t, err)
}
