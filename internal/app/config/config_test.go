package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
	return dir
}

func clearEnv(t *testing.T) {
	for _, key := range []string{
		envConfigName, envJWTSecret, envJWTExpiresIn,
		envRedisHost, envRedisPort, envRedisUser, envRedisPass,
		envMinIOHost, envMinIOAccess, envMinIOSecret, envMinIOBucket, envMinIOSSL,
		"DB_HOST", "DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfigFrom(t *testing.T) {
	clearEnv(t)
	dir := writeConfig(t, `
ServiceHost = "127.0.0.1"
ServicePort = 9090

[Log]
Level = "debug"
Format = "json"
`)
	t.Setenv(envJWTSecret, "secret")
	t.Setenv(envJWTExpiresIn, "2h")
	t.Setenv(envRedisHost, "redis")
	t.Setenv(envRedisPort, "6380")
	t.Setenv(envMinIOHost, "minio:9000")

	cfg, err := NewConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "secret", cfg.JWT.Token)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiresIn)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.True(t, cfg.MinIO.Enabled())
	assert.Equal(t, defaultMinIOBucket, cfg.MinIO.Bucket)
}

func TestNewConfigDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, defaultJWTExpiresIn, cfg.JWT.ExpiresIn)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
	assert.Empty(t, cfg.DSN)
}

func TestJWTConfigValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfigFrom(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, cfg.JWT.Validate())

	t.Setenv(envJWTSecret, "secret")
	cfg, err = NewConfigFrom(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, cfg.JWT.Validate())
}

func TestNewConfigBadRedisPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRedisPort, "not-a-port")

	_, err := NewConfigFrom(t.TempDir())
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, SetupLogging(LogConfig{Level: "warn", Format: "json"}))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Error(t, SetupLogging(LogConfig{Level: "loud"}))
	assert.Error(t, SetupLogging(LogConfig{Level: "info", Format: "xml"}))
}
