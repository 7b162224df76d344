package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := argsFn
	t.Cleanup(func() { argsFn = orig })
	argsFn = func() []string { return args }
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "siteadmin.db", c.DatabaseDSN)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "argon2id", c.PasswordScheme)
	assert.Equal(t, 10*time.Second, c.OperationTimeout)
	assert.Equal(t, "file", c.BackupTarget)
	assert.Equal(t, "backups", c.BackupDir)
	assert.Equal(t, "site-backups", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "siteadmin/", c.S3Prefix)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_dsn":    "from-json.db",
		"log_level":       "debug",
		"password_scheme": "base64",
	})
	t.Setenv("SITEADMIN_LOG_LEVEL", "warn")
	t.Setenv("SITEADMIN_BACKUP_TARGET", "s3")
	withArgs(t, "-c", path, "-b", "file")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-json.db", cfg.DatabaseDSN) // json only
	assert.Equal(t, "base64", cfg.PasswordScheme)    // json only
	assert.Equal(t, "warn", cfg.LogLevel)            // env beats json
	assert.Equal(t, "file", cfg.BackupTarget)        // flag beats env
	assert.Equal(t, 10*time.Second, cfg.OperationTimeout)
}

func TestLoadConfig_NoSources_UsesDefaults(t *testing.T) {
	withArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "siteadmin.db", cfg.DatabaseDSN)
}

func TestParseEnv_Duration(t *testing.T) {
	t.Setenv("SITEADMIN_OPERATION_TIMEOUT", "1500ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, 1500*time.Millisecond, cfg.OperationTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SITEADMIN_OPERATION_TIMEOUT", "soon")

	cfg := &Config{}
	require.Error(t, parseEnv(cfg))
}
