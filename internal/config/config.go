package config

import "time"

// Config holds runtime settings for the site admin console.
//
// Fields:
//   - DatabaseDSN: SQLite file path, postgres:// URL, or "memory:".
//   - LogLevel / LogFile: slog level and optional JSON log file.
//   - PasswordScheme: "argon2id" (default) or "base64" (demo-only, reversible).
//   - OperationTimeout: deadline applied to each console command.
//   - BackupTarget: "file" or "s3"; BackupDir is used by the file target.
//   - S3*: bucket, region, endpoint, credentials and key prefix for the s3 target.
type Config struct {
	DatabaseDSN      string        `env:"DATABASE_DSN"`
	LogLevel         string        `env:"LOG_LEVEL"`
	LogFile          string        `env:"LOG_FILE"`
	PasswordScheme   string        `env:"PASSWORD_SCHEME"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
	BackupTarget     string        `env:"BACKUP_TARGET"`
	BackupDir        string        `env:"BACKUP_DIR"`
	S3Bucket         string        `env:"S3_BUCKET"`
	S3Region         string        `env:"S3_REGION"`
	S3BaseEndpoint   string        `env:"S3_BASE_ENDPOINT"`
	S3AccessKey      string        `env:"S3_ACCESS_KEY"`
	S3SecretKey      string        `env:"S3_SECRET_KEY"`
	S3Prefix         string        `env:"S3_PREFIX"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "siteadmin.db"
	c.LogLevel = "info"
	c.LogFile = ""
	c.PasswordScheme = "argon2id"
	c.OperationTimeout = 10 * time.Second
	c.BackupTarget = "file"
	c.BackupDir = "backups"
	c.S3Bucket = "site-backups"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.S3Prefix = "siteadmin/"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
