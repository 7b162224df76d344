package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "empty" so a partial file only overrides
// what it names.
type JsonConfig struct {
	DatabaseDSN      *string   `json:"database_dsn"`
	LogLevel         *string   `json:"log_level"`
	LogFile          *string   `json:"log_file"`
	PasswordScheme   *string   `json:"password_scheme"`
	OperationTimeout *Duration `json:"operation_timeout"`
	BackupTarget     *string   `json:"backup_target"`
	BackupDir        *string   `json:"backup_dir"`
	S3Bucket         *string   `json:"s3_bucket"`
	S3Region         *string   `json:"s3_region"`
	S3BaseEndpoint   *string   `json:"s3_base_endpoint"`
	S3AccessKey      *string   `json:"s3_access_key"`
	S3SecretKey      *string   `json:"s3_secret_key"`
	S3Prefix         *string   `json:"s3_prefix"`
}

// argsFn is a seam for tests.
var argsFn = func() []string { return os.Args[1:] }

// parseJson overlays cfg with values from the file named by -c/-config.
// No flag means no change.
func parseJson(cfg *Config) error {
	path := configFileFromArgs(argsFn())
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.PasswordScheme, jc.PasswordScheme)
	setString(&cfg.BackupTarget, jc.BackupTarget)
	setString(&cfg.BackupDir, jc.BackupDir)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	if jc.OperationTimeout != nil {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
