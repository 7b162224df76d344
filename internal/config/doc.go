// Package config loads runtime configuration for the site admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with SITEADMIN_ (caarlos0/env).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database DSN (SQLite path, postgres:// URL or "memory:")
//	-l string   log level (debug, info, warn, error)
//	-f string   JSON log file
//	-p string   password scheme (argon2id, base64)
//	-t int      per-command timeout, seconds
//	-b string   backup target (file, s3)
//	-o string   backup directory for the file target
//
// # JSON schema
//
// Durations accept either strings like "10s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "siteadmin.db",
//	  "operation_timeout": "10s",
//	  "backup_target": "s3",
//	  "s3_bucket": "site-backups"
//	}
package config
