package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN
//	-l string   log level
//	-f string   JSON log file
//	-p string   password scheme
//	-t int      per-command timeout, seconds
//	-b string   backup target
//	-o string   backup directory
//
// Arguments the function does not know are filtered out first, so -c/-config
// can live on the same command line.
func parseFlags(cfg *Config) error {
	args := filterArgs(argsFn(), "-d", "-l", "-f", "-p", "-t", "-b", "-o")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (sqlite path, postgres:// URL or memory:)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "JSON log file")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme (argon2id, base64)")
	timeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "per-command timeout (in seconds)")
	fs.StringVar(&cfg.BackupTarget, "b", cfg.BackupTarget, "backup target (file, s3)")
	fs.StringVar(&cfg.BackupDir, "o", cfg.BackupDir, "backup directory")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// only an explicit -t overrides; sub-second values from JSON survive otherwise
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OperationTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
