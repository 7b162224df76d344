// Package backup stores exported backup documents. A Target is addressed by
// file name only; where the bytes end up (a local directory or an S3
// bucket) is decided by configuration.
package backup

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/config"
)

const (
	TargetFile = "file"
	TargetS3   = "s3"
)

// ErrNotExist is returned by Read when the named document is missing.
var ErrNotExist = errors.New("backup does not exist")

type Target interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	// Location describes where name is stored, for user messages.
	Location(name string) string
}

// NewTarget builds the target selected by cfg.BackupTarget.
func NewTarget(ctx context.Context, cfg *config.Config) (Target, error) {
	switch cfg.BackupTarget {
	case TargetFile, "":
		return NewFileTarget(cfg.BackupDir), nil
	case TargetS3:
		return NewS3Target(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown backup target %q", cfg.BackupTarget)
	}
}
