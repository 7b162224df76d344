package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileTarget keeps documents in a directory. Relative dirs are resolved
// against the working directory and created on first write. Absolute
// names bypass the directory, so any file on disk can be imported.
type FileTarget struct {
	dir string
}

func NewFileTarget(dir string) *FileTarget {
	return &FileTarget{dir: dir}
}

func (t *FileTarget) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(t.dir, name)
}

func (t *FileTarget) Location(name string) string {
	p := t.path(name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ensureDir creates dir under the working directory unless it is absolute.
func ensureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

func (t *FileTarget) Write(ctx context.Context, name string, data []byte) error {
	p := t.path(name)
	if _, err := ensureDir(filepath.Dir(p)); err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return fmt.Errorf("write backup %s: %w", p, err)
	}
	return nil
}

func (t *FileTarget) Read(ctx context.Context, name string) ([]byte, error) {
	p := t.path(name)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", p, err)
	}
	return data, nil
}
