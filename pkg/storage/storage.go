// Package storage resolves project-relative paths and answers existence
// questions about them. It never writes and never opens asset files.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Storage reads from a project tree rooted at Root.
type Storage struct {
	Root string
}

// FileStats is what verbose reports show for an asset that exists.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// New returns a Storage rooted at root, made absolute.
func New(root string) (*Storage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("error resolving root %s: %w", root, err)
	}
	return &Storage{Root: abs}, nil
}

// Resolve joins a project-relative path onto Root. Absolute paths are returned as is.
func (s *Storage) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// ReadText reads a whole file as text.
func (s *Storage) ReadText(rel string) (string, error) {
	data, err := os.ReadFile(s.Resolve(rel))
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}
	return string(data), nil
}

// HasFile reports whether rel exists under Root.
// A permission error counts as present, since something is there even if
// we can't look at it. Every other stat failure (not-exist, a path running
// through a regular file, a symlink loop) counts as missing.
func (s *Storage) HasFile(rel string) bool {
	_, err := os.Stat(s.Resolve(rel))
	return err == nil || errors.Is(err, fs.ErrPermission)
}

// GetFileStats stats rel for the asset size listing; the file is never opened.
func (s *Storage) GetFileStats(rel string) (*FileStats, error) {
	info, err := os.Stat(s.Resolve(rel))
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
