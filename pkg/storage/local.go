package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage reads content from a directory on the local filesystem.
// All operations are confined to baseDir.
type LocalStorage struct {
	baseDir string // absolute
}

// NewLocalStorage opens baseDir as a content store. The directory must exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absBaseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, baseDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, baseDir)
	}

	return &LocalStorage{baseDir: absBaseDir}, nil
}

// Root returns the absolute directory backing the store.
func (s *LocalStorage) Root() string {
	return s.baseDir
}

// Read returns the content of the file at path.
func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Exists reports whether a regular file exists at path.
// Invalid paths and cancelled contexts report false.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}

	info, err := os.Stat(absPath)
	return err == nil && info.Mode().IsRegular()
}

// List returns the direct children of dir.
func (s *LocalStorage) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := cleanKey(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, dir)
	}
	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fi, err := de.Info()
		if err != nil {
			continue // vanished between ReadDir and Info
		}

		entry := Entry{
			Name:    de.Name(),
			Path:    strings.TrimPrefix(key+"/"+de.Name(), "/"),
			IsDir:   de.IsDir(),
			ModTime: fi.ModTime(),
		}
		if !de.IsDir() {
			entry.Size = fi.Size()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Ping checks that the base directory is still there.
func (s *LocalStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.baseDir); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	return nil
}

// resolvePath maps a store path to an absolute path inside baseDir.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	key, err := cleanKey(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, path)
	}

	absPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return absPath, nil
}
