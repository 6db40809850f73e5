package storage

import (
	"context"
	"path"
	"strings"
	"time"
)

// Entry is a file or directory inside a store.
type Entry struct {
	Name    string
	Path    string // slash separated, relative to the store root
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Storage is a read-only view over content files.
// Paths are slash separated and relative to the store root.
type Storage interface {
	// Read returns the whole file. Missing files yield ErrFileNotFound.
	Read(ctx context.Context, path string) ([]byte, error)
	// Exists reports whether a regular file exists at path.
	Exists(ctx context.Context, path string) bool
	// List returns the direct children of dir. Missing directories yield ErrDirectoryNotFound.
	List(ctx context.Context, dir string) ([]Entry, error)
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// cleanKey normalizes p to a root-relative slash path and rejects traversal.
// The store root itself is the empty key.
func cleanKey(p string) (string, error) {
	if strings.ContainsRune(p, 0) || strings.Contains(p, "\\") {
		return "", ErrInvalidPath
	}
	for seg := range strings.SplitSeq(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	p = strings.Trim(path.Clean("/"+p), "/")
	return p, nil
}
