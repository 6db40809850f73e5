// Package storage provides read-only content stores for the site.
//
// Content (markdown documents, manifests) is addressed by slash separated
// paths relative to a store root. Two backends are provided:
//
//   - LocalStorage reads from a directory on disk. Every path is resolved
//     inside the base directory; ".." segments are rejected with
//     ErrInvalidPath.
//   - S3Storage reads from an S3 bucket (or any S3-compatible service such as
//     MinIO) under an optional key prefix. The client is abstracted behind
//     S3Client so tests can supply an in-memory fake via WithS3Client.
//
// # Usage
//
//	store, err := storage.NewLocalStorage("./content")
//	if err != nil {
//		return err
//	}
//	data, err := store.Read(ctx, "docs/en-US/mission.md")
//	if errors.Is(err, storage.ErrFileNotFound) {
//		// fall back
//	}
//
// # Errors
//
// Missing files and directories are reported as ErrFileNotFound and
// ErrDirectoryNotFound. S3 failures are classified into ErrAccessDenied,
// ErrBucketNotFound, ErrOperationTimeout and friends so callers can use
// errors.Is regardless of backend.
package storage
