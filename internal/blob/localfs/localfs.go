// Package localfs implements blob.Store on the local filesystem.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adarkz/YellowCarGame-chef/internal/blob"
)

// Ensure Store implements blob.Store
var _ blob.Store = (*Store)(nil)

// Store keeps one file per blob in a single directory.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(ref string) (string, error) {
	if !blob.ValidRef(ref) {
		return "", fmt.Errorf("%w: %q", blob.ErrInvalidRef, ref)
	}
	return filepath.Join(s.dir, ref), nil
}

// Put writes r to a temp file and links it into place, so readers never
// observe a partial blob and an existing blob is never replaced.
func (s *Store) Put(ctx context.Context, ref string, r io.Reader) error {
	dst, err := s.path(ref)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close blob: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Link(tmp.Name(), dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", blob.ErrExists, ref)
		}
		return fmt.Errorf("failed to store blob: %w", err)
	}
	return nil
}

// Open opens the blob for reading.
func (s *Store) Open(ctx context.Context, ref string) (io.ReadSeekCloser, time.Time, error) {
	p, err := s.path(ref)
	if err != nil {
		return nil, time.Time{}, err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, time.Time{}, fmt.Errorf("%w: %s", blob.ErrNotFound, ref)
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to open blob: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("failed to stat blob: %w", err)
	}
	return f, info.ModTime(), nil
}

// Exists reports whether a blob is stored under ref. Malformed references
// simply do not exist.
func (s *Store) Exists(ctx context.Context, ref string) (bool, error) {
	p, err := s.path(ref)
	if err != nil {
		return false, nil
	}

	_, err = os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat blob: %w", err)
	}
	return true, nil
}
