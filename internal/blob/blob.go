// Package blob stores uploaded images. It hands out signed, single-use
// upload targets, serves stored files and resolves storage references to
// public URLs.
package blob

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/ksuid"
)

var (
	// ErrNotFound indicates no blob is stored under the reference.
	ErrNotFound = errors.New("blob not found")
	// ErrExists indicates a blob is already stored under the reference.
	ErrExists = errors.New("blob already exists")
	// ErrInvalidRef indicates a malformed storage reference.
	ErrInvalidRef = errors.New("invalid storage reference")
)

// Store persists blob contents by storage reference.
type Store interface {
	// Put stores the contents of r under ref. It fails with ErrExists if ref
	// is already taken; nothing is stored on failure.
	Put(ctx context.Context, ref string, r io.Reader) error

	// Open returns the blob contents and its modification time.
	Open(ctx context.Context, ref string) (io.ReadSeekCloser, time.Time, error)

	// Exists reports whether ref holds a blob.
	Exists(ctx context.Context, ref string) (bool, error)
}

// NewRef allocates a new storage reference. References are KSUIDs, so they
// sort by creation time and are safe to use as file names.
func NewRef() string {
	return ksuid.New().String()
}

// ValidRef reports whether ref is a well-formed storage reference.
func ValidRef(ref string) bool {
	_, err := ksuid.Parse(ref)
	return err == nil
}
