package localfs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/adarkz/YellowCarGame-chef/internal/blob"
)

func TestStore(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()
	ref := blob.NewRef()

	t.Run("Put then Open", func(t *testing.T) {
		if err := store.Put(ctx, ref, strings.NewReader("yellow")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		f, modTime, err := store.Open(ctx, ref)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if string(data) != "yellow" {
			t.Errorf("Content mismatch: got %q", data)
		}
		if modTime.IsZero() {
			t.Error("Expected modification time")
		}
	})

	t.Run("Put never replaces an existing blob", func(t *testing.T) {
		err := store.Put(ctx, ref, strings.NewReader("other"))
		if !errors.Is(err, blob.ErrExists) {
			t.Fatalf("Expected ErrExists, got %v", err)
		}

		f, _, err := store.Open(ctx, ref)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if string(data) != "yellow" {
			t.Errorf("Original content replaced: got %q", data)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, ref)
		if err != nil || !ok {
			t.Errorf("Expected stored blob to exist, got %v (err=%v)", ok, err)
		}

		ok, err = store.Exists(ctx, blob.NewRef())
		if err != nil || ok {
			t.Errorf("Expected unknown blob to be missing, got %v (err=%v)", ok, err)
		}

		ok, err = store.Exists(ctx, "../../etc/passwd")
		if err != nil || ok {
			t.Errorf("Expected malformed ref to be missing, got %v (err=%v)", ok, err)
		}
	})

	t.Run("Open unknown and malformed refs", func(t *testing.T) {
		if _, _, err := store.Open(ctx, blob.NewRef()); !errors.Is(err, blob.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, _, err := store.Open(ctx, "../secret"); !errors.Is(err, blob.ErrInvalidRef) {
			t.Errorf("Expected ErrInvalidRef, got %v", err)
		}
		if err := store.Put(ctx, "not a ksuid", strings.NewReader("x")); !errors.Is(err, blob.ErrInvalidRef) {
			t.Errorf("Expected ErrInvalidRef from Put, got %v", err)
		}
	})
}
