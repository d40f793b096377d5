// Package storage abstracts where uploaded images live. The platform only
// ever handles opaque refs; swapping the local store for an object store
// means implementing ImageStore.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore saves uploaded images and returns an opaque ref for them.
type ImageStore interface {
	// Save stores the image content and returns its ref. The original
	// filename is only consulted for its extension.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalImageStore stores images on the local filesystem under a managed
// directory. Refs are URL paths under /uploads, served statically.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates the storage directory if needed.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save writes the image under a fresh uuid-derived name so uploads can never
// collide or overwrite each other.
func (s *LocalImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return "/uploads/" + name, nil
}
