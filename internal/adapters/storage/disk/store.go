// Package disk stores uploaded files under a base directory and returns
// opaque reference strings. References carry no meaning beyond lookup.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

type Store struct {
	baseDir string
}

func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := uuid.NewString() + sanitizeExt(originalName)
	f, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return ref, nil
}

func (s *Store) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Refs are generated names; reject anything that escapes the base dir.
	if ref != filepath.Base(ref) {
		return nil, fmt.Errorf("invalid file reference %q", ref)
	}
	f, err := os.Open(filepath.Join(s.baseDir, ref))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}

var _ ports.FileStore = (*Store)(nil)
