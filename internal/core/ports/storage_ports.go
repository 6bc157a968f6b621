package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded documents and photos and hands back an opaque
// reference string. The core stores and returns the reference but never
// interprets its bytes.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (ref string, err error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}
