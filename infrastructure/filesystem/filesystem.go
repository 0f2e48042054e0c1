package filesystem

import (
	"context"
	"io"
)

// Storage is where document blobs live; metadata stays in MySQL.
type Storage interface {
	Write(ctx context.Context, key string, r io.Reader) error
	Read(ctx context.Context, key string, w io.Writer) error
	Delete(ctx context.Context, key string) error
}
