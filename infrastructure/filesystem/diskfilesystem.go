package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", root, err)
	}
	return &DiskStorage{root: root}, nil
}

func (d *DiskStorage) Write(ctx context.Context, key string, r io.Reader) error {
	f, err := os.Create(filepath.Join(d.root, filepath.Base(key)))
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file %s: %w", key, err)
	}
	return nil
}

func (d *DiskStorage) Read(ctx context.Context, key string, w io.Writer) error {
	f, err := os.Open(filepath.Join(d.root, filepath.Base(key)))
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read file %s: %w", key, err)
	}
	return nil
}

func (d *DiskStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(filepath.Join(d.root, filepath.Base(key))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}
