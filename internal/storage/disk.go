// Package storage provides the local-disk implementation of the document
// file store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
)

// DiskStore keeps uploaded files in a flat directory. Stored names are
// service-generated UUIDs, so path traversal from client input is rejected
// rather than sanitised.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

var _ portssvc.FileStore = (*DiskStore)(nil)

func (s *DiskStore) path(storedName string) (string, error) {
	if storedName == "" || storedName != filepath.Base(storedName) || strings.ContainsRune(storedName, os.PathSeparator) {
		return "", fmt.Errorf("invalid stored name %q", storedName)
	}
	return filepath.Join(s.dir, storedName), nil
}

func (s *DiskStore) Save(_ context.Context, storedName string, content io.Reader) error {
	p, err := s.path(storedName)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}

func (s *DiskStore) Open(_ context.Context, storedName string) (io.ReadCloser, error) {
	p, err := s.path(storedName)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *DiskStore) Remove(_ context.Context, storedName string) error {
	p, err := s.path(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
