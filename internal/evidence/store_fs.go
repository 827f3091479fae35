package evidence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	dErrors "bluecarbon/pkg/domain-errors"
)

// FSStore persists payloads as files named by their digest. Content
// addressing makes writes idempotent, so a crash mid-write at worst leaves
// a temp file to overwrite on retry.
type FSStore struct {
	dir string
}

// NewFS creates the storage directory if needed.
func NewFS(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create evidence dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

func (s *FSStore) Put(_ context.Context, data []byte) (string, error) {
	locator := Locator(data)
	digest, _ := ParseLocator(locator)
	path := filepath.Join(s.dir, digest)

	if _, err := os.Stat(path); err == nil {
		return locator, nil
	}

	tmp, err := os.CreateTemp(s.dir, "put-*")
	if err != nil {
		return "", fmt.Errorf("stage evidence blob: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write evidence blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close evidence blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("commit evidence blob: %w", err)
	}
	return locator, nil
}

func (s *FSStore) Get(_ context.Context, locator string) ([]byte, error) {
	digest, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, digest))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dErrors.New(dErrors.CodeNotFound, "evidence package not found")
	}
	if err != nil {
		return nil, fmt.Errorf("read evidence blob: %w", err)
	}
	return data, nil
}
