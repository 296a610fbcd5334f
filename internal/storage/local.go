package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads under a directory served as static files.
type LocalStore struct {
	dir     string
	urlPath string
}

// NewLocalStore returns a store rooted at dir whose files are served under urlPath.
func NewLocalStore(dir, urlPath string) *LocalStore {
	urlPath = strings.TrimRight(strings.TrimSpace(urlPath), "/")
	if urlPath == "" {
		urlPath = "/static/uploads"
	}
	return &LocalStore{dir: dir, urlPath: urlPath}
}

// Dir returns the directory files are written to.
func (s *LocalStore) Dir() string { return s.dir }

// Put saves data as name and returns the public URL path.
func (s *LocalStore) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join(s.urlPath, base), nil
}
