package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cms-admin/internal/domain"
)

// FilesystemStore is an ObjectStore backed by a local directory. Objects are
// served by the HTTP layer under baseURL, so the returned URLs are
// baseURL + "/" + path.
type FilesystemStore struct {
	root    string
	baseURL string
}

// NewFilesystemStore creates a store rooted at dir, serving objects under
// baseURL.
func NewFilesystemStore(dir, baseURL string) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FilesystemStore{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object and returns its public URL.
func (s *FilesystemStore) Put(ctx context.Context, path string, contentType string, r io.Reader) (string, error) {
	full, err := s.safeJoin(path)
	if err != nil {
		return "", domain.WrapError(domain.KindUpload, "invalid object path", err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", domain.WrapError(domain.KindUpload, "create object dir", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", domain.WrapError(domain.KindUpload, "create object", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", domain.WrapError(domain.KindUpload, "write object", err)
	}

	return s.baseURL + "/" + filepath.ToSlash(path), nil
}

// Delete removes the object addressed by url. Unknown URLs and already
// deleted objects are not errors.
func (s *FilesystemStore) Delete(ctx context.Context, url string) error {
	path, ok := s.pathFromURL(url)
	if !ok {
		return nil
	}
	full, err := s.safeJoin(path)
	if err != nil {
		return nil
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return domain.WrapError(domain.KindUpload, "delete object", err)
	}
	return nil
}

// DeletePrefix removes everything stored under prefix.
func (s *FilesystemStore) DeletePrefix(ctx context.Context, prefix string) error {
	full, err := s.safeJoin(prefix)
	if err != nil {
		return domain.WrapError(domain.KindUpload, "invalid object prefix", err)
	}
	if err := os.RemoveAll(full); err != nil {
		return domain.WrapError(domain.KindUpload, "delete object prefix", err)
	}
	return nil
}

// pathFromURL maps a previously returned URL back to its object path.
func (s *FilesystemStore) pathFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	return strings.TrimPrefix(url, s.baseURL+"/"), true
}

// safeJoin resolves path under the store root, rejecting traversal outside
// it.
func (s *FilesystemStore) safeJoin(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("path %q escapes store root", path)
	}
	return filepath.Join(s.root, cleaned), nil
}
