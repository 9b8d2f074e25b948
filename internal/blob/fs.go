package blob

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// fsStorage implements [Storage] on the local filesystem. It backs local
// development and tests; keys map directly to paths under the root
// directory, with the content type derived from the file extension on read.
type fsStorage struct {
	root string
}

// NewFSStorage builds a filesystem [Storage] rooted at dir.
func NewFSStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fsStorage{root: dir}, nil
}

func (f *fsStorage) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(f.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

func (f *fsStorage) Get(_ context.Context, key string) ([]byte, string, error) {
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, nil
}

func (f *fsStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(f.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *fsStorage) List(_ context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo

	err := filepath.Walk(f.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, relErr := filepath.Rel(f.root, path)
		if relErr != nil {
			return relErr
		}

		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, ObjectInfo{Key: key, LastModified: info.ModTime()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return objects, nil
}
