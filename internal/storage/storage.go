package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStorage keeps receipts on the local disk under random names and serves them below urlPrefix.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

func New(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create upload dir %s: %w", dir, err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

func (s *LocalStorage) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(originalName)))

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	zap.L().Debug("receipt stored", zap.String("name", name), zap.String("original", originalName))
	return path.Join(s.urlPrefix, name), nil
}

// Delete removes the file behind url. Missing files are not an error.
func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	name, err := s.fileName(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) fileName(url string) (string, error) {
	name := strings.TrimPrefix(url, s.urlPrefix+"/")
	if name == url || name == "" || name != filepath.Base(name) || name == ".." {
		return "", fmt.Errorf("url %q is not managed by this storage", url)
	}
	return name, nil
}

// Handler serves stored files. Mount it at the url prefix.
func (s *LocalStorage) Handler() http.Handler {
	return http.StripPrefix(s.urlPrefix, http.FileServer(http.Dir(s.dir)))
}

func (s *LocalStorage) URLPrefix() string {
	return s.urlPrefix
}
