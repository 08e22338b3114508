package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "/files/")
	require.NoError(t, err)

	url, err := s.Store(context.Background(), strings.NewReader("%PDF-1.4"), "Taxi Receipt.PDF")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	name := strings.TrimPrefix(url, "/files/")
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	require.NoError(t, s.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(context.Background(), url), "deleting twice is not an error")
}

func TestStoreGeneratesUniqueNames(t *testing.T) {
	s, err := New(t.TempDir(), "/files")
	require.NoError(t, err)

	first, err := s.Store(context.Background(), strings.NewReader("a"), "receipt.png")
	require.NoError(t, err)
	second, err := s.Store(context.Background(), strings.NewReader("b"), "receipt.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStoreCanceledContext(t *testing.T) {
	s, err := New(t.TempDir(), "/files")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Store(ctx, strings.NewReader("a"), "receipt.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeleteRejectsForeignURLs(t *testing.T) {
	s, err := New(t.TempDir(), "/files")
	require.NoError(t, err)

	tests := []string{
		"/other/abc.pdf",
		"/files/../secret",
		"/files/",
		"https://example.com/files/abc.pdf",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			assert.Error(t, s.Delete(context.Background(), url))
		})
	}
}

func TestHandler(t *testing.T) {
	s, err := New(t.TempDir(), "/files")
	require.NoError(t, err)
	url, err := s.Store(context.Background(), strings.NewReader("receipt-bytes"), "r.txt")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "receipt-bytes", rec.Body.String())
	assert.Equal(t, "/files", s.URLPrefix())
}
