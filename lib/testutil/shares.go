// Package testutil builds the folder trees used by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pescuma/stignore-agent/lib/model"
)

const MB = 1024 * 1024

type Shares struct {
	BaseFolder string
	Share1     *model.ContentType
	Share2     *model.ContentType
}

func (s *Shares) ContentTypes() *model.ContentTypes {
	return model.NewContentTypes(s.Share1, s.Share2)
}

func (s *Shares) IgnoreFile(ct *model.ContentType) string {
	return filepath.Join(ct.RootPath, ".stignore")
}

func (s *Shares) WriteIgnoreFile(t testing.TB, ct *model.ContentType, contents string) string {
	path := s.IgnoreFile(ct)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// NewShares creates:
//
//	share-1/Object 1/File 1                    25MB
//	share-1/Object 2/File 1, File 2            10MB + 2MB
//	share-1/Object 3/File 1                    5MB
//	share-2/Object 1/Sub Object {1,2,3}/File 1 10MB, 15MB, 6MB
//	share-2/Object 2/Sub Object {1,2}/File 1   6MB, 6MB
//
// share-2 is searched with depth 1. Files are sparse.
func NewShares(t testing.TB) *Shares {
	base := filepath.Join(t.TempDir(), "shares")

	files := map[string]int64{
		"share-1/Object 1/File 1":              25 * MB,
		"share-1/Object 2/File 1":              10 * MB,
		"share-1/Object 2/File 2":              2 * MB,
		"share-1/Object 3/File 1":              5 * MB,
		"share-2/Object 1/Sub Object 1/File 1": 10 * MB,
		"share-2/Object 1/Sub Object 2/File 1": 15 * MB,
		"share-2/Object 1/Sub Object 3/File 1": 6 * MB,
		"share-2/Object 2/Sub Object 1/File 1": 6 * MB,
		"share-2/Object 2/Sub Object 2/File 1": 6 * MB,
	}
	for name, size := range files {
		WriteSparseFile(t, filepath.Join(base, filepath.FromSlash(name)), size)
	}

	return &Shares{
		BaseFolder: base,
		Share1: &model.ContentType{
			Name:     "share-1",
			RootPath: filepath.Join(base, "share-1"),
		},
		Share2: &model.ContentType{
			Name:        "share-2",
			RootPath:    filepath.Join(base, "share-2"),
			SearchDepth: 1,
		},
	}
}

func WriteSparseFile(t testing.TB, path string, size int64) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Truncate(size))
}
