package utils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 25.0, RoundTo(25, 2))
	assert.Equal(t, 1.23, RoundTo(1.234, 2))
	assert.Equal(t, 1.24, RoundTo(1.235001, 2))
	assert.Equal(t, 0.0, RoundTo(0.001, 2))
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ok, err := FileExists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o600))

	ok, err := DirExists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = DirExists(file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = DirExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParallelMapKeepsOrder(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	out, err := ParallelMap(in, func(i int) (int, error) { return i * 2, nil }, ParallelOptions{Routines: 3})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, out)
}

func TestParallelMapEmpty(t *testing.T) {
	t.Parallel()

	out, err := ParallelMap([]int{}, func(i int) (int, error) { return i, nil })

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParallelMapReturnsError(t *testing.T) {
	t.Parallel()

	out, err := ParallelMap([]int{1, 2, 3}, func(i int) (int, error) {
		if i == 2 {
			return 0, errors.New("boom")
		}
		return i, nil
	})

	assert.EqualError(t, err, "boom")
	assert.Nil(t, out)
}

func TestAtomicWriteFileReplacesContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".stignore")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	require.NoError(t, AtomicWriteFile(path, []byte("new\n"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWithFileLockSerializes(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "locks", "share-1.lock")

	var wg sync.WaitGroup
	var mutex sync.Mutex
	inside := 0
	maxInside := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := WithFileLock(lockPath, func() error {
				mutex.Lock()
				inside++
				maxInside = Max(maxInside, inside)
				mutex.Unlock()

				time.Sleep(5 * time.Millisecond)

				mutex.Lock()
				inside--
				mutex.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, maxInside)
}
