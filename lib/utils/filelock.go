package utils

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// WithFileLock runs f while holding an exclusive lock on lockPath. The lock
// file is created if needed and left in place afterwards.
func WithFileLock(lockPath string, f func() error) error {
	err := os.MkdirAll(filepath.Dir(lockPath), 0o700)
	if err != nil {
		return errors.Wrapf(err, "error creating lock dir for %v", lockPath)
	}

	lock := flock.New(lockPath)

	err = lock.Lock()
	if err != nil {
		return errors.Wrapf(err, "error acquiring lock %v", lockPath)
	}
	defer lock.Unlock()

	return f()
}

// AtomicWriteFile writes data to a temporary file next to path and renames it
// over path, so readers see either the old or the new contents.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "error creating temp file for %v", path)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "error writing %v", tmpPath)
	}

	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "error syncing %v", tmpPath)
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "error closing %v", tmpPath)
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrapf(err, "error setting permissions of %v", tmpPath)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "error replacing %v", path)
	}

	done = true
	return nil
}
