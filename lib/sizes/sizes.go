package sizes

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/stignore-agent/lib/utils"
)

const bytesPerMegabyte = 1024 * 1024

type Options struct {
	// FollowSymlinks counts symlinks to regular files with the size of their
	// target. Symlinked directories are never traversed.
	FollowSymlinks bool
}

// DirectorySizeBytes sums the sizes of all regular files below path. A missing
// path has size 0.
func DirectorySizeBytes(path string, opts *Options) (int64, error) {
	if opts == nil {
		opts = &Options{}
	}

	var total int64

	err := filepath.WalkDir(path, func(file string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// Vanished while walking
				return nil
			}
			return err
		}

		switch {
		case entry.Type().IsRegular():
			info, err := entry.Info()
			if errors.Is(err, os.ErrNotExist) {
				return nil
			} else if err != nil {
				return err
			}

			total += info.Size()

		case entry.Type()&fs.ModeSymlink != 0 && opts.FollowSymlinks:
			info, err := os.Stat(file)
			if err != nil {
				// Dangling links count as nothing
				return nil
			}

			if info.Mode().IsRegular() {
				total += info.Size()
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "error computing size of %v", path)
	}

	return total, nil
}

func ToMegabytes(bytes int64) float64 {
	return float64(bytes) / bytesPerMegabyte
}

// ToRoundedMegabytes is what listings report: megabytes with two decimals.
func ToRoundedMegabytes(bytes int64) float64 {
	return utils.RoundTo(ToMegabytes(bytes), 2)
}
