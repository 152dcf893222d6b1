package listing

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/sizes"
	"github.com/pescuma/stignore-agent/lib/utils"
)

// ReservedPrefix marks folders created by the sync tool itself.
const ReservedPrefix = ".st"

type Options struct {
	Sizes    *sizes.Options
	Routines int
}

// SearchGlob returns the pattern that matches entries exactly depth+1 levels
// below the root.
func SearchGlob(depth int) string {
	return strings.TrimSuffix(strings.Repeat("*/", utils.Max(depth, 0)+1), "/")
}

// ListChildren lists the folders found at the content type search depth, with
// their sizes, sorted by name.
func ListChildren(ct *model.ContentType, depth int, opts *Options) ([]*model.Folder, error) {
	if opts == nil {
		opts = &Options{}
	}

	exists, err := utils.DirExists(ct.RootPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error checking %v", ct.RootPath)
	}
	if !exists {
		return nil, model.ErrRootPathMissing
	}

	matches, err := doublestar.Glob(os.DirFS(ct.RootPath), SearchGlob(depth))
	if err != nil {
		return nil, errors.Wrapf(err, "error listing %v", ct.RootPath)
	}

	var dirs []string
	for _, m := range matches {
		if strings.HasPrefix(path.Base(m), ReservedPrefix) {
			continue
		}

		dir := filepath.Join(ct.RootPath, filepath.FromSlash(m))

		isDir, err := utils.DirExists(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "error checking %v", dir)
		}
		if !isDir {
			continue
		}

		dirs = append(dirs, dir)
	}

	result, err := utils.ParallelMap(dirs, func(dir string) (*model.Folder, error) {
		size, err := sizes.DirectorySizeBytes(dir, opts.Sizes)
		if err != nil {
			return nil, err
		}

		return &model.Folder{
			Name:          filepath.Base(dir),
			Path:          dir,
			SizeBytes:     size,
			SizeMegabytes: sizes.ToRoundedMegabytes(size),
		}, nil
	}, utils.ParallelOptions{Routines: opts.Routines})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Path < result[j].Path
	})

	return result, nil
}
