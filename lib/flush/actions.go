package flush

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/sizes"
	"github.com/pescuma/stignore-agent/lib/utils"
)

type Options struct {
	Sizes    *sizes.Options
	Routines int
}

// ComputeActions returns one delete action for each ignore entry that exists
// below root, in the order of entries. Keep entries and entries that are not on
// disk produce nothing.
func ComputeActions(entries []model.IgnoreEntry, root string, opts *Options) ([]*model.PendingAction, error) {
	if opts == nil {
		opts = &Options{}
	}

	ignored := lo.Filter(entries, func(e model.IgnoreEntry, _ int) bool {
		return e.Kind == model.IgnoreKindIgnore
	})

	var paths []string
	for _, e := range ignored {
		path := filepath.Join(root, e.Name)
		if !isBelow(root, path) {
			continue
		}

		exists, err := utils.FileExists(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error checking %v", path)
		}
		if !exists {
			continue
		}

		paths = append(paths, path)
	}

	return utils.ParallelMap(paths, func(path string) (*model.PendingAction, error) {
		size, err := sizes.DirectorySizeBytes(path, opts.Sizes)
		if err != nil {
			return nil, err
		}

		return &model.PendingAction{
			Name:          filepath.Base(path),
			Path:          path,
			Operation:     model.DeleteOperation,
			SizeBytes:     size,
			SizeMegabytes: sizes.ToMegabytes(size),
		}, nil
	}, utils.ParallelOptions{Routines: opts.Routines})
}

func isBelow(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
