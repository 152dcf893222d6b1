package agent

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/config"
	"github.com/pescuma/stignore-agent/lib/consoles"
	"github.com/pescuma/stignore-agent/lib/flush"
	"github.com/pescuma/stignore-agent/lib/listing"
	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/sizes"
	"github.com/pescuma/stignore-agent/lib/stignore"
	"github.com/pescuma/stignore-agent/lib/utils"
)

// Agent answers every request for the configured content types. It holds no
// state besides the configuration: everything else is read from disk on each
// call.
type Agent struct {
	console      consoles.Console
	contentTypes *model.ContentTypes
	lockDir      string
	sizes        *sizes.Options
	port         uint
}

func New(console consoles.Console, cfg *config.Config) (*Agent, error) {
	cts, err := cfg.ContentTypes()
	if err != nil {
		return nil, err
	}

	lockDir, err := utils.PathAbs(cfg.LockDir)
	if err != nil {
		return nil, err
	}

	return &Agent{
		console:      console,
		contentTypes: cts,
		lockDir:      lockDir,
		sizes:        &sizes.Options{FollowSymlinks: cfg.FollowSymlinks},
		port:         cfg.Port,
	}, nil
}

func NewFromFile(console consoles.Console, file string) (*Agent, error) {
	file, err := utils.PathAbs(file)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}

	return New(console, cfg)
}

func (a *Agent) Console() consoles.Console {
	return a.console
}

// Port is the configured HTTP port, 0 if not set.
func (a *Agent) Port() uint {
	return a.port
}

func (a *Agent) ContentTypes() []*model.ContentType {
	return a.contentTypes.List()
}

func (a *Agent) ContentTypeNames() []string {
	return lo.Map(a.contentTypes.List(), func(ct *model.ContentType, _ int) string { return ct.Name })
}

func (a *Agent) Listing(name string) ([]*model.Folder, error) {
	ct, err := a.contentTypes.Get(name)
	if err != nil {
		return nil, err
	}

	return listing.ListChildren(ct, ct.SearchDepth, &listing.Options{Sizes: a.sizes})
}

func (a *Agent) IgnoreEntries(name string) ([]model.IgnoreEntry, error) {
	ct, err := a.contentTypes.Get(name)
	if err != nil {
		return nil, err
	}

	return stignore.Load(ignoreFile(ct))
}

// ModifyIgnoreEntries applies edits to the content type .stignore file. A nil
// edits means the request had no actions at all.
func (a *Agent) ModifyIgnoreEntries(name string, edits *[]model.ActionRequest) error {
	ct, err := a.contentTypes.Get(name)
	if err != nil {
		return err
	}

	return a.withLock(ct, func() error {
		file := ignoreFile(ct)

		entries, err := stignore.Load(file)
		if err != nil {
			return err
		}

		if edits == nil {
			return model.ErrMissingActions
		}

		entries, err = stignore.ApplyEdits(entries, *edits)
		if err != nil {
			return err
		}

		err = stignore.Save(file, entries)
		if err != nil {
			return err
		}

		a.console.Printf("%v: applied %v actions to %v\n", ct.Name, len(*edits), stignore.FileName)

		return nil
	})
}

func (a *Agent) FlushPreview(name string) ([]*model.PendingAction, error) {
	ct, err := a.contentTypes.Get(name)
	if err != nil {
		return nil, err
	}

	return flush.Preview(ct, a.flushOptions())
}

// FlushConfirm deletes the folders of the current preview if confirmed matches
// it. onDeleted, if not nil, is called after each folder is removed.
func (a *Agent) FlushConfirm(name string, confirmed *[]model.ConfirmedAction, onDeleted func(*model.PendingAction)) ([]*model.PendingAction, error) {
	ct, err := a.contentTypes.Get(name)
	if err != nil {
		return nil, err
	}

	var applied []*model.PendingAction
	err = a.withLock(ct, func() error {
		applied, err = flush.Confirm(ct, confirmed, a.flushOptions(), func(action *model.PendingAction) {
			a.console.Printf("%v: deleted %v (%v)\n", ct.Name, action.Path, humanize.IBytes(uint64(action.SizeBytes)))

			if onDeleted != nil {
				onDeleted(action)
			}
		})
		return err
	})

	return applied, err
}

func (a *Agent) flushOptions() *flush.Options {
	return &flush.Options{Sizes: a.sizes}
}

func (a *Agent) withLock(ct *model.ContentType, f func() error) error {
	return utils.WithFileLock(filepath.Join(a.lockDir, ct.Name+".lock"), f)
}

func ignoreFile(ct *model.ContentType) string {
	return filepath.Join(ct.RootPath, stignore.FileName)
}
