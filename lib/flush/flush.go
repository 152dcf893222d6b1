// Package flush implements the two step removal of ignored folders: Preview
// lists what would be deleted and Confirm deletes it, but only if the caller
// sends back exactly what a fresh preview returns.
package flush

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/stignore"
)

// Preview never changes anything on disk.
func Preview(ct *model.ContentType, opts *Options) ([]*model.PendingAction, error) {
	entries, err := stignore.Load(filepath.Join(ct.RootPath, stignore.FileName))
	if err != nil {
		return nil, err
	}

	return ComputeActions(entries, ct.RootPath, opts)
}

// Validate compares, position by position, the confirmation against the
// current actions.
func Validate(current []*model.PendingAction, confirmed *[]model.ConfirmedAction) error {
	if confirmed == nil {
		return model.ErrMissingConfirmation
	}

	if len(*confirmed) != len(current) {
		return model.ErrActionCountMismatch
	}

	for i, c := range *confirmed {
		if !c.Matches(current[i]) {
			return &model.ActionMismatchError{Index: i + 1}
		}
	}

	return nil
}

// Confirm recomputes the preview, validates the confirmation against it and
// then deletes every action path in order. Deletion stops at the first failure;
// the actions applied until then are returned together with the error.
func Confirm(ct *model.ContentType, confirmed *[]model.ConfirmedAction, opts *Options, onDeleted func(*model.PendingAction)) ([]*model.PendingAction, error) {
	current, err := Preview(ct, opts)
	if err != nil {
		return nil, err
	}

	err = Validate(current, confirmed)
	if err != nil {
		return nil, err
	}

	return Apply(current, onDeleted)
}

func Apply(actions []*model.PendingAction, onDeleted func(*model.PendingAction)) ([]*model.PendingAction, error) {
	applied := make([]*model.PendingAction, 0, len(actions))

	for _, a := range actions {
		err := os.RemoveAll(a.Path)
		if err != nil {
			return applied, errors.Wrapf(err, "error deleting %v", a.Path)
		}

		applied = append(applied, a)

		if onDeleted != nil {
			onDeleted(a)
		}
	}

	return applied, nil
}
