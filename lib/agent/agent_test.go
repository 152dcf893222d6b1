package agent

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/stignore-agent/lib/consoles"
	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/testutil"
)

func newTestAgent(t *testing.T, out *bytes.Buffer) (*Agent, *testutil.Shares) {
	shares := testutil.NewShares(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(fmt.Sprintf(`---
base_folder: %q
lock_dir: %q
folders:
  - name: share-1
  - name: share-2
    depth: 1
`, shares.BaseFolder, filepath.Join(dir, "locks"))), 0o600))

	a, err := NewFromFile(consoles.NewWriterConsole(out), file)
	require.NoError(t, err)

	return a, shares
}

func TestContentTypeNames(t *testing.T) {
	t.Parallel()

	a, _ := newTestAgent(t, &bytes.Buffer{})

	assert.Equal(t, []string{"share-1", "share-2"}, a.ContentTypeNames())
}

func TestUnknownContentType(t *testing.T) {
	t.Parallel()

	a, _ := newTestAgent(t, &bytes.Buffer{})

	_, err := a.Listing("nope")
	assert.ErrorIs(t, err, model.ErrContentTypeNotFound)

	_, err = a.IgnoreEntries("nope")
	assert.ErrorIs(t, err, model.ErrContentTypeNotFound)

	err = a.ModifyIgnoreEntries("nope", &[]model.ActionRequest{})
	assert.ErrorIs(t, err, model.ErrContentTypeNotFound)

	_, err = a.FlushPreview("nope")
	assert.ErrorIs(t, err, model.ErrContentTypeNotFound)

	_, err = a.FlushConfirm("nope", &[]model.ConfirmedAction{}, nil)
	assert.ErrorIs(t, err, model.ErrContentTypeNotFound)
}

func TestModifyThenFlush(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a, shares := newTestAgent(t, &out)
	shares.WriteIgnoreFile(t, shares.Share1, "")

	err := a.ModifyIgnoreEntries("share-1", &[]model.ActionRequest{
		{Operation: "add", Kind: "ignore", Name: "Object 2"},
		{Operation: "add", Kind: "keep", Name: "Object 3"},
	})
	require.NoError(t, err)

	entries, err := a.IgnoreEntries("share-1")
	require.NoError(t, err)
	assert.Equal(t, []model.IgnoreEntry{
		{Raw: "!Object 3/", Name: "Object 3", Kind: model.IgnoreKindKeep},
		{Raw: "Object 2/", Name: "Object 2", Kind: model.IgnoreKindIgnore},
	}, entries)

	preview, err := a.FlushPreview("share-1")
	require.NoError(t, err)
	require.Len(t, preview, 1)

	confirmation := []model.ConfirmedAction{model.ConfirmationFor(preview[0])}

	var deleted []*model.PendingAction
	applied, err := a.FlushConfirm("share-1", &confirmation, func(action *model.PendingAction) {
		deleted = append(deleted, action)
	})
	require.NoError(t, err)
	assert.Equal(t, preview, applied)
	assert.Equal(t, preview, deleted)

	folders, err := a.Listing("share-1")
	require.NoError(t, err)
	assert.Len(t, folders, 2)

	assert.Contains(t, out.String(), "share-1: applied 2 actions to .stignore")
	assert.Contains(t, out.String(), "share-1: deleted "+filepath.Join(shares.Share1.RootPath, "Object 2")+" (12 MiB)")
}

func TestModifyWithoutActions(t *testing.T) {
	t.Parallel()

	a, shares := newTestAgent(t, &bytes.Buffer{})
	shares.WriteIgnoreFile(t, shares.Share1, "Object 1/\n")

	err := a.ModifyIgnoreEntries("share-1", nil)

	assert.ErrorIs(t, err, model.ErrMissingActions)
}
