package stignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/stignore-agent/lib/model"
)

func writeIgnoreFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func raws(entries []model.IgnoreEntry) []string {
	return lo.Map(entries, func(e model.IgnoreEntry, _ int) string { return e.Raw })
}

func TestLoadSingleEntry(t *testing.T) {
	t.Parallel()

	entries, err := Load(writeIgnoreFile(t, "Object 1/"))

	require.NoError(t, err)
	assert.Equal(t, []model.IgnoreEntry{
		{Raw: "Object 1/", Name: "Object 1", Kind: model.IgnoreKindIgnore},
	}, entries)
}

func TestLoadParsesKindsAndSorts(t *testing.T) {
	t.Parallel()

	entries, err := Load(writeIgnoreFile(t, "Object 3/\n!Object 1/\r\nObject 2\n\n"))

	require.NoError(t, err)
	assert.Equal(t, []model.IgnoreEntry{
		{Raw: "!Object 1/", Name: "Object 1", Kind: model.IgnoreKindKeep},
		{Raw: "Object 2", Name: "Object 2", Kind: model.IgnoreKindIgnore},
		{Raw: "Object 3/", Name: "Object 3", Kind: model.IgnoreKindIgnore},
	}, entries)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	entries, err := Load(writeIgnoreFile(t, ""))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), FileName))

	assert.ErrorIs(t, err, model.ErrIgnoreFileNotFound)
}

func TestLoadKeepsDuplicatedNames(t *testing.T) {
	t.Parallel()

	entries, err := Load(writeIgnoreFile(t, "a/\n!a/\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"!a/", "a/"}, raws(entries))
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, "a", entries[1].Name)
}

func TestApplyEditsAddToEmpty(t *testing.T) {
	t.Parallel()

	result, err := ApplyEdits(nil, []model.ActionRequest{
		{Operation: "add", Kind: "ignore", Name: "Object 1"},
		{Operation: "add", Kind: "keep", Name: "Object 2"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"!Object 2/", "Object 1/"}, raws(result))
	assert.Equal(t, model.IgnoreKindKeep, result[0].Kind)
	assert.Equal(t, "Object 2", result[0].Name)
}

func TestApplyEditsRemove(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader("!Object 1/\nObject 2/\nObject 3/\n"))
	require.NoError(t, err)

	result, err := ApplyEdits(entries, []model.ActionRequest{
		{Operation: "remove", Kind: "ignore", Name: "Object 2"},
		{Operation: "remove", Kind: "keep", Name: "Object 1"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Object 3/"}, raws(result))
	assert.Len(t, entries, 3)
}

func TestApplyEditsIsIdempotent(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader("Object 1/\n"))
	require.NoError(t, err)

	result, err := ApplyEdits(entries, []model.ActionRequest{
		{Operation: "add", Kind: "ignore", Name: "Object 1/"},
		{Operation: "add", Kind: "ignore", Name: "Object 1"},
		{Operation: "remove", Kind: "keep", Name: "Object 9"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Object 1/"}, raws(result))
}

func TestApplyEditsRemoveMatchesKind(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader("Object 1/\n"))
	require.NoError(t, err)

	result, err := ApplyEdits(entries, []model.ActionRequest{
		{Operation: "remove", Kind: "keep", Name: "Object 1"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Object 1/"}, raws(result))
}

func TestApplyEditsSwitchKind(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader("Object 1/\n"))
	require.NoError(t, err)

	result, err := ApplyEdits(entries, []model.ActionRequest{
		{Operation: "add", Kind: "keep", Name: "Object 1"},
		{Operation: "remove", Kind: "ignore", Name: "Object 1"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"!Object 1/"}, raws(result))
}

func TestApplyEditsInvalidActionRejectsBatch(t *testing.T) {
	t.Parallel()

	entries, err := Parse(strings.NewReader("Object 1/\n"))
	require.NoError(t, err)

	result, err := ApplyEdits(entries, []model.ActionRequest{
		{Operation: "remove", Kind: "ignore", Name: "Object 1"},
		{Operation: "rename", Kind: "ignore", Name: "Object 2"},
	})

	assert.EqualError(t, err, "Payload action is invalid")
	assert.Nil(t, result)
	assert.Equal(t, []string{"Object 1/"}, raws(entries))
}

func TestApplyEditsInvalidKind(t *testing.T) {
	t.Parallel()

	_, err := ApplyEdits(nil, []model.ActionRequest{
		{Operation: "add", Kind: "delete", Name: "Object 1"},
	})

	var invalid *model.InvalidActionPayloadError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ignore_type", invalid.Field)
	assert.EqualError(t, err, "Payload ignore_type is invalid")
}

func TestFormatNormalizesAndSorts(t *testing.T) {
	t.Parallel()

	text := Format([]model.IgnoreEntry{
		model.NewIgnoreEntry("b"),
		model.NewIgnoreEntry("!a/"),
	})

	assert.Equal(t, "!a/\nb/\n", text)
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Format(nil))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := writeIgnoreFile(t, "Object 3/\n!Object 1/\nObject 2/\n")

	entries, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "!Object 1/\nObject 2/\nObject 3/\n", string(data))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, entries, reloaded)
}
