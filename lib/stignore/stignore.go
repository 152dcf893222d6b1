// Package stignore reads and writes .stignore files. Each line names a child
// folder: "name/" marks it to be ignored (and so removed on flush) and "!name/"
// marks it to be kept.
package stignore

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/utils"
)

const FileName = ".stignore"

func Load(path string) ([]model.IgnoreEntry, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, model.ErrIgnoreFileNotFound
	} else if err != nil {
		return nil, errors.Wrapf(err, "error opening %v", path)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	return entries, nil
}

// Parse reads entries from r, skipping empty lines. The result is sorted by raw
// line.
func Parse(r io.Reader) ([]model.IgnoreEntry, error) {
	entries := make([]model.IgnoreEntry, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		entries = append(entries, model.NewIgnoreEntry(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sortEntries(entries)

	return entries, nil
}

// ApplyEdits validates every edit before changing anything. Removals are
// applied before additions, both matched by raw line, and neither fails when
// there is nothing to do. entries is not modified.
func ApplyEdits(entries []model.IgnoreEntry, edits []model.ActionRequest) ([]model.IgnoreEntry, error) {
	var add []string
	remove := set.New[string](len(edits))

	for _, edit := range edits {
		op, ok := model.ParseActionOperation(edit.Operation)
		if !ok {
			return nil, &model.InvalidActionPayloadError{Field: "action"}
		}

		kind, ok := model.ParseIgnoreKind(edit.Kind)
		if !ok {
			return nil, &model.InvalidActionPayloadError{Field: "ignore_type"}
		}

		raw := model.RawFor(edit.Name, kind)

		switch op {
		case model.AddOperation:
			add = append(add, raw)
		case model.RemoveOperation:
			remove.Insert(raw)
		}
	}

	result := make([]model.IgnoreEntry, 0, len(entries)+len(add))
	existing := set.New[string](len(entries) + len(add))

	for _, e := range entries {
		if remove.Contains(e.Raw) {
			continue
		}

		result = append(result, e)
		existing.Insert(e.Raw)
	}

	for _, raw := range add {
		if existing.Contains(raw) {
			continue
		}

		result = append(result, model.NewIgnoreEntry(raw))
		existing.Insert(raw)
	}

	sortEntries(result)

	return result, nil
}

// Format renders entries in the on-disk format, sorted and with every raw line
// ending in a slash.
func Format(entries []model.IgnoreEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		raw := e.Raw
		if !strings.HasSuffix(raw, model.DirSuffix) {
			raw += model.DirSuffix
		}

		lines = append(lines, raw)
	}

	sort.Strings(lines)

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	return sb.String()
}

func Save(path string, entries []model.IgnoreEntry) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	err := utils.AtomicWriteFile(path, []byte(Format(entries)), perm)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", path)
	}

	return nil
}

func sortEntries(entries []model.IgnoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Raw < entries[j].Raw
	})
}
