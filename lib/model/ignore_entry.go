package model

import (
	"strings"
)

const (
	KeepPrefix = "!"
	DirSuffix  = "/"
)

type IgnoreKind int

const (
	UnknownKind IgnoreKind = iota
	IgnoreKindIgnore
	IgnoreKindKeep
)

func (k IgnoreKind) String() string {
	switch k {
	case IgnoreKindIgnore:
		return "ignore"
	case IgnoreKindKeep:
		return "keep"
	default:
		return "unknown"
	}
}

func ParseIgnoreKind(s string) (IgnoreKind, bool) {
	switch s {
	case "ignore":
		return IgnoreKindIgnore, true
	case "keep":
		return IgnoreKindKeep, true
	default:
		return UnknownKind, false
	}
}

// IgnoreEntry is one line of a .stignore file. Raw is the source of truth, Name
// and Kind are derived from it.
type IgnoreEntry struct {
	Raw  string
	Name string
	Kind IgnoreKind
}

func NewIgnoreEntry(raw string) IgnoreEntry {
	kind := IgnoreKindIgnore
	name := raw

	if strings.HasPrefix(name, KeepPrefix) {
		kind = IgnoreKindKeep
		name = name[len(KeepPrefix):]
	}

	name = strings.TrimSuffix(name, DirSuffix)

	return IgnoreEntry{
		Raw:  raw,
		Name: name,
		Kind: kind,
	}
}

// RawFor builds the line that represents name with the given kind.
func RawFor(name string, kind IgnoreKind) string {
	raw := name
	if !strings.HasSuffix(raw, DirSuffix) {
		raw += DirSuffix
	}

	if kind == IgnoreKindKeep {
		raw = KeepPrefix + raw
	}

	return raw
}
