package domain

import (
	"fmt"
	"strings"
)

// Mode selects how dictionary entries are filtered and laid out.
type Mode string

const (
	// ModePlain keeps every non-empty comma-separated sub-entry and emits
	// variable-length groups.
	ModePlain Mode = "plain"
	// ModePadded keeps single-token, letters-only entries and emits
	// fixed-width rows padded with absent markers.
	ModePadded Mode = "padded"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModePlain, ModePadded:
		return true
	}
	return false
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// SourceKind identifies where raw dictionary records come from.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindPostgres SourceKind = "postgres"
)

func (k SourceKind) String() string { return string(k) }

func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindFile, SourceKindPostgres:
		return true
	}
	return false
}

// Target is the language of the generated table literal.
type Target string

const (
	TargetRust Target = "rust"
	TargetGo   Target = "go"
	TargetJSON Target = "json"
)

func (t Target) String() string { return string(t) }

func (t Target) IsValid() bool {
	switch t {
	case TargetRust, TargetGo, TargetJSON:
		return true
	}
	return false
}

// ParseTarget parses a target name case-insensitively.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
	return t, nil
}
