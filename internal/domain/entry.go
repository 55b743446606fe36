package domain

import (
	"strings"
	"unicode/utf8"
)

// FirstColumn returns the trimmed text before the first TAB of a dictionary
// record. A record without a TAB is used whole.
func FirstColumn(line string) string {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// SplitEntries splits a first-column value on commas and trims each part.
// Empty parts are dropped.
func SplitEntries(column string) []string {
	parts := strings.Split(column, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsSingleToken reports whether s is exactly one whitespace-delimited token.
func IsSingleToken(s string) bool {
	return len(strings.Fields(s)) == 1
}

// IsLatinLetters reports whether s is non-empty and consists only of
// unaccented ASCII letters (a-z, A-Z).
func IsLatinLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// EntryLength returns the length of an entry in characters (code points).
func EntryLength(s string) int {
	return utf8.RuneCountInString(s)
}
