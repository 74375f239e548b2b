// Package normalize holds the per-field cleanup transforms applied to raw
// entry strings. Every transform is total: malformed or empty input produces
// an empty string, never an error.
package normalize

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Clean collapses line breaks and runs of whitespace into single spaces and
// strips leading/trailing whitespace. Punctuation, casing, and other Unicode
// content pass through untouched. Idempotent.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractYear returns the first run of exactly four consecutive digits found
// in the date string, leftmost match winning, or "" when none exists.
func ExtractYear(date string) string {
	for _, run := range digitRun.FindAllString(date, -1) {
		if len(run) == 4 {
			return run
		}
	}
	return ""
}

// FormatAuthors reduces an ordered author list to its display string:
// one surname, "A and B" for two, "A et al" for three or more (first author
// in source order wins). Blank names are dropped.
func FormatAuthors(names []string) string {
	surnames := make([]string, 0, len(names))
	for _, name := range names {
		if s := lastName(name); s != "" {
			surnames = append(surnames, s)
		}
	}

	switch len(surnames) {
	case 0:
		return ""
	case 1:
		return surnames[0]
	case 2:
		return surnames[0] + " and " + surnames[1]
	default:
		return surnames[0] + " et al"
	}
}

// lastName takes the final whitespace-delimited token of a full name.
// Multi-word surnames and name particles are not special-cased.
func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
