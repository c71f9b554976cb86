// Package tokens implements the canonical comma-separated list form used to
// persist multi-value free-text fields (skills, languages, passions, projects,
// required skills) and the search-term tokenizer.
package tokens

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// Separator joins canonical tokens for storage.
const Separator = ", "

// Split parses a stored or user-supplied string into its canonical token list:
// comma-separated pieces, trimmed, empties dropped, case-insensitive
// duplicates dropped keeping the first spelling.
func Split(s string) []string {
	return Merge(s)
}

// Merge splits every raw value on commas and merges the pieces into one
// canonical token list. It accepts both a single joined string and several
// raw values for the same field.
func Merge(raw ...string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, value := range raw {
		for _, piece := range strings.Split(value, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			key := strings.ToLower(piece)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, piece)
		}
	}
	return out
}

// Join returns the storage form of a token list.
func Join(list []string) string {
	return strings.Join(Merge(list...), Separator)
}

// Canonical normalizes a stored string in place of Join(Split(s)).
func Canonical(s string) string {
	return Join(Split(s))
}

// SearchTerms tokenizes a free-text query on commas, semicolons and runs of
// whitespace. Empty terms are dropped; order and duplicates are kept.
func SearchTerms(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// List is a token list decoded from JSON. It accepts either a single string
// ("Python, Django") or an array of strings (["Python", "Django, Go"]) and
// always holds the canonical tokens.
type List []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *List) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = Merge(single)
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("expected a string or an array of strings")
	}
	*l = Merge(many...)
	return nil
}

// String returns the storage form.
func (l List) String() string {
	return Join(l)
}
