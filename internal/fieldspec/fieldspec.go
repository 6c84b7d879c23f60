// Package fieldspec parses field specifications such as "600abcd:689a:LOK689a".
//
// Each colon-separated entry names a 3-character field tag followed by the
// subfield tag list to extract. Entries starting with "LOK" address local
// data fields: the next three characters are the target tag that must prefix
// the local field's $0 subfield.
package fieldspec

import (
	"fmt"
	"strings"

	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/marc"
)

// ErrInvalidLocalTag is returned for local entries whose target tag is not
// three digits.
var ErrInvalidLocalTag = fmt.Errorf("%w: invalid local data tag", diagnostic.ErrConfiguration)

const tagLen = 3

// Entry is one parsed field specification entry.
type Entry struct {
	// Tag is the record tag, or the 6-character local composite ("LOK689").
	Tag string
	// LocalTag is the target tag of a local entry, empty otherwise.
	LocalTag string
	// Subfields is the subfield tag list, see package pattern.
	Subfields string
}

// IsLocal reports whether the entry addresses local data fields.
func (e Entry) IsLocal() bool {
	return e.LocalTag != ""
}

// SelectTag returns the record tag whose occurrences are enumerated.
func (e Entry) SelectTag() string {
	if e.IsLocal() {
		return marc.LocalTag
	}

	return e.Tag
}

// String returns the entry in specification syntax.
func (e Entry) String() string {
	return e.Tag + e.Subfields
}

// Parse parses a field specification. Entries shorter than three characters
// are skipped.
func Parse(spec string) ([]Entry, error) {
	var entries []Entry

	for part := range strings.SplitSeq(spec, ":") {
		if len(part) < tagLen {
			continue
		}

		if !strings.HasPrefix(part, marc.LocalTag) {
			entries = append(entries, Entry{Tag: part[:tagLen], Subfields: part[tagLen:]})

			continue
		}

		if len(part) < 2*tagLen || !isTag(part[tagLen:2*tagLen]) {
			return nil, fmt.Errorf("field spec %q: entry %q: %w", spec, part, ErrInvalidLocalTag)
		}

		entries = append(entries, Entry{
			Tag:       part[:2*tagLen],
			LocalTag:  part[tagLen : 2*tagLen],
			Subfields: part[2*tagLen:],
		})
	}

	return entries, nil
}

// Selects reports whether f is an occurrence addressed by e. Local entries
// require the first $0 subfield to start with the target tag.
func (e Entry) Selects(f marc.Field) bool {
	if !e.IsLocal() {
		return f.Tag == e.Tag
	}

	return f.HasLocalTag(e.LocalTag)
}

func isTag(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
