package normalize

import (
	"regexp"
	"strings"
)

var (
	trailingPunct    = regexp.MustCompile(` *[,/;:]$`)
	periodAfterWord  = regexp.MustCompile(`[\p{L}\p{N}_]\p{M}?[\p{L}\p{N}_]\p{M}?\.$`)
	periodAfterPunct = regexp.MustCompile(`[[:punct:]]\.$`)
)

const escapedSlashSuffix = `\/`

// Clean trims a fragment, strips trailing punctuation (",", "/", ";", ":"),
// removes a trailing period that follows two word characters or another
// punctuation mark, and drops enclosing square brackets. The rules are
// applied until the value no longer changes.
//
// An escaped slash ("\/") at the end of a fragment is content, not a
// trailing separator, and is kept.
func Clean(s string) string {
	current := strings.TrimSpace(s)

	for {
		prev := current

		current = strings.TrimSpace(current)
		if !strings.HasSuffix(current, escapedSlashSuffix) {
			current = trailingPunct.ReplaceAllString(current, "")
		}

		if strings.HasSuffix(current, ".") &&
			(periodAfterWord.MatchString(current) || periodAfterPunct.MatchString(current)) {
			current = current[:len(current)-1]
		}

		current = RemoveOuterBrackets(current)

		if current == "" || current == prev {
			return current
		}
	}
}

// RemoveOuterBrackets drops a pair of square brackets enclosing the whole
// value, or a lone leading "[" / trailing "]" without counterpart.
func RemoveOuterBrackets(s string) string {
	result := strings.TrimSpace(s)
	if result == "" {
		return result
	}

	openFirst := result[0] == '['
	closeLast := result[len(result)-1] == ']'

	switch {
	case openFirst && closeLast && len(result) >= 2 &&
		!strings.Contains(result[1:], "[") && !strings.Contains(result[:len(result)-1], "]"):
		result = result[1 : len(result)-1]
	case openFirst && !strings.Contains(result, "]"):
		result = result[1:]
	case closeLast && !strings.Contains(result, "["):
		result = result[:len(result)-1]
	}

	return strings.TrimSpace(result)
}
