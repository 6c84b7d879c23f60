// Package pattern compiles subfield tag lists such as "abctnpz9g" into
// matchers over subfield codes.
//
// A tag list is a sequence of tokens. A token is either a single letter or a
// digit followed by a letter. The letter after a digit names the
// discriminator value carried in the digit subfield's data ("g:Geschichte")
// and is not itself a subfield code, so only the first character of every
// token is matched.
package pattern

import (
	"strings"
)

// Matcher decides whether a subfield code takes part in an extraction.
type Matcher struct {
	codes   []rune
	anyCode bool
}

// Compile compiles tagChars into a Matcher. An empty tagChars matches every
// lowercase letter code.
func Compile(tagChars string) Matcher {
	if tagChars == "" {
		return Matcher{anyCode: true}
	}

	var codes []rune

	runes := []rune(tagChars)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// digit tokens swallow the discriminator letter that follows
		if isDigit(r) && i+1 < len(runes) && !isDigit(runes[i+1]) {
			i++
		}

		if !containsRune(codes, r) {
			codes = append(codes, r)
		}
	}

	return Matcher{codes: codes}
}

// Match reports whether code is accepted.
func (m Matcher) Match(code rune) bool {
	if m.anyCode {
		return code >= 'a' && code <= 'z'
	}

	return containsRune(m.codes, code)
}

// String renders the matcher as an alternation, e.g. "a|b|9".
func (m Matcher) String() string {
	if m.anyCode {
		return "[a-z]"
	}

	parts := make([]string, len(m.codes))
	for i, c := range m.codes {
		parts[i] = string(c)
	}

	return strings.Join(parts, "|")
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}

	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
