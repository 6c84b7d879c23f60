package separator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"topic-indexer/internal/diagnostic"
)

// DefaultSelector is the selector used when no subfield-specific separator
// is defined.
const DefaultSelector = "default"

var (
	// ErrMalformedBracket is returned for bracket directives that do not hold
	// exactly two characters, and for stray unescaped brackets.
	ErrMalformedBracket = fmt.Errorf("%w: malformed bracket directive", diagnostic.ErrConfiguration)
	// ErrInvalidSelector is returned for "$" segments without a valid
	// subfield selector.
	ErrInvalidSelector = fmt.Errorf("%w: invalid subfield selector", diagnostic.ErrConfiguration)
)

// Spec maps subfield selectors to separators. It always holds a
// DefaultSelector entry and is immutable after Parse.
type Spec struct {
	entries map[string]Separator
}

// Parse parses a separator specification.
func Parse(spec string) (*Spec, error) {
	s := &Spec{entries: map[string]Separator{}}

	for i, segment := range splitSegments(tokenize(spec)) {
		selector := DefaultSelector
		body := segment

		if len(segment) > 0 && segment[0].is('$') {
			var err error

			selector, body, err = parseSelector(segment[1:])
			if err != nil {
				return nil, fmt.Errorf("separator spec %q: segment %d: %w", spec, i+1, err)
			}
		}

		sep, err := parseSeparator(body)
		if err != nil {
			return nil, fmt.Errorf("separator spec %q: segment %d: %w", spec, i+1, err)
		}

		s.entries[selector] = sep
	}

	if _, ok := s.entries[DefaultSelector]; !ok {
		s.entries[DefaultSelector] = Literal("")
	}

	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level specifications.
func MustParse(spec string) *Spec {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}

	return s
}

// Get returns the separator registered for selector.
func (s *Spec) Get(selector string) (Separator, bool) {
	sep, ok := s.entries[selector]
	return sep, ok
}

// Lookup returns the separator for selector, falling back to the default.
func (s *Spec) Lookup(selector string) Separator {
	if sep, ok := s.entries[selector]; ok {
		return sep
	}

	return s.entries[DefaultSelector]
}

// Default returns the default separator.
func (s *Spec) Default() Separator {
	return s.entries[DefaultSelector]
}

// Simple reports whether the default separator is empty literal text. In
// that case every subfield is emitted on its own.
func (s *Spec) Simple() bool {
	def := s.Default()
	return def.IsLiteral() && def.Text() == ""
}

// Selectors returns all selectors except the default in sorted order.
func (s *Spec) Selectors() []string {
	keys := make([]string, 0, len(s.entries))

	for k := range s.entries {
		if k != DefaultSelector {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)

	return keys
}

// Len returns the number of entries including the default.
func (s *Spec) Len() int {
	return len(s.entries)
}

// Equal reports whether both specs hold the same entries.
func (s *Spec) Equal(other *Spec) bool {
	if s == nil || other == nil {
		return s == other
	}

	return maps.Equal(s.entries, other.entries)
}

// Canonical serializes the spec deterministically: selector segments in
// sorted order followed by the default segment. Parsing the result yields an
// equal Spec.
func (s *Spec) Canonical() string {
	selectors := s.Selectors()
	parts := make([]string, 0, len(selectors)+1)

	for _, sel := range selectors {
		parts = append(parts, "$"+sel+s.entries[sel].String())
	}

	parts = append(parts, s.Default().String())

	return strings.Join(parts, ":")
}

// String returns the canonical form.
func (s *Spec) String() string {
	return s.Canonical()
}

// token is one character of a specification together with its escape state.
type token struct {
	r       rune
	escaped bool
}

func (t token) is(r rune) bool {
	return !t.escaped && t.r == r
}

// tokenize resolves backslash escapes. A backslash before a character that
// is not a control character is kept verbatim.
func tokenize(spec string) []token {
	runes := []rune(spec)
	tokens := make([]token, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && strings.ContainsRune(controlChars, runes[i+1]) {
			tokens = append(tokens, token{r: runes[i+1], escaped: true})
			i++

			continue
		}

		tokens = append(tokens, token{r: r})
	}

	return tokens
}

// splitSegments splits tokens at unescaped colons.
func splitSegments(tokens []token) [][]token {
	var (
		segments [][]token
		current  []token
	)

	for _, t := range tokens {
		if t.is(':') {
			segments = append(segments, current)
			current = nil

			continue
		}

		current = append(current, t)
	}

	return append(segments, current)
}

// parseSelector reads "9g" or "p" from the start of tokens.
func parseSelector(tokens []token) (string, []token, error) {
	if len(tokens) >= 2 && !tokens[0].escaped && isDigit(tokens[0].r) &&
		!tokens[1].escaped && isLower(tokens[1].r) {
		return string([]rune{tokens[0].r, tokens[1].r}), tokens[2:], nil
	}

	if len(tokens) >= 1 && !tokens[0].escaped && isLetter(tokens[0].r) {
		return string(tokens[0].r), tokens[1:], nil
	}

	return "", nil, ErrInvalidSelector
}

// parseSeparator turns the body of a segment into a Separator.
func parseSeparator(tokens []token) (Separator, error) {
	if len(tokens) > 0 && tokens[0].is('[') {
		if len(tokens) != 4 || !tokens[3].is(']') {
			return Separator{}, fmt.Errorf("%w: %q", ErrMalformedBracket, untokenize(tokens))
		}

		return Bracket(tokens[1].r, tokens[2].r), nil
	}

	var b strings.Builder

	for _, t := range tokens {
		if t.is('[') || t.is(']') {
			return Separator{}, fmt.Errorf("%w: stray %q in %q", ErrMalformedBracket, t.r, untokenize(tokens))
		}

		b.WriteRune(t.r)
	}

	return Literal(b.String()), nil
}

func untokenize(tokens []token) string {
	var b strings.Builder

	for _, t := range tokens {
		if t.escaped {
			b.WriteByte('\\')
		}

		b.WriteRune(t.r)
	}

	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetter(r rune) bool {
	return isLower(r) || (r >= 'A' && r <= 'Z')
}
