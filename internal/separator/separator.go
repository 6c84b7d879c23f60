package separator

import (
	"strings"
)

// Kind is the variant of a Separator.
type Kind int

const (
	// KindNone marks the absence of a separator (first fragment of a chain).
	KindNone Kind = iota
	// KindLiteral prefixes a fragment with literal text.
	KindLiteral
	// KindBracket wraps a fragment in an opening and a closing character.
	KindBracket
)

// Separator is the join metadata attached to a fragment. The zero value is
// the None variant.
type Separator struct {
	kind  Kind
	text  string
	open  rune
	close rune
}

// Literal returns a separator that prefixes a fragment with text.
func Literal(text string) Separator {
	return Separator{kind: KindLiteral, text: text}
}

// Bracket returns a separator that wraps a fragment in open and close.
func Bracket(open, close rune) Separator {
	return Separator{kind: KindBracket, open: open, close: close}
}

// Kind returns the variant.
func (s Separator) Kind() Kind { return s.kind }

// IsNone reports whether no separator is set.
func (s Separator) IsNone() bool { return s.kind == KindNone }

// IsLiteral reports whether s is a literal separator.
func (s Separator) IsLiteral() bool { return s.kind == KindLiteral }

// IsBracket reports whether s is a bracket directive.
func (s Separator) IsBracket() bool { return s.kind == KindBracket }

// Text returns the literal text, or "" for other variants.
func (s Separator) Text() string { return s.text }

// Pair returns the bracket characters, or zero runes for other variants.
func (s Separator) Pair() (open, close rune) { return s.open, s.close }

// Wrap surrounds value with the bracket pair. Non-bracket separators return
// value unchanged.
func (s Separator) Wrap(value string) string {
	if s.kind != KindBracket {
		return value
	}

	return string(s.open) + value + string(s.close)
}

// String returns the separator in specification syntax.
func (s Separator) String() string {
	switch s.kind {
	case KindLiteral:
		return escape(s.text)
	case KindBracket:
		return "[" + escape(string(s.open)) + escape(string(s.close)) + "]"
	default:
		return ""
	}
}

const controlChars = `:$[]\`

// escape backslash-escapes every control character in s.
func escape(s string) string {
	if !strings.ContainsAny(s, controlChars) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + 4)

	for _, r := range s {
		if strings.ContainsRune(controlChars, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}
