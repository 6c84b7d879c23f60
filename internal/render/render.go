package render

import (
	"strings"

	"topic-indexer/internal/chain"
	"topic-indexer/internal/normalize"
)

// ChainBreak splits one rendered chain into independent values.
const ChainBreak = "|||"

const escapedSlash = `\/`

// Translator is the part of translate.Translator used for rendering.
type Translator interface {
	Translate(term, lang string) string
	TranslatePhrase(parts []string, lang string) (string, bool)
}

// Renderer renders chains. It holds no per-call state.
type Renderer struct {
	tr Translator
}

// New returns a renderer using tr.
func New(tr Translator) *Renderer {
	return &Renderer{tr: tr}
}

// Render renders chains into lang and returns the distinct values in
// first-seen order.
func (r *Renderer) Render(chains []chain.Chain, lang string) []string {
	var set OrderedSet

	for _, c := range chains {
		if len(c) == 0 {
			continue
		}

		set.AddAll(Split(r.RenderChain(c, lang))...)
	}

	return set.Values()
}

// RenderChain renders a single chain without post-processing.
func (r *Renderer) RenderChain(c chain.Chain, lang string) string {
	if len(c) == 1 {
		return r.fragment(c[0].Text, lang)
	}

	parts := c.Texts()
	for i, text := range parts {
		parts[i] = EscapeSlash(text)
	}

	if phrase, ok := r.tr.TranslatePhrase(parts, lang); ok {
		return phrase
	}

	var b strings.Builder

	for _, t := range c {
		switch {
		case t.Separator.IsLiteral():
			b.WriteString(t.Separator.Text())
		case b.Len() > 0:
			b.WriteByte(' ')
		}

		b.WriteString(t.Separator.Wrap(r.fragment(t.Text, lang)))
	}

	return b.String()
}

func (r *Renderer) fragment(text, lang string) string {
	return r.tr.Translate(normalize.Clean(EscapeSlash(text)), lang)
}

// EscapeSlash protects slashes inside a fragment from being read as compound
// separators.
func EscapeSlash(s string) string {
	return strings.ReplaceAll(s, "/", escapedSlash)
}

// Split breaks a rendered value at ChainBreak, restores escaped slashes and
// drops empty parts.
func Split(value string) []string {
	var result []string

	for part := range strings.SplitSeq(value, ChainBreak) {
		part = strings.TrimSpace(strings.ReplaceAll(part, escapedSlash, "/"))
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}

// OrderedSet is a string set that remembers insertion order. The zero value
// is empty and ready to use.
type OrderedSet struct {
	seen   map[string]struct{}
	values []string
}

// Add inserts v unless present and reports whether it was added.
func (s *OrderedSet) Add(v string) bool {
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}

	if _, ok := s.seen[v]; ok {
		return false
	}

	s.seen[v] = struct{}{}
	s.values = append(s.values, v)

	return true
}

// AddAll inserts every value in order.
func (s *OrderedSet) AddAll(values ...string) {
	for _, v := range values {
		s.Add(v)
	}
}

// Len returns the number of values.
func (s *OrderedSet) Len() int {
	return len(s.values)
}

// Values returns the values in insertion order.
func (s *OrderedSet) Values() []string {
	return append([]string(nil), s.values...)
}
