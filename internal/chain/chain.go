package chain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"topic-indexer/internal/fieldspec"
	"topic-indexer/internal/marc"
	"topic-indexer/internal/pattern"
	"topic-indexer/internal/separator"
)

// Topic is one extracted fragment. Separator is None for the first fragment
// of a chain.
type Topic struct {
	Text      string
	Separator separator.Separator
}

// Chain is the ordered list of fragments extracted from one field occurrence.
type Chain []Topic

// Texts returns the fragment texts in order.
func (c Chain) Texts() []string {
	texts := make([]string, len(c))
	for i, t := range c {
		texts[i] = t.Text
	}

	return texts
}

// String joins the fragments with their literal separators. It ignores
// brackets and is meant for debugging output.
func (c Chain) String() string {
	var b strings.Builder

	for _, t := range c {
		if t.Separator.IsBracket() {
			b.WriteString(" " + t.Separator.Wrap(t.Text))

			continue
		}

		b.WriteString(t.Separator.Text())
		b.WriteString(t.Text)
	}

	return b.String()
}

// Pair is a subfield code with its raw value.
type Pair struct {
	Code  rune
	Value string
}

// Pairs returns the subfields of f as pairs in field order.
func Pairs(f marc.Field) []Pair {
	pairs := make([]Pair, len(f.Subfields))
	for i, sf := range f.Subfields {
		pairs[i] = Pair{Code: sf.Code, Value: sf.Data}
	}

	return pairs
}

var discriminatorPrefix = regexp.MustCompile(`^[a-z]:`)

// Reduce builds the chain of one field in complex mode. Pairs whose code is
// not matched by m are skipped, as are values shorter than two characters
// other than a single digit.
func Reduce(pairs []Pair, spec *separator.Spec, m pattern.Matcher) Chain {
	var c Chain

	for _, p := range pairs {
		if !m.Match(p.Code) {
			continue
		}

		value := strings.TrimSpace(p.Value)
		if !keepValue(value) {
			continue
		}

		selector := string(p.Code)

		if isDigit(p.Code) {
			selector += Discriminator(value)
			value = discriminatorPrefix.ReplaceAllString(value, "")

			if value == "" {
				continue
			}
		}

		var sep separator.Separator
		if len(c) > 0 {
			sep = spec.Lookup(selector)
		}

		c = append(c, Topic{Text: value, Separator: sep})
	}

	return c
}

// Singles builds one single-fragment chain per non-digit subfield. It is used
// when the separator spec has an empty default.
func Singles(pairs []Pair) []Chain {
	var chains []Chain

	for _, p := range pairs {
		if isDigit(p.Code) {
			continue
		}

		value := strings.TrimSpace(p.Value)
		if !keepValue(value) {
			continue
		}

		chains = append(chains, Chain{{Text: value}})
	}

	return chains
}

// Discriminator returns the part of a digit subfield value before the first
// ":", or the whole value if it has none.
func Discriminator(value string) string {
	key, _, _ := strings.Cut(value, ":")
	return key
}

// Extract collects the chains of all fields selected by entry and admitted by
// filter. Fields are visited in the given order; empty chains are dropped.
func Extract(fields []marc.Field, spec *separator.Spec, entry fieldspec.Entry, filter Filter) []Chain {
	var (
		chains []Chain
		m      = pattern.Compile(entry.Subfields)
		simple = spec.Simple()
	)

	for _, f := range fields {
		if !entry.Selects(f) || !filter.Admits(Classify(f)) {
			continue
		}

		pairs := Pairs(f)

		if simple {
			chains = append(chains, Singles(pairs)...)

			continue
		}

		if c := Reduce(pairs, spec, m); len(c) > 0 {
			chains = append(chains, c)
		}
	}

	return chains
}

// ExtractRecord runs Extract for every entry in order and concatenates the
// results.
func ExtractRecord(rec *marc.Record, spec *separator.Spec, entries []fieldspec.Entry, filter Filter) []Chain {
	var chains []Chain

	for _, entry := range entries {
		chains = append(chains, Extract(rec.FieldsByTag(entry.SelectTag()), spec, entry, filter)...)
	}

	return chains
}

// keepValue drops single characters, which stem from uppercase subfield
// artifacts in standardized keywords. A lone digit is kept.
func keepValue(value string) bool {
	n := utf8.RuneCountInString(value)

	return n > 1 || (n == 1 && isDigit(rune(value[0])))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
