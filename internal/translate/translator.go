package translate

import (
	"regexp"
	"slices"
	"strings"
)

// PhraseSeparator joins chain fragments for whole-phrase lookups and
// translated compound parts.
const PhraseSeparator = " / "

// numericTail splits "Geschichte 1914-1918" or "Kirche <12>" into a textual
// head and a numeric tail.
var numericTail = regexp.MustCompile(`^(.*?[^\d\s<>])(\s*<?\d+(?:-\d+)?>?)$`)

// fixed translations of heads followed by a numeric tail
var headTranslations = map[string]map[string]string{
	"Geschichte": {"en": "History", "fr": "Histoire"},
}

// Translator translates terms from the source language into the languages
// it holds dictionaries for.
type Translator struct {
	source string
	dicts  map[string]*Dictionary
}

// NewTranslator returns a translator. Terms in the source language are never
// looked up.
func NewTranslator(source string, dicts map[string]*Dictionary) *Translator {
	t := &Translator{source: source, dicts: make(map[string]*Dictionary, len(dicts))}
	for lang, d := range dicts {
		t.dicts[lang] = d
	}

	return t
}

// Source returns the source language.
func (t *Translator) Source() string {
	return t.source
}

// Supports reports whether lang is the source language or has a dictionary.
func (t *Translator) Supports(lang string) bool {
	if lang == t.source {
		return true
	}

	_, ok := t.dicts[lang]

	return ok
}

// Languages returns the target languages in sorted order.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.dicts))
	for lang := range t.dicts {
		langs = append(langs, lang)
	}

	slices.Sort(langs)

	return langs
}

// Lookup performs a plain dictionary lookup.
func (t *Translator) Lookup(term, lang string) (string, bool) {
	if lang == t.source {
		return "", false
	}

	return t.dicts[lang].Lookup(term)
}

// Translate translates term into lang. Slash compounds are translated part
// by part; a trailing number or number range is kept verbatim. Terms without
// a translation are returned unchanged.
func (t *Translator) Translate(term, lang string) string {
	if lang == t.source {
		return term
	}

	dict := t.dicts[lang]

	if strings.Contains(term, "/") {
		return translateCompound(term, dict)
	}

	if m := numericTail.FindStringSubmatch(term); m != nil {
		head, tail := m[1], m[2]

		if fixed, ok := headTranslations[head][lang]; ok {
			return fixed + tail
		}

		if tr, ok := dict.Lookup(head); ok {
			return tr + tail
		}

		return term
	}

	if tr, ok := dict.Lookup(term); ok {
		return tr
	}

	return term
}

// TranslatePhrase looks up the fragments joined by PhraseSeparator as one
// phrase. It reports false for the source language and for phrases without
// an entry.
func (t *Translator) TranslatePhrase(parts []string, lang string) (string, bool) {
	return t.Lookup(strings.Join(parts, PhraseSeparator), lang)
}

// translateCompound splits on escaped or plain slashes, translates each part
// and joins the distinct results.
func translateCompound(term string, dict *Dictionary) string {
	parts := strings.Split(strings.ReplaceAll(term, `\/`, "/"), "/")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if tr, ok := dict.Lookup(part); ok {
			part = tr
		}

		if !slices.Contains(result, part) {
			result = append(result, part)
		}
	}

	return strings.Join(result, PhraseSeparator)
}
