package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator() *Translator {
	return NewTranslator("de", map[string]*Dictionary{
		"en": NewDictionary(map[string]string{
			"Theologie":              "Theology",
			"Kirche":                 "Church",
			"Staat":                  "State",
			"Weltkrieg":              "World War",
			"Theologie / Geschichte": "Theology / History",
			"Christentum":            "Christianity",
			"Christenheit":           "Christianity",
		}),
		"it": NewDictionary(map[string]string{
			"Geschichte": "Storia",
		}),
	})
}

func TestTranslate(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name string
		term string
		lang string
		want string
	}{
		{"plain lookup", "Theologie", "en", "Theology"},
		{"miss returns input", "Ekklesiologie", "en", "Ekklesiologie"},
		{"escaped compound", `Kirche \/ Staat`, "en", "Church / State"},
		{"plain compound", "Kirche/Staat", "en", "Church / State"},
		{"compound with miss", `Kirche \/ Ethik`, "en", "Church / Ethik"},
		{"compound duplicates collapse", `Christentum \/ Christenheit`, "en", "Christianity"},
		{"numeric tail", "Weltkrieg 1914-1918", "en", "World War 1914-1918"},
		{"angle bracket tail", "Kirche <2>", "en", "Church <2>"},
		{"history english", "Geschichte 1500-1600", "en", "History 1500-1600"},
		{"history french", "Geschichte 1500", "fr", "Histoire 1500"},
		{"history via dictionary", "Geschichte 20", "it", "Storia 20"},
		{"numeric tail miss", "Ethik 2000", "en", "Ethik 2000"},
		{"pure number", "1914", "en", "1914"},
		{"unknown language", "Kirche", "ru", "Kirche"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.term, tt.lang))
		})
	}
}

func TestTranslateSourceIdentity(t *testing.T) {
	tr := newTestTranslator()

	for _, term := range []string{"Theologie", `Kirche \/ Staat`, "Geschichte 1914", "", "1914"} {
		assert.Equal(t, term, tr.Translate(term, "de"))
	}
}

func TestTranslatePhrase(t *testing.T) {
	tr := newTestTranslator()

	got, ok := tr.TranslatePhrase([]string{"Theologie", "Geschichte"}, "en")
	assert.True(t, ok)
	assert.Equal(t, "Theology / History", got)

	_, ok = tr.TranslatePhrase([]string{"Kirche", "Staat"}, "en")
	assert.False(t, ok)

	_, ok = tr.TranslatePhrase([]string{"Theologie", "Geschichte"}, "de")
	assert.False(t, ok)
}

func TestSupports(t *testing.T) {
	tr := newTestTranslator()

	assert.True(t, tr.Supports("de"))
	assert.True(t, tr.Supports("en"))
	assert.False(t, tr.Supports("ru"))
	assert.Equal(t, []string{"en", "it"}, tr.Languages())
	assert.Equal(t, "de", tr.Source())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"de", "de"},
		{"hant", "zh-Hant"},
		{"hans", "zh-Hans"},
		{"el", "el"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tag, err := ParseLanguage(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag.String())
		})
	}

	_, err := ParseLanguage("not a language!")
	assert.Error(t, err)
}
