package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"topic-indexer/internal/chain"
	"topic-indexer/internal/separator"
	"topic-indexer/internal/translate"
)

func newRenderer() *Renderer {
	tr := translate.NewTranslator("de", map[string]*translate.Dictionary{
		"en": translate.NewDictionary(map[string]string{
			"Theologie":               "Theology",
			"Geschichte":              "History",
			"Kirche":                  "Church",
			"Staat":                   "State",
			"Theologie / Geschichte":  "Theology / History",
			"Bibel / Neues Testament": "Bible / New Testament",
		}),
	})

	return New(tr)
}

func TestRender(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name   string
		chains []chain.Chain
		lang   string
		want   []string
	}{
		{
			name:   "single fragment",
			chains: []chain.Chain{{{Text: "Imperialismus"}}},
			lang:   "de",
			want:   []string{"Imperialismus"},
		},
		{
			name: "bracket directive",
			chains: []chain.Chain{{
				{Text: "1914"},
				{Text: "1918", Separator: separator.Bracket('(', ')')},
			}},
			lang: "de",
			want: []string{"1914 (1918)"},
		},
		{
			name: "whole phrase translation",
			chains: []chain.Chain{{
				{Text: "Theologie"},
				{Text: "Geschichte", Separator: separator.Literal(": ")},
			}},
			lang: "en",
			want: []string{"Theology / History"},
		},
		{
			name: "whole phrase wins over brackets",
			chains: []chain.Chain{{
				{Text: "Bibel"},
				{Text: "Neues Testament", Separator: separator.Bracket('<', '>')},
			}},
			lang: "en",
			want: []string{"Bible / New Testament"},
		},
		{
			name: "per fragment fallback",
			chains: []chain.Chain{{
				{Text: "Kirche"},
				{Text: "Staat", Separator: separator.Literal(" / ")},
				{Text: "Geschichte", Separator: separator.Literal(". ")},
			}},
			lang: "en",
			want: []string{"Church / State. History"},
		},
		{
			name: "empty literal separator joins without space",
			chains: []chain.Chain{{
				{Text: "Kirche"},
				{Text: "Staat", Separator: separator.Literal("")},
			}},
			lang: "de",
			want: []string{"KircheStaat"},
		},
		{
			name: "fragments are cleaned",
			chains: []chain.Chain{
				{{Text: "[Geschichte.] ,"}},
				{{Text: "Kirche"}, {Text: "Staat.", Separator: separator.Literal(", ")}},
			},
			lang: "en",
			want: []string{"History", "Church, State"},
		},
		{
			name: "chain break marker",
			chains: []chain.Chain{{
				{Text: "Kirche"},
				{Text: "Staat", Separator: separator.Literal("|||")},
				{Text: "Kirche", Separator: separator.Literal("|||")},
			}},
			lang: "de",
			want: []string{"Kirche", "Staat"},
		},
		{
			name: "slashes in data",
			chains: []chain.Chain{
				{{Text: "Kirche/Staat"}},
				{{Text: "Ethik/Moral"}},
			},
			lang: "de",
			want: []string{"Kirche/Staat", "Ethik/Moral"},
		},
		{
			name:   "slash compound translated",
			chains: []chain.Chain{{{Text: "Kirche / Staat"}}},
			lang:   "en",
			want:   []string{"Church / State"},
		},
		{
			name: "duplicates collapse",
			chains: []chain.Chain{
				{{Text: "Kirche"}},
				{{Text: "Kirche "}},
				{},
			},
			lang: "de",
			want: []string{"Kirche"},
		},
		{
			name:   "no chains",
			chains: nil,
			lang:   "en",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.chains, tt.lang))
		})
	}
}

func TestRenderDoesNotMutateChains(t *testing.T) {
	r := newRenderer()
	c := chain.Chain{{Text: "Kirche/Staat."}, {Text: "Ethik", Separator: separator.Literal(" / ")}}
	before := append(chain.Chain(nil), c...)

	_ = r.Render([]chain.Chain{c}, "en")

	assert.Equal(t, before, c)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a/b", "c"}, Split(`a\/b ||| c|||`))
	assert.Nil(t, Split("  "))
}

func TestOrderedSet(t *testing.T) {
	var s OrderedSet

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))

	s.AddAll("c", "a")

	assert.Equal(t, []string{"b", "a", "c"}, s.Values())
	assert.Equal(t, 3, s.Len())
}
