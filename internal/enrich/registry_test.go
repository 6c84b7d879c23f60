package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/marc"
)

func TestDefaultRegistryNames(t *testing.T) {
	assert.Equal(t,
		[]string{"genres", "honourees", "regions", "times", "topic_facet", "topics"},
		DefaultRegistry().Names())
}

func TestEvaluate(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := loadRecords(t)[0]

	tests := []struct {
		out  Output
		want []string
	}{
		{
			out:  Output{Name: "topic_facet_en", Func: FuncTopicFacet, Fields: "689ax", Separators: " / ", Lang: "en"},
			want: []string{"Theology / History", "Benedict, XVI., Pope 1927-2022"},
		},
		{
			out:  Output{Name: "genre_de", Func: FuncGenres, Fields: "689a", Lang: "de"},
			want: []string{"Biografie"},
		},
		{
			out:  Output{Name: "honouree_de", Func: FuncHonourees, Lang: "de"},
			want: []string{"Benedikt, XVI., Papst 1927-2022"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.out.Name, func(t *testing.T) {
			got, err := e.Evaluate(rec, tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := e.Evaluate(rec, Output{Name: "x", Func: "subjects"})
	assert.ErrorIs(t, err, ErrUnknownFunc)
}

func TestCustomFunction(t *testing.T) {
	r := DefaultRegistry()
	r.Register("upper_topics", func(e *Engine, rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
		values, err := e.Topics(rec, fieldSpec, sepSpec, lang)
		for i := range values {
			values[i] = strings.ToUpper(values[i])
		}

		return values, err
	})

	e := New(newTestEngine(t, nil).tr, Options{Registry: r}, nil)
	rec := &marc.Record{ID: "1", Fields: []marc.Field{{Tag: "650", Subfields: []marc.Subfield{{Code: 'a', Data: "Kirche"}}}}}

	got, err := e.Evaluate(rec, Output{Name: "u", Func: "upper_topics", Fields: "650a", Lang: "de"})
	require.NoError(t, err)
	assert.Equal(t, []string{"KIRCHE"}, got)
}

func TestValidate(t *testing.T) {
	e := newTestEngine(t, nil)

	var diags diagnostic.Diagnostics

	err := e.Validate(Output{Name: "ok", Func: FuncTopics, Fields: "689a", Separators: " / ", Lang: "en"}, &diags)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())

	err = e.Validate(Output{
		Name:       "broken",
		Func:       "topic-facet",
		Fields:     "LOK68",
		Separators: "$a[(]",
		Lang:       "eng",
	}, &diags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFunc)
	assert.True(t, diagnostic.IsConfiguration(err))

	require.Len(t, diags.Errors, 4)
	assert.True(t, diags.HasErrorFor("broken"))
	assert.False(t, diags.HasErrorFor("ok"))

	codes := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{
		diagnostic.CodeUnknownFunc,
		diagnostic.CodeUnknownLang,
		diagnostic.CodeFieldSpec,
		diagnostic.CodeSeparatorSpec,
	}, codes)
	assert.Equal(t, []string{"topic_facet"}, diags.Errors[0].Suggestions)
	assert.Equal(t, []string{"en"}, diags.Errors[1].Suggestions)
}

func TestValidateHonoureesIgnoresSpecs(t *testing.T) {
	e := newTestEngine(t, nil)

	var diags diagnostic.Diagnostics

	err := e.Validate(Output{Name: "h", Func: FuncHonourees, Fields: "LOK", Separators: "[", Lang: "de"}, &diags)
	require.NoError(t, err)
	assert.True(t, diags.IsValid())
}
