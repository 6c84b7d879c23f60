package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		field []string
		tag   string
		want  SubjectKind
	}{
		{"689 time via q", []string{"aNeuzeit", "qz"}, "689", SubjectTime},
		{"689 time via d", []string{"aNeuzeit", "dz"}, "689", SubjectTime},
		{"689 region via q", []string{"aEuropa", "qg"}, "689", SubjectRegion},
		{"689 region via d", []string{"aEuropa", "dg"}, "689", SubjectRegion},
		{"689 genre", []string{"aBiografie", "qf"}, "689", SubjectGenre},
		{"689 genre via d is ordinary", []string{"aBiografie", "df"}, "689", SubjectOrdinary},
		{"689 ordinary", []string{"aEthik", "qs"}, "689", SubjectOrdinary},
		{"local time", []string{"0689  ", "az"}, "LOK", SubjectTime},
		{"local region", []string{"0689  ", "ag"}, "LOK", SubjectRegion},
		{"local genre", []string{"0689  ", "af"}, "LOK", SubjectGenre},
		{"local corporation", []string{"0689  ", "ak"}, "LOK", SubjectCorporation},
		{"local ordinary", []string{"0689  ", "as"}, "LOK", SubjectOrdinary},
		{"local 689 unknown kind", []string{"0689  ", "ax"}, "LOK", SubjectLocal},
		{"other local", []string{"0936ln", "az"}, "LOK", SubjectLocal},
		{"local without $0", []string{"az"}, "LOK", SubjectLocal},
		{"other tag", []string{"aKirche"}, "650", SubjectNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(field(tt.tag, tt.field...)))
		})
	}
}

func TestFilterAdmits(t *testing.T) {
	all := []SubjectKind{
		SubjectNone, SubjectLocal, SubjectOrdinary, SubjectTime,
		SubjectRegion, SubjectGenre, SubjectCorporation,
	}

	admitted := map[Filter][]SubjectKind{
		FilterNone:     all,
		FilterOrdinary: {SubjectNone, SubjectOrdinary},
		FilterTime:     {SubjectNone, SubjectLocal, SubjectTime},
		FilterRegion:   {SubjectNone, SubjectLocal, SubjectRegion},
		FilterGenre:    {SubjectNone, SubjectLocal, SubjectGenre},
	}

	for filter, kinds := range admitted {
		t.Run(filter.String(), func(t *testing.T) {
			for _, k := range all {
				assert.Equal(t, contains(kinds, k), filter.Admits(k), "kind %s", k)
			}
		})
	}

	assert.False(t, Filter(42).Admits(SubjectNone))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "Corporation", SubjectCorporation.String())
	assert.Equal(t, "SubjectKind(9)", SubjectKind(9).String())
	assert.Equal(t, "Ordinary", FilterOrdinary.String())
	assert.Equal(t, "Filter(-1)", Filter(-1).String())
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("genre")
	require.NoError(t, err)
	assert.Equal(t, FilterGenre, f)

	f, err = ParseFilter("None")
	require.NoError(t, err)
	assert.Equal(t, FilterNone, f)

	_, err = ParseFilter("place")
	assert.Error(t, err)
}

func contains(kinds []SubjectKind, k SubjectKind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}

	return false
}
