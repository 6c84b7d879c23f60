package match

import (
	"slices"
	"strings"
)

// DefaultMaxDistance is the edit distance up to which a candidate is
// considered a likely misspelling.
const DefaultMaxDistance = 3

// Suggest returns the candidates within maxDistance of name, closest first.
// The comparison ignores case and treats "-" like "_". Ties keep candidate
// order; name itself is never suggested.
func Suggest(name string, candidates []string, maxDistance int) []string {
	if name == "" {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}

	key := fold(name)

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(key, fold(c))
		if d <= maxDistance {
			hits = append(hits, scored{name: c, distance: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return a.distance - b.distance
	})

	result := make([]string, len(hits))
	for i, h := range hits {
		result[i] = h.name
	}

	return result
}

func fold(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}
