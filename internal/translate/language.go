package translate

import (
	"fmt"

	"golang.org/x/text/language"
)

// script aliases used by the normdata translation files
var languageAliases = map[string]string{
	"hant": "zh-Hant",
	"hans": "zh-Hans",
}

// ParseLanguage validates a language code as used by the dictionaries.
func ParseLanguage(code string) (language.Tag, error) {
	if alias, ok := languageAliases[code]; ok {
		code = alias
	}

	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language code %q: %w", code, err)
	}

	return tag, nil
}
