package translate

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const selectTranslations = `SELECT lang, term, translation FROM normdata_translations`

// LoadSQLite loads the dictionaries of langs from the normdata_translations
// table of the SQLite database at path. Every language in langs gets a
// dictionary, possibly empty; rows of other languages are ignored.
func LoadSQLite(ctx context.Context, path string, langs []string) (map[string]*Dictionary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation database %s: %w", path, err)
	}
	defer db.Close()

	dicts := make(map[string]*Dictionary, len(langs))
	for _, lang := range langs {
		dicts[lang] = &Dictionary{entries: map[string]string{}}
	}

	rows, err := db.QueryContext(ctx, selectTranslations)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations in %s: %w", path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang, term, translation string

		if err := rows.Scan(&lang, &term, &translation); err != nil {
			return nil, fmt.Errorf("failed to scan translation row: %w", err)
		}

		d, ok := dicts[lang]
		if !ok || term == "" || translation == "" {
			continue
		}

		d.entries[term] = translation
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read translations from %s: %w", path, err)
	}

	return dicts, nil
}
