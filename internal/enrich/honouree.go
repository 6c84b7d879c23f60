package enrich

import (
	"strings"

	"topic-indexer/internal/marc"
)

const (
	personTag       = "700"
	relatorHonouree = "hnr"
)

// Honourees renders the persons honoured by rec: 700 fields with relator
// code $4 "hnr", as "Name, Title Dates".
func (e *Engine) Honourees(rec *marc.Record, lang string) ([]string, error) {
	if err := e.CheckLanguage(lang); err != nil {
		return nil, err
	}

	return e.honourees(rec, lang), nil
}

func (e *Engine) honourees(rec *marc.Record, lang string) []string {
	var result []string

	for _, f := range rec.FieldsByTag(personTag) {
		if !isHonouree(f) {
			continue
		}

		var b strings.Builder

		for _, sf := range f.Subfields {
			switch sf.Code {
			case 'a':
				b.WriteString(e.tr.Translate(sf.Data, lang))
			case 'b', 'c':
				b.WriteString(", ")
				b.WriteString(e.tr.Translate(sf.Data, lang))
			case 'd':
				b.WriteString(" ")
				b.WriteString(sf.Data)
			}
		}

		if h := strings.TrimSpace(b.String()); h != "" {
			result = append(result, h)
		}
	}

	return result
}

func isHonouree(f marc.Field) bool {
	for _, sf := range f.SubfieldsByCode('4') {
		if sf.Data == relatorHonouree {
			return true
		}
	}

	return false
}
