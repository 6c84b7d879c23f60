package translate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLanguages are the target languages of the normdata translations.
var DefaultLanguages = []string{"en", "fr", "it", "es", "hant", "hans", "pt", "ru", "el"}

const (
	filePrefix = "normdata_translations_"
	fileExt    = ".txt"

	synonymMarker = "||"
)

// Dictionary maps terms to translations for one language. A nil Dictionary is
// empty.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary returns a dictionary holding a copy of entries.
func NewDictionary(entries map[string]string) *Dictionary {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
	}

	return d
}

// Lookup returns the translation of term.
func (d *Dictionary) Lookup(term string) (string, bool) {
	if d == nil {
		return "", false
	}

	v, ok := d.entries[term]

	return v, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// ReadDictionary parses "term|translation||synonyms" lines. Synonyms are
// dropped; lines without a term or a translation are skipped. Later lines
// override earlier ones.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: map[string]string{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, synonymMarker); i >= 0 {
			line = line[:i]
		}

		term, translation, ok := strings.Cut(line, "|")
		if !ok || term == "" {
			continue
		}

		// a trailing "|" separates further columns
		translation, _, _ = strings.Cut(translation, "|")
		if translation == "" {
			continue
		}

		d.entries[term] = translation
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return d, nil
}

// LoadFile reads the dictionary at path. A missing or empty file yields an
// empty dictionary.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDictionary(nil), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// FileName returns the dictionary file name for lang.
func FileName(lang string) string {
	return filePrefix + lang + fileExt
}

// LoadDir loads the dictionaries of langs from dir.
func LoadDir(dir string, langs []string) (map[string]*Dictionary, error) {
	dicts := make(map[string]*Dictionary, len(langs))

	for _, lang := range langs {
		d, err := LoadFile(filepath.Join(dir, FileName(lang)))
		if err != nil {
			return nil, err
		}

		dicts[lang] = d
	}

	return dicts, nil
}
