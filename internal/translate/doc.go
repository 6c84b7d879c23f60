// Package translate localizes subject terms using per-language normdata
// translation dictionaries.
//
// Dictionaries are loaded once, from text files named
// "normdata_translations_<lang>.txt" or from a SQLite table
// normdata_translations(lang, term, translation), and are read-only
// afterwards. A missing translation is not an error: the term is returned
// unchanged.
package translate
