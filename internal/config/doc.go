// Package config loads the indexer configuration.
//
// The configuration is read from a YAML file and then overridden by
// environment variables prefixed with TOPIC_INDEXER_ (for example
// TOPIC_INDEXER_WORKERS=8 or TOPIC_INDEXER_DICTIONARY_SQLITE=/data/tr.db).
// Output definitions can only be given in the file.
//
// Example:
//
//	source_language: de
//	languages: [en, fr]
//	cache_capacity: 100
//	dictionary:
//	  dir: /usr/local/var/lib/tuelib
//	log:
//	  level: info
//	outputs:
//	  - name: topic_facet_en
//	    func: topic_facet
//	    fields: "600abcd:689abctnpz9g:LOK689a"
//	    separators: "$p.:$n :$t. :$9g[()]: / "
//	    lang: en
package config
