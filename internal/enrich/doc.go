// Package enrich evaluates output fields for bibliographic records.
//
// An Engine is the explicit context of a run: it owns the assembly cache,
// the translator and the renderer, and memoizes parsed field and separator
// specifications. Output fields name a registered extractor function
// ("topics", "topic_facet", "genres", "regions", "times", "honourees") and the
// field spec, separator spec and language it is called with:
//
//	out := enrich.Output{
//		Name:       "topic_facet_en",
//		Func:       "topic_facet",
//		Fields:     "600abcd:610abcd:689abctnpz9g:LOK689a",
//		Separators: "$p.:$n :$t. :$9g[()]: / ",
//		Lang:       "en",
//	}
//	values, err := engine.Evaluate(rec, out)
//
// Configuration errors wrap diagnostic.ErrConfiguration and are fatal for
// the affected output only.
package enrich
