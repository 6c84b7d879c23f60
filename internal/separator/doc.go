// Package separator parses separator specifications, the small join language
// that decides how the subfields of one field are glued into a display string.
//
// # Grammar
//
//	separator_spec   := segment (":" segment)*
//	segment          := "$" selector separator | separator
//	selector         := digit lower | letter
//	separator        := literal | "[" char char "]"
//
// Segments are split at unescaped colons. A "$"-prefixed segment assigns a
// separator to one subfield selector; "$9g" selects digit subfield 9 whose
// data carries the discriminator "g" (as in "g:Europa"). An unprefixed
// segment sets the "default" separator; later ones overwrite earlier ones.
//
// A backslash escapes ":", "$", "[", "]" and itself inside literal text. A
// separator of the form "[()]" is a bracket directive: the fragment is
// wrapped in the two characters instead of being preceded by literal text.
// Any other unescaped bracket is a configuration error.
//
// # Example
//
//	$p.:$n :$t. :$9g[()]:, 
//
// joins $p with ".", $n with " " and $t with ". ", wraps fragments from $9
// subfields discriminated by "g" in parentheses, and uses ", " for every
// other subfield.
package separator
