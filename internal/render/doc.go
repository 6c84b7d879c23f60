// Package render turns extracted chains into localized display strings.
//
// Every fragment has its slashes escaped, is cleaned by package normalize and
// is translated. A chain of several fragments is first looked up as a whole
// phrase; only when the dictionary has no entry for the phrase are the
// fragments joined one by one using their separators. A whole-phrase
// translation takes precedence over bracket directives.
//
// The results are split at the chain break marker "|||", escaped slashes are
// restored and duplicates are dropped while keeping first-seen order.
package render
