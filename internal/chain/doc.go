// Package chain extracts ordered chains of subject fragments from record
// fields.
//
// Extraction is split in two passes. Reduce is a pure reducer over the
// (code, value) pairs of one field and yields a Chain of Topics, each
// carrying the separator that precedes it when rendered. Extract walks the
// fields addressed by a field specification entry, applies local data
// indirection and subject filtering, and collects the chains. Rendering is
// done by package render.
//
// Digit subfields carry a discriminator in their data ("g:Geschichte"). The
// discriminator selects the separator ("$9g") and the "g:" prefix is removed
// from the fragment.
package chain
