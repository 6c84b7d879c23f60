// Package batch runs the configured outputs over a stream of records.
//
// Records are processed by a fixed number of workers; a single writer emits
// one JSON line per record:
//
//	{"id":"1000001","fields":{"topic_facet_en":["Theology / History"]}}
//
// Lines are written in completion order. Outputs whose configuration is
// broken are reported once in the run diagnostics and left out of every
// line, as are outputs without values.
package batch
