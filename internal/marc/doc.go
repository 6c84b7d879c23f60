// Package marc provides the minimal bibliographic record model consumed by the
// topic assembly engine: records hold ordered, repeatable fields, and fields
// hold ordered single-character-coded subfields.
//
// The package does not parse MARC21 or MARCXML. Records are supplied by the
// surrounding import job, or decoded from YAML/JSON fixtures with Decoder:
//
//	id: "1234567"
//	fields:
//	  - tag: "689"
//	    ind1: "0"
//	    ind2: "0"
//	    subfields:
//	      - $aTheologie
//	      - {code: q, data: s}
//
// A subfield is written either in breaker form ("$" + code + data) or as a
// mapping with code and data keys.
package marc
