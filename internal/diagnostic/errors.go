package diagnostic

import "errors"

// ErrConfiguration marks a malformed field or separator specification. It is
// fatal for the affected specification only.
var ErrConfiguration = errors.New("configuration error")

// Diagnostic codes.
const (
	CodeSeparatorSpec = "separator-spec"
	CodeFieldSpec     = "field-spec"
	CodeUnknownFunc   = "unknown-func"
	CodeUnknownLang   = "unknown-language"
	CodeExtraction    = "extraction"
	CodeSkipped       = "skipped"
)

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
