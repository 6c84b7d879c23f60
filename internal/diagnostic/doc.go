// Package diagnostic provides the error taxonomy of the topic assembly engine
// and structured warnings and errors collected while validating and running
// output field definitions.
//
// Key capabilities:
//   - ErrConfiguration sentinel for malformed field and separator specifications
//   - Per-output diagnostics with codes and suggestions
//   - Combined error reporting for a whole batch run
package diagnostic
