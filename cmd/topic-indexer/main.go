// Package main provides the CLI entrypoint for topic-indexer.
//
// topic-indexer renders the subject headings of bibliographic records into
// translated topic strings:
//   - Parses field and separator specifications from a YAML configuration
//   - Assembles subject chains per record, cached by record and spec
//   - Translates and renders every configured output field
//   - Writes one JSON line per record
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"topic-indexer/internal/diagnostic"
)

// Exit codes.
const (
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes configuration errors from runtime failures.
func exitCode(err error) int {
	if diagnostic.IsConfiguration(err) {
		return exitConfig
	}

	return exitFailure
}
