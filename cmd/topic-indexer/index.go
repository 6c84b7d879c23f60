package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"topic-indexer/internal/batch"
	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/marc"
)

func newIndexCmd(a *app) *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "index [records.yaml]",
		Short: "Evaluate all configured outputs and write JSON lines",
		Long: `Reads records from the given file (or stdin) and writes one JSON line per
record holding the values of every configured output field.

Outputs with a broken configuration are reported and left out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			out := cmd.OutOrStdout()

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file %s: %w", output, err)
				}
				defer f.Close()

				out = f
			}

			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}

			if workers <= 0 {
				workers = a.cfg.Workers
			}

			runner := batch.NewRunner(engine, a.cfg.Outputs, workers, a.log)

			summary, err := runner.RunDecoder(cmd.Context(), marc.NewDecoder(in), out)
			if err != nil {
				return err
			}

			for _, group := range [][]diagnostic.Diagnostic{summary.Diagnostics.Errors, summary.Diagnostics.Warnings} {
				for _, d := range group {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d)
				}
			}

			a.log.Info("index complete", zap.Int("records", summary.Records), zap.Strings("skipped", summary.Skipped))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON lines to this file instead of stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of workers (default from configuration)")

	return cmd
}

// openInput opens the record file named in args, or stdin.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open records %s: %w", args[0], err)
	}

	return f, func() { _ = f.Close() }, nil
}
