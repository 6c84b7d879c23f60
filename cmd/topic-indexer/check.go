package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topic-indexer/internal/config"
	"topic-indexer/internal/diagnostic"
)

var errInvalidConfig = fmt.Errorf("%w: configuration has errors", diagnostic.ErrConfiguration)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and report all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read(a.configPath)
			if err != nil {
				return err
			}

			diags := config.Validate(cfg)
			out := cmd.OutOrStdout()

			for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
				for _, d := range group {
					fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
				}
			}

			if diags.HasErrors() {
				return errInvalidConfig
			}

			fmt.Fprintf(out, "ok: %d outputs\n", len(cfg.Outputs))

			return nil
		},
	}
}
