package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topic-indexer/internal/separator"
)

func newSeparatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "separators SPEC...",
		Short: "Print the canonical form of separator specifications",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				spec, err := separator.Parse(arg)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%q\n", spec.Canonical())

				for _, sel := range spec.Selectors() {
					sep, _ := spec.Get(sel)
					fmt.Fprintf(out, "  $%s\t%s\n", sel, describe(sep))
				}

				fmt.Fprintf(out, "  default\t%s\n", describe(spec.Default()))
			}

			return nil
		},
	}
}

func describe(sep separator.Separator) string {
	switch sep.Kind() {
	case separator.KindBracket:
		open, closing := sep.Pair()
		return fmt.Sprintf("bracket %c%c", open, closing)
	case separator.KindLiteral:
		return fmt.Sprintf("literal %q", sep.Text())
	default:
		return "none"
	}
}
