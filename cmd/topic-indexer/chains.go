package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"topic-indexer/internal/chain"
	"topic-indexer/internal/marc"
)

func newChainsCmd(a *app) *cobra.Command {
	var (
		fields     string
		separators string
		filter     string
		dump       bool
	)

	cmd := &cobra.Command{
		Use:   "chains [records.yaml]",
		Short: "Show the subject chains assembled for each record",
		Long: `Assembles the subject chains selected by --fields and --separators and
prints them per record. With --dump the chains are printed with their
separator metadata.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}

			f, err := chain.ParseFilter(filter)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dec := marc.NewDecoder(in)

			for {
				rec, err := dec.Decode()
				if errors.Is(err, io.EOF) {
					return nil
				}

				if err != nil {
					return err
				}

				chains, err := engine.Chains(rec, fields, separators, f)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s:\n", rec.ControlNumber())

				if dump {
					fmt.Fprint(out, spew.Sdump(chains))
					continue
				}

				for _, c := range chains {
					fmt.Fprintf(out, "  %s\n", c)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&fields, "fields", "f", "600abcdfnqt:610abcdfnqt:611abcdfnqt:630abcdfnqt:650abcdfnqt:651abcdfnqt:655abcdfnqt:689abcdfnqt", "field specification")
	cmd.Flags().StringVarP(&separators, "separators", "s", " / ", "separator specification")
	cmd.Flags().StringVar(&filter, "filter", "none", "subject filter: none, ordinary, time, region or genre")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump chains with separator metadata")

	return cmd
}
