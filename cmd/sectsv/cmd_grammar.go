package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/sectsv/tsv/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !verify {
				_, err := out.Write(grammar.Source())
				return err
			}

			g, err := grammar.Load()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(out, "%s: %d productions, start %s\n", grammar.Filename, len(names), grammar.Start)
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar and list its productions")

	return cmd
}
