package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/sectsv/config"
	"github.com/dhamidi/sectsv/format"
	"github.com/dhamidi/sectsv/table"
	"github.com/spf13/cobra"
)

func newParseCmd(cfg *config.Config) *cobra.Command {
	var outputFormat string
	var limit int

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its sections (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = cfg.Format
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Limit
			}

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var opts []table.Option
			if limit > 0 {
				opts = append(opts, table.WithLimit(limit))
			}
			doc, err := table.Read(string(data), opts...)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			log.Debugf("%s: %d sections", args[0], len(doc.Sections))

			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if outputFormat == "json" {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many sections (0 reads all)")

	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
