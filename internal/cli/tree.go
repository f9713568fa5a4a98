package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the Huffman tree for the alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			if _, err := t.Dump(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func newCodesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List every symbol with its weight and code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			for _, entry := range t.Alphabet().Entries() {
				code, err := t.Code(entry.Symbol)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8v %8d  %s\n", entry.Symbol, entry.Weight, formatBits(code))
			}
			return nil
		},
	}
}
