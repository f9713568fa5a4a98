package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func newEncodeCmd(opts *options) *cobra.Command {
	var packed bool
	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Encode text as a bit string",
		Long:  "encode joins its arguments with spaces and prints the code bits as 0/1 characters, or with --packed the bit count and the packed bytes in hex.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")

			if !packed {
				bits, err := t.EncodeString(text)
				if err != nil {
					return err
				}
				log.Debugf("encoded %d symbols into %d bits", len(huffman.SymbolsOf(text)), len(bits))
				fmt.Fprintln(cmd.OutOrStdout(), formatBits(bits))
				return nil
			}

			var buf bytes.Buffer
			pw := huffman.NewPackedWriter(&buf)
			e := huffman.NewEncoder(t, pw)
			if err := e.Encode(huffman.SymbolsOf(text)); err != nil {
				return err
			}
			if err := pw.Close(); err != nil {
				return err
			}
			log.Debugf("encoded %d bits into %d bytes", pw.Len(), buf.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", pw.Len(), hex.EncodeToString(buf.Bytes()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&packed, "packed", false, "emit packed bytes as hex, preceded by the bit count")
	return cmd
}
