package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffmantree"
)

func newDecodeCmd(opts *options) *cobra.Command {
	var packed bool
	var numBits int64
	cmd := &cobra.Command{
		Use:   "decode BITS",
		Short: "Decode a bit string back into text",
		Long:  "decode reads a string of 0/1 characters, or with --packed a hex string holding --bits bits, and prints the decoded text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			input := strings.Join(args, "")

			var src huffman.BitSource
			if packed {
				data, err := hex.DecodeString(input)
				if err != nil {
					return err
				}
				if numBits < 0 {
					numBits = int64(8 * len(data))
				}
				log.Debugf("decoding %d bits from %d packed bytes", numBits, len(data))
				src = huffman.NewPackedReader(bytes.NewReader(data), numBits)
			} else {
				bits, err := parseBits(input)
				if err != nil {
					return err
				}
				log.Debugf("decoding %d bits", len(bits))
				src = huffman.NewBitsReader(bits)
			}

			symbols, err := t.DecodeFrom(src)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), huffman.StringOf(symbols))
			return nil
		},
	}
	cmd.Flags().BoolVar(&packed, "packed", false, "read the input as hex-encoded packed bytes")
	cmd.Flags().Int64Var(&numBits, "bits", -1, "number of valid bits in packed input (default: all of them)")
	return cmd
}
