package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffmantree"
)

// demoInputs are round-tripped by the demo command.
var demoInputs = []string{"", "A", "H", "ABABCEDEDFGH"}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample alphabet and round-trip a few strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "Huffman encoding/decoding")

	t, err := huffman.Build(sampleEntries())
	if err != nil {
		return err
	}
	if _, err := t.Dump(w); err != nil {
		return err
	}

	failed := 0
	for _, text := range demoInputs {
		bits, err := t.EncodeString(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatBits(bits))

		decoded, err := t.DecodeString(bits)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, decoded)

		if decoded == text {
			fmt.Fprintln(w, "OK")
		} else {
			fmt.Fprintln(w, "FAILED")
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d round trips failed", failed, len(demoInputs))
	}
	return nil
}
