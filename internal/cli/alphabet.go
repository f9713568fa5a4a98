package cli

import (
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/internal/alphabetfile"
)

func newAlphabetCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Write the selected alphabet as a YAML file",
		Long:  "alphabet prints the alphabet chosen by --alphabet or --from-text (or the built-in sample) as YAML, suitable for --alphabet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.alphabet()
			if err != nil {
				return err
			}
			if output != "" {
				log.Debugf("writing %d symbols to %s", a.Len(), output)
				return alphabetfile.Save(output, a)
			}
			b, err := alphabetfile.Marshal(a)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
