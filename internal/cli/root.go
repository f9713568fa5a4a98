package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffmantree"
	"github.com/chronos-tachyon/huffmantree/internal/alphabetfile"
)

const progName = "huffman"

var version = "0.1.0"

// options holds the persistent flags shared by every subcommand.
type options struct {
	alphabetPath string
	fromText     string
	debug        bool
}

// sampleEntries is the alphabet used when neither --alphabet nor --from-text
// is given.
func sampleEntries() []huffman.Entry {
	return []huffman.Entry{
		{Symbol: 'A', Weight: 8},
		{Symbol: 'B', Weight: 3},
		{Symbol: 'C', Weight: 1},
		{Symbol: 'D', Weight: 1},
		{Symbol: 'E', Weight: 1},
		{Symbol: 'F', Weight: 1},
		{Symbol: 'G', Weight: 1},
		{Symbol: 'H', Weight: 1},
	}
}

// newRootCmd builds the base Cobra command and all of its subcommands.
func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           progName,
		Short:         "Build Huffman codes and encode or decode text with them",
		Long:          "huffman builds an optimal prefix-free code for a weighted alphabet and uses it to turn text into bits and back.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			startLogging(cmd.ErrOrStderr(), opts.debug)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.alphabetPath, "alphabet", "a", "", "YAML alphabet file")
	rootCmd.PersistentFlags().StringVar(&opts.fromText, "from-text", "", "derive symbol weights from this sample text")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(
		newTreeCmd(opts),
		newCodesCmd(opts),
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newDemoCmd(),
		newAlphabetCmd(opts),
	)
	return rootCmd
}

// Execute runs the huffman CLI. It should be called by the main package.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

// alphabet resolves the alphabet selected by the persistent flags.
func (opts *options) alphabet() (huffman.Alphabet, error) {
	switch {
	case opts.alphabetPath != "" && opts.fromText != "":
		return huffman.Alphabet{}, fmt.Errorf("--alphabet and --from-text are mutually exclusive")
	case opts.alphabetPath != "":
		log.Debugf("loading alphabet from %s", opts.alphabetPath)
		return alphabetfile.Load(opts.alphabetPath)
	case opts.fromText != "":
		log.Debugf("deriving alphabet from %d bytes of sample text", len(opts.fromText))
		return huffman.AlphabetOf(opts.fromText)
	default:
		log.Debugf("using the built-in sample alphabet")
		return huffman.NewAlphabet(sampleEntries())
	}
}

// table builds the Table for the selected alphabet.
func (opts *options) table() (*huffman.Table, error) {
	a, err := opts.alphabet()
	if err != nil {
		return nil, err
	}
	t, err := huffman.NewTable(a)
	if err != nil {
		return nil, err
	}
	log.Debugf("built %v", t)
	return t, nil
}
