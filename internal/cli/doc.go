// Package cli provides the command-line interface for the huffman tool.  It
// configures subcommands (tree, codes, encode, decode, demo, alphabet),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/chronos-tachyon/huffmantree/internal/cli"
//	func main() { cli.Execute() }
package cli
