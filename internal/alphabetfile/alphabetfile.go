package alphabetfile

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	huffman "github.com/chronos-tachyon/huffmantree"
)

// File is the on-disk YAML shape of an alphabet.
type File struct {
	Symbols []SymbolEntry `yaml:"symbols"`
}

// SymbolEntry is one weighted symbol.  Symbol must hold exactly one character.
type SymbolEntry struct {
	Symbol string `yaml:"symbol"`
	Weight int64  `yaml:"weight"`
}

// Load reads a YAML alphabet file from the provided path.
func Load(path string) (huffman.Alphabet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return huffman.Alphabet{}, err
	}
	a, err := Parse(b)
	if err != nil {
		return huffman.Alphabet{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Parse decodes YAML into a validated Alphabet.
func Parse(b []byte) (huffman.Alphabet, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return huffman.Alphabet{}, err
	}
	entries := make([]huffman.Entry, 0, len(f.Symbols))
	for i, se := range f.Symbols {
		ch, size := utf8.DecodeRuneInString(se.Symbol)
		if size == 0 || size != len(se.Symbol) || (ch == utf8.RuneError && size == 1) {
			return huffman.Alphabet{}, fmt.Errorf("symbols[%d]: symbol %q must be exactly one character", i, se.Symbol)
		}
		entries = append(entries, huffman.Entry{Symbol: huffman.Symbol(ch), Weight: se.Weight})
	}
	return huffman.NewAlphabet(entries)
}

// Marshal encodes an Alphabet as YAML.  The output can be read back by Parse.
// Symbols that are not valid runes have no one-character form and are
// rejected.
func Marshal(a huffman.Alphabet) ([]byte, error) {
	f := File{Symbols: make([]SymbolEntry, 0, a.Len())}
	for i, entry := range a.Entries() {
		if !utf8.ValidRune(rune(entry.Symbol)) {
			return nil, fmt.Errorf("symbols[%d]: symbol %v is not a valid character", i, entry.Symbol)
		}
		f.Symbols = append(f.Symbols, SymbolEntry{
			Symbol: string(rune(entry.Symbol)),
			Weight: entry.Weight,
		})
	}
	return yaml.Marshal(&f)
}

// Save writes an Alphabet to path as YAML.
func Save(path string, a huffman.Alphabet) error {
	b, err := Marshal(a)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
