package huffman

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.  Any rune is a valid Symbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff the Symbol is non-negative.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the character for printable symbols, and "U+XXXX" for
// everything else.
func (s Symbol) String() string {
	switch {
	case !s.IsValid():
		return "<invalid>"
	case unicode.IsPrint(rune(s)) && rune(s) != ' ':
		return string(rune(s))
	default:
		return fmt.Sprintf("U+%04X", int32(s))
	}
}

var _ fmt.Stringer = Symbol(0)

// SymbolsOf converts each rune of text into a Symbol.
func SymbolsOf(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, ch := range text {
		out = append(out, Symbol(ch))
	}
	return out
}

// StringOf converts a sequence of Symbols back into text, treating each
// Symbol as a rune.  The mapping is lossy: Symbols that are not valid runes
// (surrogates and values above utf8.MaxRune) all become U+FFFD, so compare
// the Symbol slices themselves when exactness matters.
func StringOf(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}
