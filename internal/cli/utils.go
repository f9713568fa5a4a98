package cli

import (
	"fmt"
	"strings"
	"unicode"

	huffman "github.com/chronos-tachyon/huffmantree"
)

// formatBits renders bits as a plain string of '0' and '1' characters.
func formatBits(bits huffman.Bits) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteByte('0' + byte(b))
	}
	return sb.String()
}

// parseBits reads a string of digits, ignoring whitespace.  Digits other than
// 0 and 1 are passed through so the decoder can reject them.
func parseBits(text string) (huffman.Bits, error) {
	out := make(huffman.Bits, 0, len(text))
	for i, ch := range text {
		switch {
		case unicode.IsSpace(ch):
			continue
		case ch >= '0' && ch <= '9':
			out = append(out, huffman.Bit(ch-'0'))
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d", ch, i)
		}
	}
	return out, nil
}
