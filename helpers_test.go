package huffman

import (
	"testing"
)

// sampleEntries is the eight-symbol alphabet used throughout the tests.
func sampleEntries() []Entry {
	return []Entry{
		{'A', 8},
		{'B', 3},
		{'C', 1},
		{'D', 1},
		{'E', 1},
		{'F', 1},
		{'G', 1},
		{'H', 1},
	}
}

func makeTestTable(t *testing.T, entries []Entry) *Table {
	t.Helper()
	table, err := Build(entries)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return table
}

func equalSymbols(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseBits maps each character c to Bit(c - '0'), so "2" yields an invalid
// Bit on purpose.
func parseBits(str string) Bits {
	out := make(Bits, len(str))
	for i := 0; i < len(str); i++ {
		out[i] = Bit(str[i] - '0')
	}
	return out
}
