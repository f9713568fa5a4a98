package huffman

import (
	"fmt"
)

// Entry pairs a Symbol with its weight (i.e. its relative frequency).
type Entry struct {
	Symbol Symbol
	Weight int64
}

// Alphabet is a validated, immutable list of Entry values.  The order of the
// entries is significant: it fixes the insertion order used to break ties
// while building a Table.
type Alphabet struct {
	entries []Entry
	total   uint64
}

// NewAlphabet validates the given entries and returns an Alphabet holding a
// copy of them.
//
// The list must not be empty, symbols must be valid and pairwise distinct,
// and every weight must be positive.  The sum of all weights must fit in a
// uint64.
//
func NewAlphabet(entries []Entry) (Alphabet, error) {
	if len(entries) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	seen := make(map[Symbol]int, len(entries))
	var total uint64
	for index, entry := range entries {
		if !entry.Symbol.IsValid() {
			return Alphabet{}, fmt.Errorf("%w: %d at position %d", ErrInvalidSymbol, int32(entry.Symbol), index)
		}
		if first, found := seen[entry.Symbol]; found {
			return Alphabet{}, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateSymbol, entry.Symbol, first, index)
		}
		seen[entry.Symbol] = index

		if entry.Weight <= 0 {
			return Alphabet{}, fmt.Errorf("%w: symbol %v has weight %d, must be positive", ErrInvalidWeight, entry.Symbol, entry.Weight)
		}
		var ok bool
		total, ok = addWeight(total, uint64(entry.Weight))
		if !ok {
			return Alphabet{}, fmt.Errorf("%w: total weight overflows at symbol %v", ErrInvalidWeight, entry.Symbol)
		}
	}

	list := make([]Entry, len(entries))
	copy(list, entries)
	return Alphabet{entries: list, total: total}, nil
}

// AlphabetOf derives an Alphabet from sample text, weighting each rune by the
// number of times it occurs.
func AlphabetOf(text string) (Alphabet, error) {
	return NewAlphabet(CountSymbols(SymbolsOf(text)))
}

// CountSymbols counts the occurrences of each Symbol.  The entries are
// returned in order of first appearance.
func CountSymbols(symbols []Symbol) []Entry {
	index := make(map[Symbol]int)
	var out []Entry
	for _, s := range symbols {
		if i, found := index[s]; found {
			out[i].Weight++
			continue
		}
		index[s] = len(out)
		out = append(out, Entry{Symbol: s, Weight: 1})
	}
	return out
}

// Len returns the number of symbols in the Alphabet.
func (a Alphabet) Len() int {
	return len(a.entries)
}

// Entry returns the i'th entry.
func (a Alphabet) Entry(i int) Entry {
	return a.entries[i]
}

// Entries returns a copy of the entries, in their original order.
func (a Alphabet) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// TotalWeight returns the sum of all weights.
func (a Alphabet) TotalWeight() uint64 {
	return a.total
}
