package huffman

import (
	"fmt"
)

// Encoder writes the codes for a sequence of Symbols to a BitSink.
type Encoder struct {
	t    *Table
	sink BitSink
	n    int64
}

// NewEncoder constructs an Encoder for the given Table and BitSink.
func NewEncoder(t *Table, sink BitSink) *Encoder {
	return &Encoder{t: t, sink: sink}
}

// EncodeSymbol writes the code for one Symbol.
func (e *Encoder) EncodeSymbol(s Symbol) error {
	code, found := e.t.code(s)
	if !found {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	return e.emit(code)
}

// Encode writes the codes for every Symbol, in order, with no separators.
//
// The whole sequence is checked before anything is written: if any Symbol is
// not in the Table's Alphabet, Encode fails without touching the BitSink.
//
func (e *Encoder) Encode(symbols []Symbol) error {
	for index, s := range symbols {
		if _, found := e.t.code(s); !found {
			return fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, s, index)
		}
	}
	for _, s := range symbols {
		code, _ := e.t.code(s)
		if err := e.emit(code); err != nil {
			return err
		}
	}
	return nil
}

// BitsWritten returns the number of bits emitted so far.
func (e *Encoder) BitsWritten() int64 {
	return e.n
}

func (e *Encoder) emit(code Bits) error {
	for _, b := range code {
		if err := e.sink.EmitBit(b); err != nil {
			return err
		}
		e.n++
	}
	return nil
}

// Encode returns the concatenated codes for the given Symbols.  An empty
// input yields empty Bits.
func (t *Table) Encode(symbols []Symbol) (Bits, error) {
	size := 0
	for index, s := range symbols {
		code, found := t.code(s)
		if !found {
			return nil, fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, s, index)
		}
		size += len(code)
	}

	out := make(Bits, 0, size)
	for _, s := range symbols {
		code, _ := t.code(s)
		out = append(out, code...)
	}
	return out, nil
}

// EncodeString encodes each rune of text as a Symbol.
func (t *Table) EncodeString(text string) (Bits, error) {
	return t.Encode(SymbolsOf(text))
}
