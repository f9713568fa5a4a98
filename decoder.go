package huffman

import (
	"fmt"
	"io"
)

// Decoder turns bits back into Symbols, one bit at a time.  Its only state is
// the current node, which starts at (and returns to) the root.
type Decoder struct {
	t       *Table
	root    NodeIndex
	current NodeIndex
	pos     int64
}

// NewDecoder constructs a Decoder for the given Table.
func NewDecoder(t *Table) (*Decoder, error) {
	root, err := t.Root()
	if err != nil {
		return nil, err
	}
	return &Decoder{t: t, root: root, current: root}, nil
}

// Reset returns the Decoder to the root, discarding any partial code word.
func (d *Decoder) Reset() {
	d.current = d.root
	d.pos = 0
}

// DecodeBit consumes one Bit.  If the Bit completes a code word, the decoded
// Symbol is returned with ok == true and the Decoder returns to the root.
func (d *Decoder) DecodeBit(b Bit) (s Symbol, ok bool, err error) {
	if !b.IsValid() {
		return InvalidSymbol, false, fmt.Errorf("%w: %d at position %d", ErrInvalidBit, uint8(b), d.pos)
	}

	// A lone symbol has the one-bit code Zero and no children to visit.
	if d.t.IsLeaf(d.root) {
		if b != Zero {
			return InvalidSymbol, false, fmt.Errorf("%w: bit %d at position %d", ErrUnassignedCode, uint8(b), d.pos)
		}
		d.pos++
		s, err = d.t.Symbol(d.root)
		return s, err == nil, err
	}

	var next NodeIndex
	if b == Zero {
		next, err = d.t.Left(d.current)
	} else {
		next, err = d.t.Right(d.current)
	}
	if err != nil {
		return InvalidSymbol, false, err
	}
	d.pos++

	if !d.t.IsLeaf(next) {
		d.current = next
		return InvalidSymbol, false, nil
	}
	d.current = d.root
	s, err = d.t.Symbol(next)
	return s, err == nil, err
}

// Finish reports ErrIncompleteInput if the bits consumed so far stop inside a
// code word.
func (d *Decoder) Finish() error {
	if d.current != d.root {
		return fmt.Errorf("%w: %d bits consumed", ErrIncompleteInput, d.pos)
	}
	return nil
}

// DecodeFrom decodes every bit produced by src until io.EOF.  No Symbols are
// returned if any error occurs.
func (t *Table) DecodeFrom(src BitSource) ([]Symbol, error) {
	d, err := NewDecoder(t)
	if err != nil {
		return nil, err
	}

	var out []Symbol
	for {
		b, err := src.NextBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s, ok, err := d.DecodeBit(b)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Symbol{}
	}
	return out, nil
}

// Decode decodes a complete bit sequence.  Empty Bits decode to an empty
// Symbol slice.
func (t *Table) Decode(bits Bits) ([]Symbol, error) {
	return t.DecodeFrom(NewBitsReader(bits))
}

// DecodeString decodes a complete bit sequence into text, treating each
// Symbol as a rune.
func (t *Table) DecodeString(bits Bits) (string, error) {
	symbols, err := t.Decode(bits)
	if err != nil {
		return "", err
	}
	return StringOf(symbols), nil
}
