package huffman

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Bit is a single binary digit.  Only Zero and One are valid; other values
// can be represented so that corrupt input can be detected and rejected.
type Bit uint8

const (
	// Zero selects the left child.
	Zero Bit = 0

	// One selects the right child.
	One Bit = 1
)

// IsValid returns true iff the Bit is Zero or One.
func (b Bit) IsValid() bool {
	return b <= One
}

// Bits is an ordered sequence of Bit values.
type Bits []Bit

// EmitBit appends a Bit to the sequence.  It implements BitSink.
func (bits *Bits) EmitBit(b Bit) error {
	if !b.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidBit, uint8(b))
	}
	*bits = append(*bits, b)
	return nil
}

// Equal returns true iff both sequences hold the same bits.
func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for i := range bits {
		if bits[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of bits.
func (bits Bits) HasPrefix(prefix Bits) bool {
	return len(prefix) <= len(bits) && bits[:len(prefix)].Equal(prefix)
}

// Clone returns a copy of the sequence.
func (bits Bits) Clone() Bits {
	if bits == nil {
		return nil
	}
	out := make(Bits, len(bits))
	copy(out, bits)
	return out
}

// String returns the quoted string representation of these Bits.
func (bits Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b.IsValid() {
			sb.WriteByte('0' + byte(b))
		} else {
			sb.WriteByte('?')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Bits(nil)

// BitSink receives bits one at a time.
type BitSink interface {
	EmitBit(b Bit) error
}

// BitSource produces bits one at a time.  NextBit returns io.EOF once the
// source is exhausted.
type BitSource interface {
	NextBit() (Bit, error)
}

var _ BitSink = (*Bits)(nil)

// BitsReader is a BitSource that reads from a Bits value in memory.
type BitsReader struct {
	bits Bits
	pos  int
}

// NewBitsReader constructs a BitsReader positioned at the first bit.
func NewBitsReader(bits Bits) *BitsReader {
	return &BitsReader{bits: bits}
}

// NextBit returns the next Bit, or io.EOF if there are none left.
func (r *BitsReader) NextBit() (Bit, error) {
	if r.pos >= len(r.bits) {
		return 0, io.EOF
	}
	b := r.bits[r.pos]
	r.pos++
	return b, nil
}

// Remaining returns the number of unread bits.
func (r *BitsReader) Remaining() int {
	return len(r.bits) - r.pos
}

// Reset rewinds the reader to the first bit.
func (r *BitsReader) Reset() {
	r.pos = 0
}

var _ BitSource = (*BitsReader)(nil)
