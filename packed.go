package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// PackedWriter is a BitSink that packs bits into bytes, most significant bit
// first.  The final byte is padded with zero bits by Close.
type PackedWriter struct {
	w *bitio.Writer
	n int64
}

// NewPackedWriter constructs a PackedWriter that writes to w.
func NewPackedWriter(w io.Writer) *PackedWriter {
	return &PackedWriter{w: bitio.NewWriter(w)}
}

// EmitBit writes a single Bit.
func (pw *PackedWriter) EmitBit(b Bit) error {
	if !b.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidBit, uint8(b))
	}
	if err := pw.w.WriteBool(b == One); err != nil {
		return err
	}
	pw.n++
	return nil
}

// Len returns the number of bits written so far, not counting padding.
func (pw *PackedWriter) Len() int64 {
	return pw.n
}

// Close flushes any partial byte.  It does not close the underlying writer.
func (pw *PackedWriter) Close() error {
	return pw.w.Close()
}

var _ BitSink = (*PackedWriter)(nil)

// PackedReader is a BitSource that unpacks bits written by PackedWriter.  The
// exact number of bits must be supplied, since the padding in the last byte
// is indistinguishable from data.
type PackedReader struct {
	r         *bitio.Reader
	remaining int64
}

// NewPackedReader constructs a PackedReader that reads n bits from r.
func NewPackedReader(r io.Reader, n int64) *PackedReader {
	return &PackedReader{r: bitio.NewReader(r), remaining: n}
}

// NextBit returns the next Bit, or io.EOF after n bits have been read.  An
// underlying reader that runs dry early yields io.ErrUnexpectedEOF.
func (pr *PackedReader) NextBit() (Bit, error) {
	if pr.remaining <= 0 {
		return 0, io.EOF
	}
	set, err := pr.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	pr.remaining--
	if set {
		return One, nil
	}
	return Zero, nil
}

var _ BitSource = (*PackedReader)(nil)

// Pack packs the bits into bytes, most significant bit first.
func (bits Bits) Pack() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	pw := NewPackedWriter(&buf)
	for _, b := range bits {
		if err := pw.EmitBit(b); err != nil {
			return nil, err
		}
	}
	if err := pw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Bits.Pack.  It reads exactly n bits from data.
func Unpack(data []byte, n int) (Bits, error) {
	if n < 0 || n > 8*len(data) {
		return nil, fmt.Errorf("huffman: cannot unpack %d bits from %d bytes", n, len(data))
	}
	pr := NewPackedReader(bytes.NewReader(data), int64(n))
	out := make(Bits, 0, n)
	for {
		b, err := pr.NextBit()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
}
