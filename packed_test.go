package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBits_Pack(t *testing.T) {
	packed, err := parseBits(sampleBits).Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expect := []byte{0x77, 0x8a, 0x9a, 0x9b, 0xcd}
	if !bytes.Equal(expect, packed) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}

	packed, err = parseBits("101").Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if expect := []byte{0xa0}; !bytes.Equal(expect, packed) {
		t.Errorf("wrong padding:\n\texpect: %#v\n\tactual: %#v", expect, packed)
	}

	if _, err := parseBits("0120").Pack(); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("expected %v, got %v", ErrInvalidBit, err)
	}
}

func TestUnpack(t *testing.T) {
	bits, err := Unpack([]byte{0x77, 0x8a, 0x9a, 0x9b, 0xcd}, len(sampleBits))
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if expect := parseBits(sampleBits); !bits.Equal(expect) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, bits)
	}

	bits, err = Unpack([]byte{0xa0}, 3)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if expect := parseBits("101"); !bits.Equal(expect) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, bits)
	}

	if _, err := Unpack([]byte{0xff}, 9); err == nil {
		t.Errorf("expected error unpacking 9 bits from 1 byte")
	}
}

func TestPacked_RoundTrip(t *testing.T) {
	table := makeTestTable(t, sampleEntries())

	var buf bytes.Buffer
	pw := NewPackedWriter(&buf)
	if err := NewEncoder(table, pw).Encode(SymbolsOf(sampleText)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := pw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if pw.Len() != int64(len(sampleBits)) {
		t.Errorf("expected %d bits, got %d", len(sampleBits), pw.Len())
	}

	symbols, err := table.DecodeFrom(NewPackedReader(&buf, pw.Len()))
	if err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if actual := StringOf(symbols); actual != sampleText {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", sampleText, actual)
	}
}

func TestPackedReader_ShortInput(t *testing.T) {
	pr := NewPackedReader(bytes.NewReader([]byte{0xff}), 12)
	for i := 0; i < 8; i++ {
		b, err := pr.NextBit()
		if err != nil || b != One {
			t.Fatalf("bit %d: expected 1, got %d, %v", i, b, err)
		}
	}
	if _, err := pr.NextBit(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected %v, got %v", io.ErrUnexpectedEOF, err)
	}
}
