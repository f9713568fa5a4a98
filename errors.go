package huffman

import (
	"errors"
)

// Errors reported while validating an Alphabet.
var (
	ErrEmptyAlphabet   = errors.New("huffman: empty alphabet")
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")
	ErrInvalidWeight   = errors.New("huffman: invalid weight")
	ErrInvalidSymbol   = errors.New("huffman: invalid symbol")
)

// Errors reported by Encoder and Decoder.
var (
	ErrUnknownSymbol   = errors.New("huffman: symbol not in alphabet")
	ErrInvalidBit      = errors.New("huffman: invalid bit")
	ErrIncompleteInput = errors.New("huffman: input ends inside a code word")
	ErrUnassignedCode  = errors.New("huffman: code word not assigned to any symbol")
)

// Errors reported when a Table is navigated incorrectly.
var (
	ErrEmptyTable      = errors.New("huffman: empty table")
	ErrNotInternalNode = errors.New("huffman: not an internal node")
	ErrNotALeaf        = errors.New("huffman: not a leaf node")
	ErrInvalidNode     = errors.New("huffman: node index out of range")
)
