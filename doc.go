// Package huffman builds Huffman codes for weighted alphabets and uses them to
// encode sequences of symbols as bits and to decode them again.
//
// A Table is built once from an Alphabet and is read-only afterward.  Encoders
// and Decoders walk the Table; bits flow through the BitSink and BitSource
// interfaces, either as in-memory Bits or packed into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
