package hpack

import "errors"

// Sentinel errors returned by the codec. Decode errors fall into two
// classes: ErrIncomplete is retryable (the caller owns more bytes that
// haven't arrived yet), everything else is fatal and the owning
// HPacker must be torn down since the dynamic table may have been
// partially mutated.
var (
	// ErrIncomplete is returned when a Decode call needs more bytes
	// than the Source currently holds. No state is mutated and the
	// caller should retry the identical call once more data arrives.
	ErrIncomplete = errors.New("hpack: incomplete input")

	// ErrIntegerOverflow is returned when a prefix integer would grow
	// past MaxHPACKInteger before terminating.
	ErrIntegerOverflow = errors.New("hpack: integer overflow")

	// ErrHuffmanInvalidCode is returned when the Huffman decoder
	// descends past a tree node with no child for the next bit.
	ErrHuffmanInvalidCode = errors.New("hpack: invalid huffman code")

	// ErrHuffmanEOS is returned when the Huffman decoder reaches the
	// EOS leaf, which must never be legally decoded.
	ErrHuffmanEOS = errors.New("hpack: huffman stream decoded EOS symbol")

	// ErrHuffmanPadding is returned when a Huffman stream ends with an
	// invalid trailing bit pattern (depth > 7, or the trailing bits
	// are not all ones).
	ErrHuffmanPadding = errors.New("hpack: invalid huffman padding")

	// ErrInvalidIndex is returned when a representation references an
	// index outside the combined static+dynamic table.
	ErrInvalidIndex = errors.New("hpack: index out of range")

	// ErrTableSizeUpdateUnsupported is returned on decode of a dynamic
	// table size update representation (0x20 family); this codec
	// never emits one and rejects receiving one.
	ErrTableSizeUpdateUnsupported = errors.New("hpack: dynamic table size update not supported")

	// ErrUnknownRepresentation is returned when the first byte of a
	// header-field representation matches none of the five patterns
	// defined by RFC 7541 §6.
	ErrUnknownRepresentation = errors.New("hpack: unknown header field representation")
)
