package hpack

import "sync"

// huffmanNode is a node in the canonical Huffman decode tree. Leaves
// carry a symbol; internal nodes carry zero, one, or two children.
type huffmanNode struct {
	left, right *huffmanNode
	symbol      int
	leaf        bool
}

// HuffmanEncoder bit-packs bytes using the RFC 7541 Appendix B
// canonical code. It holds no mutable state and is safe for
// concurrent use; GetHuffmanEncoder returns the process-wide instance.
type HuffmanEncoder struct {
	codes   [256]uint32
	lengths [256]uint8
}

// HuffmanDecoder walks the canonical code's prefix tree. It holds no
// mutable state of its own; per-decode state lives in local variables
// of Decode.
type HuffmanDecoder struct {
	root *huffmanNode
}

var (
	globalEncoder   *HuffmanEncoder
	globalDecoder   *HuffmanDecoder
	huffmanInitOnce sync.Once
)

func initHuffman() {
	globalEncoder = newHuffmanEncoder()
	globalDecoder = newHuffmanDecoder()
}

// GetHuffmanEncoder returns the process-wide Huffman encoder,
// building it on first call.
func GetHuffmanEncoder() *HuffmanEncoder {
	huffmanInitOnce.Do(initHuffman)
	return globalEncoder
}

// GetHuffmanDecoder returns the process-wide Huffman decoder,
// building it on first call.
func GetHuffmanDecoder() *HuffmanDecoder {
	huffmanInitOnce.Do(initHuffman)
	return globalDecoder
}

func newHuffmanEncoder() *HuffmanEncoder {
	enc := &HuffmanEncoder{}
	for _, entry := range huffmanTable {
		if entry[0] == huffmanEOS {
			continue
		}
		enc.codes[entry[0]] = entry[1]
		enc.lengths[entry[0]] = uint8(entry[2])
	}
	return enc
}

func newHuffmanDecoder() *HuffmanDecoder {
	root := &huffmanNode{}
	for _, entry := range huffmanTable {
		symbol, code, length := int(entry[0]), entry[1], entry[2]
		node := root
		for i := int(length) - 1; i >= 0; i-- {
			bit := (code >> uint(i)) & 1
			if bit == 0 {
				if node.left == nil {
					node.left = &huffmanNode{}
				}
				node = node.left
			} else {
				if node.right == nil {
					node.right = &huffmanNode{}
				}
				node = node.right
			}
		}
		node.leaf = true
		node.symbol = symbol
	}
	return &HuffmanDecoder{root: root}
}

// Encode Huffman-encodes input, MSB-first, padding the final partial
// byte with 1-bits (the high bits of the EOS code).
func (e *HuffmanEncoder) Encode(input []byte) []byte {
	out := make([]byte, 0, EncodedLen(input))
	var acc uint64
	var nbits uint

	for _, b := range input {
		code := uint64(e.codes[b])
		length := uint(e.lengths[b])
		acc = (acc << length) | code
		nbits += length
		for nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
		}
	}
	if nbits > 0 {
		pad := 8 - nbits
		acc = (acc << pad) | (1<<pad - 1)
		out = append(out, byte(acc))
	}
	return out
}

// EncodedLen returns the number of bytes Encode(input) will produce,
// without allocating the output.
func EncodedLen(input []byte) int {
	enc := GetHuffmanEncoder()
	var bits int
	for _, b := range input {
		bits += int(enc.lengths[b])
	}
	return (bits + 7) / 8
}

// ShouldHuffmanEncode reports whether Huffman-encoding input is
// strictly shorter than sending it literally, the usual heuristic an
// encoder applies before setting the Huffman flag.
func ShouldHuffmanEncode(input []byte) bool {
	return EncodedLen(input) < len(input)
}

// Decode walks input bit by bit through the canonical tree, emitting
// one byte per leaf reached. It rejects a decoded EOS symbol and
// validates end-of-stream padding per RFC 7541 §5.2: the trailing
// partial path (if any) must be no deeper than 7 bits and consist
// entirely of 1-bits.
func (d *HuffmanDecoder) Decode(input []byte) ([]byte, error) {
	out := make([]byte, 0, len(input)*2)
	node := d.root
	depth := 0
	padding := true

	for _, b := range input {
		for i := 7; i >= 0; i-- {
			bit := (b >> uint(i)) & 1
			if bit == 0 {
				if node.left == nil {
					return nil, ErrHuffmanInvalidCode
				}
				node = node.left
				padding = false
			} else {
				if node.right == nil {
					return nil, ErrHuffmanInvalidCode
				}
				node = node.right
			}
			depth++

			if node.leaf {
				if node.symbol == huffmanEOS {
					return nil, ErrHuffmanEOS
				}
				out = append(out, byte(node.symbol))
				node = d.root
				depth = 0
				padding = true
			}
		}
	}

	if depth == 0 {
		return out, nil
	}
	if depth <= 7 && padding {
		return out, nil
	}
	return nil, ErrHuffmanPadding
}
