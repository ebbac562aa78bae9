package hpack

import (
	"errors"
	"fmt"
)

// DefaultHeaderTableSize is RFC 7541 §6.5.2's initial value for
// SETTINGS_HEADER_TABLE_SIZE.
const DefaultHeaderTableSize = 4096

// Packer encodes and decodes header fields for one connection side.
// It owns two independent dynamic tables — one mirroring what this
// side has told its peer to index, one mirroring what the peer has
// told this side to index — and is not safe for concurrent use.
//
// A Packer must be discarded after any Decode error: the decode-side
// dynamic table may have been left partially mutated by an earlier,
// now-abandoned representation, and HPACK's shared state desyncs
// fatally once that happens.
type Packer struct {
	encodeTable *table
	decodeTable *table
}

// New constructs a Packer. Call Init before using it.
func New() *Packer {
	return &Packer{}
}

// Init allocates the encoder- and decoder-side dynamic tables, both
// bounded by maxTableSize and both starting at external index
// StaticCount+1.
func (p *Packer) Init(maxTableSize uint32) error {
	start := StaticCount + 1
	p.encodeTable = newTable(int(maxTableSize), start, true, "encoder")
	p.decodeTable = newTable(int(maxTableSize), start, false, "decoder")
	logInit(int(maxTableSize))
	return nil
}

// Encode writes one header field representation to sink per
// RFC 7541 §6, choosing the smallest representation options permit
// and mutating the encoder's dynamic table for the Incremental
// policy. It returns the number of bytes written.
func (p *Packer) Encode(sink Sink, h Header, opts Options) (int, error) {
	if opts.IndexPolicy != NeverIndexed {
		if idx := p.indexOfHeader(h); idx != 0 {
			n, err := EncodeInteger(sink, 0x80, 7, uint64(idx))
			if err != nil {
				return 0, err
			}
			logRepresentation("indexed", idx, h)
			return n, nil
		}
	}

	nameIdx := p.indexOfName(h.Name)

	if opts.IndexPolicy == Incremental {
		p.encodeTable.addHeader(h)
	}

	var msb byte
	var width uint
	var kind string
	switch opts.IndexPolicy {
	case Incremental:
		msb, width, kind = 0x40, 6, "literal-incremental"
	case NotIndexed:
		msb, width, kind = 0x00, 4, "literal-not-indexed"
	case NeverIndexed:
		msb, width, kind = 0x10, 4, "literal-never-indexed"
	default:
		return 0, fmt.Errorf("hpack: unknown index policy %v", opts.IndexPolicy)
	}

	total := 0
	n, err := EncodeInteger(sink, msb, width, uint64(nameIdx))
	if err != nil {
		return total, err
	}
	total += n

	if nameIdx == 0 {
		n, err = encodeString(sink, h.Name, opts.EncodeName)
		if err != nil {
			return total, err
		}
		total += n
	}

	n, err = encodeString(sink, h.Value, opts.EncodeValue)
	if err != nil {
		return total, err
	}
	total += n

	logRepresentation(kind, nameIdx, h)
	return total, nil
}

// indexOfHeader looks up a full (name,value) match across the static
// table first, then the encoder's dynamic table.
func (p *Packer) indexOfHeader(h Header) int {
	if idx := staticIndexOfHeader(h); idx != 0 {
		return idx
	}
	return p.encodeTable.indexOfHeader(h)
}

// indexOfName looks up a name-only match across the static table
// first, then the encoder's dynamic table.
func (p *Packer) indexOfName(name string) int {
	if idx := staticIndexOfName(name); idx != 0 {
		return idx
	}
	return p.encodeTable.indexOfName(name)
}

// headerAt resolves an external index across the combined
// static-then-dynamic index space on the decode side.
func (p *Packer) headerAt(i int) (Header, bool) {
	if h, ok := staticHeaderAt(i); ok {
		return h, true
	}
	return p.decodeTable.headerAt(i)
}

// Decode reads exactly one header field representation from src.
// On success it returns the number of bytes consumed and sets *out.
// On ErrIncomplete it consumes nothing and the caller should retry
// once more bytes arrive. Any other error is fatal; the Packer must
// be discarded.
func (p *Packer) Decode(src *Source, out *Header) (int, error) {
	mark := src.Mark()

	n, err := p.decode(src, out)
	if err != nil {
		src.Rewind(mark)
		if !errors.Is(err, ErrIncomplete) {
			logDecodeError(err)
		}
		return 0, err
	}
	return n, nil
}

func (p *Packer) decode(src *Source, out *Header) (int, error) {
	first, ok := src.Peek()
	if !ok {
		return 0, ErrIncomplete
	}

	switch {
	case first&0x80 != 0: // 1xxxxxxx: Indexed Header Field
		n, idx, err := DecodeInteger(src, 7)
		if err != nil {
			return 0, err
		}
		h, ok := p.headerAt(int(idx))
		if !ok {
			return 0, ErrInvalidIndex
		}
		*out = h
		return n, nil

	case first&0xc0 == 0x40: // 01xxxxxx: Literal with incremental indexing
		n, h, err := p.decodeLiteral(src, 6)
		if err != nil {
			return 0, err
		}
		p.decodeTable.addHeader(h)
		*out = h
		return n, nil

	case first&0xe0 == 0x20: // 001xxxxx: Dynamic table size update
		return 0, ErrTableSizeUpdateUnsupported

	case first&0xf0 == 0x10: // 0001xxxx: Literal never indexed
		n, h, err := p.decodeLiteral(src, 4)
		if err != nil {
			return 0, err
		}
		*out = h
		return n, nil

	case first&0xf0 == 0x00: // 0000xxxx: Literal without indexing
		n, h, err := p.decodeLiteral(src, 4)
		if err != nil {
			return 0, err
		}
		*out = h
		return n, nil

	default:
		return 0, ErrUnknownRepresentation
	}
}

// decodeLiteral decodes the shared tail of the three literal
// representations: a name-or-index prefix integer of the given
// width, followed by a value string, with the name resolved either
// from the combined table or from its own string literal.
func (p *Packer) decodeLiteral(src *Source, width uint) (int, Header, error) {
	total := 0

	n, idx, err := DecodeInteger(src, width)
	if err != nil {
		return 0, Header{}, err
	}
	total += n

	var name string
	if idx != 0 {
		h, ok := p.headerAt(int(idx))
		if !ok {
			return 0, Header{}, ErrInvalidIndex
		}
		name = h.Name
	} else {
		n, decodedName, err := decodeString(src)
		if err != nil {
			return 0, Header{}, err
		}
		total += n
		name = decodedName
	}

	n, value, err := decodeString(src)
	if err != nil {
		return 0, Header{}, err
	}
	total += n

	return total, Header{Name: name, Value: value}, nil
}
