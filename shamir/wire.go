package shamir

import (
	"encoding/binary"

	"github.com/mrz1836/shamir32/internal/gf32"
)

// ToWire encodes the shard as the concatenation of unsigned LEB128
// varints, in order: x, len(ys), each y in ys, threshold, secretLen.
// The encoding is self-delimiting only together with an enclosing
// container's own framing; it carries no magic number or version tag.
func (s Shard) ToWire() []byte {
	buf := make([]byte, 0, (len(s.ys)+4)*binary.MaxVarintLen32)
	buf = binary.AppendUvarint(buf, uint64(s.x))
	buf = binary.AppendUvarint(buf, uint64(len(s.ys)))
	for _, y := range s.ys {
		buf = binary.AppendUvarint(buf, uint64(y))
	}
	buf = binary.AppendUvarint(buf, uint64(s.threshold))
	buf = binary.AppendUvarint(buf, uint64(s.secretLen))
	return buf
}

// ShardFromWire decodes a shard, requiring the input to be consumed
// exactly; any trailing bytes are an error.
func ShardFromWire(input []byte) (Shard, error) {
	shard, rest, err := ShardFromWirePartial(input)
	if err != nil {
		return Shard{}, err
	}
	if len(rest) != 0 {
		return Shard{}, wireErr(len(input)-len(rest), ErrTrailingData)
	}
	return shard, nil
}

// ShardFromWirePartial decodes a shard from the front of input and
// returns the unconsumed tail, allowing callers to frame multiple
// shards (or other data) back to back.
func ShardFromWirePartial(input []byte) (Shard, []byte, error) {
	offset := 0

	x, rest, err := readUvarint(input, offset)
	if err != nil {
		return Shard{}, nil, err
	}
	offset += len(input) - len(rest)
	input = rest

	ysLen, rest, err := readUvarint(input, offset)
	if err != nil {
		return Shard{}, nil, err
	}
	offset += len(input) - len(rest)
	input = rest

	// Each y needs at least one byte on the wire; reject an obviously
	// bogus length prefix before allocating.
	if ysLen > uint64(len(input)) {
		return Shard{}, nil, wireErr(offset, ErrShardTooLarge)
	}

	ys := make([]gf32.Elem, ysLen)
	for i := range ys {
		y, r, err := readUvarint(input, offset)
		if err != nil {
			return Shard{}, nil, err
		}
		offset += len(input) - len(r)
		input = r
		ys[i] = gf32.Elem(y)
	}

	threshold, rest, err := readUvarint(input, offset)
	if err != nil {
		return Shard{}, nil, err
	}
	offset += len(input) - len(rest)
	input = rest

	secretLen, rest, err := readUvarint(input, offset)
	if err != nil {
		return Shard{}, nil, err
	}

	return Shard{
		x:         gf32.Elem(x),
		ys:        ys,
		threshold: uint32(threshold),
		secretLen: int(secretLen),
	}, rest, nil
}

// readUvarint decodes one unsigned LEB128 varint from the front of b,
// reporting failures with the byte offset they occurred at (relative
// to the start of the original input, via baseOffset).
func readUvarint(b []byte, baseOffset int) (uint64, []byte, error) {
	v, n := binary.Uvarint(b)
	switch {
	case n == 0:
		return 0, nil, wireErr(baseOffset, ErrTruncatedVarint)
	case n < 0:
		return 0, nil, wireErr(baseOffset, ErrVarintOverflow)
	default:
		return v, b[n:], nil
	}
}
