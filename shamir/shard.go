package shamir

import (
	"github.com/mrz1836/shamir32/internal/gf32"
	"github.com/mrz1836/shamir32/internal/zbase32"
)

// IDLength is the fixed length, in bytes, of every Shard identifier.
const IDLength = 8

// Shard is a single evaluation of every one of a Dealer's polynomials
// at a common non-zero abscissa x, plus the framing metadata (threshold
// and secret length) that recovery reads from the shards themselves
// rather than from any outside source. Shard is immutable
// once minted by Dealer.NextShard or parsed off the wire.
type Shard struct {
	x         gf32.Elem
	ys        []gf32.Elem
	threshold uint32
	secretLen int
}

// ID returns the stable identifier for this shard: the literal 'h'
// followed by the z-base-32 (full-bytes, unpadded) rendering of the
// shard's x-coordinate. It is always exactly IDLength characters.
//
// Two shards with identical x share an identifier and are duplicates
// for recovery purposes; Shard and Dealer do not deduplicate.
func (s Shard) ID() string {
	b := s.x.Bytes()
	return "h" + zbase32.EncodeFullBytes(b[:])
}

// Threshold returns the number of unique sister shards required to
// recover the secret this shard was minted from.
func (s Shard) Threshold() uint32 { return s.threshold }

// SecretLen returns the original secret's byte length.
func (s Shard) SecretLen() int { return s.secretLen }

// Equal reports whether s and other carry identical field values.
// Used by tests to verify lossless wire round-trips.
func (s Shard) Equal(other Shard) bool {
	if s.x != other.x || s.threshold != other.threshold || s.secretLen != other.secretLen {
		return false
	}
	if len(s.ys) != len(other.ys) {
		return false
	}
	for i, y := range s.ys {
		if y != other.ys[i] {
			return false
		}
	}
	return true
}
