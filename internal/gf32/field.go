// Package gf32 implements arithmetic over GF(2^32), the binary finite
// field of order 2^32 used as the substrate for Shamir secret sharing.
//
// Elements are represented as a plain uint32. Addition and subtraction
// are XOR, as in any characteristic-2 field. Multiplication is
// carry-less polynomial multiplication followed by reduction against a
// fixed degree-32 irreducible polynomial; inversion uses Fermat's
// little theorem (a^(2^32-2) = a^-1 for a != 0).
//
// This mirrors, at a larger scale, the log/exp-table construction used
// for GF(2^8) elsewhere in this codebase's lineage: a table with 2^32
// entries is infeasible, so multiplication here is computed directly
// instead of looked up.
package gf32

import (
	"encoding/binary"
	"io"
)

// Elem is a single element of GF(2^32).
type Elem uint32

// Zero is the additive identity.
const Zero Elem = 0

// reductionPoly is the degree-32 irreducible polynomial used to reduce
// products back into the field. Its low 32 bits are the CRC-32
// (Ethernet) polynomial 0x04C11DB7; the implicit x^32 term is the bit
// above it, giving the full 33-bit polynomial
// x^32+x^26+x^23+x^22+x^16+x^12+x^11+x^10+x^8+x^7+x^5+x^4+x^2+x+1.
// CRC-32's polynomial is primitive, so it generates a field of exactly
// the required order.
const reductionPoly uint64 = 1<<32 | 0x04C11DB7

// Add returns a+b in GF(2^32). Addition is XOR in a characteristic-2
// field.
func Add(a, b Elem) Elem { return a ^ b }

// Sub returns a-b in GF(2^32). Subtraction is identical to addition.
func Sub(a, b Elem) Elem { return a ^ b }

// Mul returns a*b in GF(2^32).
func Mul(a, b Elem) Elem {
	return Elem(reduce(carrylessMul(uint32(a), uint32(b))))
}

// carrylessMul computes the carry-less (polynomial) product of a and
// b, without any modular reduction. The result occupies up to 63 bits.
func carrylessMul(a, b uint32) uint64 {
	var result uint64
	bb := uint64(b)
	for i := 0; i < 32; i++ {
		if (a>>uint(i))&1 == 1 {
			result ^= bb << uint(i)
		}
	}
	return result
}

// reduce folds a product of up to 63 bits back into 32 bits modulo
// reductionPoly.
func reduce(c uint64) uint32 {
	for i := 62; i >= 32; i-- {
		if c&(uint64(1)<<uint(i)) != 0 {
			c ^= reductionPoly << uint(i-32)
		}
	}
	return uint32(c)
}

// Inverse returns the multiplicative inverse of a. a must be non-zero;
// Inverse(Zero) is a programmer error and panics, matching the
// contract that zero has no inverse.
func Inverse(a Elem) Elem {
	if a == Zero {
		panic("gf32: inverse of zero is undefined")
	}
	// a^(2^32-2), by square-and-multiply.
	var result Elem = 1
	base := a
	const exp uint32 = 0xFFFFFFFE
	for e := exp; e != 0; e >>= 1 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
	}
	return result
}

// Bytes returns the canonical 4-byte big-endian encoding of e.
func (e Elem) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(e))
	return b
}

// FromBytes parses up to 4 bytes into an Elem, zero-padding on the
// right if fewer than 4 bytes are given. This is how a short trailing
// chunk of a secret is embedded into the field.
func FromBytes(b []byte) Elem {
	var buf [4]byte
	copy(buf[:], b)
	return Elem(binary.BigEndian.Uint32(buf[:]))
}

// Random draws a uniformly random element of GF(2^32) from r, which
// must be a cryptographically secure source.
func Random(r io.Reader) (Elem, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Zero, err
	}
	return Elem(binary.BigEndian.Uint32(buf[:])), nil
}

// RandomNonZero draws a uniformly random non-zero element of GF(2^32)
// by rejection sampling.
func RandomNonZero(r io.Reader) (Elem, error) {
	for {
		e, err := Random(r)
		if err != nil {
			return Zero, err
		}
		if e != Zero {
			return e, nil
		}
	}
}
