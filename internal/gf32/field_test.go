package gf32

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleElems(t *testing.T, n int) []Elem {
	t.Helper()
	elems := make([]Elem, n)
	for i := range elems {
		e, err := Random(rand.Reader)
		require.NoError(t, err)
		elems[i] = e
	}
	return elems
}

func TestAddIsXOR(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Elem(0x0F0F0F0F^0xF0F0F0F0), Add(0x0F0F0F0F, 0xF0F0F0F0))
	assert.Equal(t, Elem(0), Add(42, 42))
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	t.Parallel()
	elems := sampleElems(t, 64)
	for i := 0; i+2 < len(elems); i += 3 {
		a, b, c := elems[i], elems[i+1], elems[i+2]
		assert.Equal(t, Add(a, b), Add(b, a), "commutativity")
		assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)), "associativity")
	}
}

func TestMulCommutativeAssociativeDistributive(t *testing.T) {
	t.Parallel()
	elems := sampleElems(t, 64)
	for i := 0; i+2 < len(elems); i += 3 {
		a, b, c := elems[i], elems[i+1], elems[i+2]
		assert.Equal(t, Mul(a, b), Mul(b, a), "commutativity")
		assert.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)), "associativity")
		assert.Equal(t, Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)), "distributivity")
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	t.Parallel()
	elems := sampleElems(t, 32)
	for _, a := range elems {
		assert.Equal(t, a, Mul(a, 1))
		assert.Equal(t, Zero, Mul(a, Zero))
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()
	elems := sampleElems(t, 64)
	for _, a := range elems {
		if a == Zero {
			continue
		}
		inv := Inverse(a)
		assert.Equal(t, Elem(1), Mul(a, inv), "a * a^-1 must equal 1")
	}
	// A handful of small, deterministic values too.
	for _, a := range []Elem{1, 2, 3, 0xFFFFFFFF, 0x80000000} {
		assert.Equal(t, Elem(1), Mul(a, Inverse(a)))
	}
}

func TestInverseOfZeroPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		Inverse(Zero)
	})
}

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()
	elems := sampleElems(t, 32)
	for _, e := range elems {
		b := e.Bytes()
		assert.Equal(t, e, FromBytes(b[:]))
	}
}

func TestFromBytesZeroPadsShortInput(t *testing.T) {
	t.Parallel()
	full := FromBytes([]byte{0x01, 0x02, 0x03, 0x04})
	short := FromBytes([]byte{0x01, 0x02, 0x03})

	fb := full.Bytes()
	sb := short.Bytes()
	assert.True(t, bytes.Equal(fb[:3], sb[:3]))
	assert.Equal(t, byte(0), sb[3], "short input is zero-padded on the right")
}

func TestRandomNonZeroNeverZero(t *testing.T) {
	t.Parallel()
	for i := 0; i < 1000; i++ {
		e, err := RandomNonZero(rand.Reader)
		require.NoError(t, err)
		assert.NotEqual(t, Zero, e)
	}
}

func TestRandomErrorPropagates(t *testing.T) {
	t.Parallel()
	_, err := Random(failingReader{})
	assert.Error(t, err)

	_, err = RandomNonZero(failingReader{})
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
