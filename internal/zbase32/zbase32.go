// Package zbase32 implements Zooko's base-32 alphabet, optimized for
// human transcription, in "full bytes" mode: it encodes the exact bit
// length of the input with no padding character, unlike RFC 4648
// base32.
package zbase32

const alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"

// EncodeFullBytes encodes data using the Zooko z-base-32 alphabet,
// emitting ceil(8*len(data)/5) characters with no padding.
func EncodeFullBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	bitCount := len(data) * 8
	charCount := (bitCount + 4) / 5

	out := make([]byte, charCount)
	for i := 0; i < charCount; i++ {
		out[i] = alphabet[bitsAt(data, i*5)]
	}
	return string(out)
}

// bitsAt reads up to 5 bits starting at bitPos, zero-filling past the
// end of data, and returns them as the low bits of a byte.
func bitsAt(data []byte, bitPos int) byte {
	var v byte
	for i := 0; i < 5; i++ {
		pos := bitPos + i
		byteIdx := pos / 8
		var bit byte
		if byteIdx < len(data) {
			shift := uint(7 - pos%8)
			bit = (data[byteIdx] >> shift) & 1
		}
		v = v<<1 | bit
	}
	return v
}
