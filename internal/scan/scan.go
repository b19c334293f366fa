// Package scan provides byte-oriented scanning primitives for map parsing:
// locating a byte, locating digits, and checking ASCII-ness.
//
// ByteIndex and IsASCII use the SWAR (SIMD Within A Register) technique to
// process 8 bytes at a time via uint64 bitwise operations (DigitIndex is a
// plain byte loop), rather than hand-written
// architecture-specific assembly: puzzle maps are small grids (at most a
// few hundred cells), so there is no hot loop here wide enough to justify
// authoring and maintaining AVX2 assembly for it. See DESIGN.md for the
// fuller account of why an amd64 dispatch path was dropped.
package scan

import (
	"encoding/binary"
	"math/bits"
)

// ByteIndex returns the index of the first occurrence of needle in
// haystack, or -1 if absent.
func ByteIndex(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes of a uint64.
	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask

		// Zero-byte detection (Hacker's Delight): a byte in xor is zero
		// exactly where haystack matched needle.
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}
	return -1
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// DigitIndex returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if none is present. Used by the loader to enumerate piece cells.
func DigitIndex(haystack []byte) int {
	for i, b := range haystack {
		if isDigit(b) {
			return i
		}
	}
	return -1
}

// DigitIndexAt returns the index of the first digit at or after position at,
// or -1 if none is found.
func DigitIndexAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}
	pos := DigitIndex(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}

// IsASCII reports whether every byte in data has its high bit clear.
// Map files are plain ASCII text; this gives the loader a cheap way to
// reject stray multi-byte input before glyph-by-glyph validation runs.
func IsASCII(data []byte) bool {
	dataLen := len(data)
	if dataLen == 0 {
		return true
	}

	if dataLen < 8 {
		for i := 0; i < dataLen; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)
	idx := 0
	for idx+8 <= dataLen {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for idx < dataLen {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}
	return true
}
