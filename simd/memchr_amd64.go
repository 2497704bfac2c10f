//go:build amd64

package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasWideLanes reports whether the CPU has wide enough vector registers
// (AVX2) that processing two 8-byte SWAR lanes per iteration pays for the
// extra bookkeeping over the single-lane generic path. No actual AVX2
// instruction is issued here; the flag only picks between two pure-Go
// stride widths.
var hasWideLanes = cpu.X86.HasAVX2

// wideLaneThreshold is the minimum haystack length at which the 16-byte
// stride's extra setup is worth it over the 8-byte generic path.
const wideLaneThreshold = 32

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
func Memchr(haystack []byte, needle byte) int {
	if hasWideLanes && len(haystack) >= wideLaneThreshold {
		return memchrWide(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if hasWideLanes && len(haystack) >= wideLaneThreshold {
		return memchr2Wide(haystack, needle1, needle2)
	}
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if hasWideLanes && len(haystack) >= wideLaneThreshold {
		return memchr3Wide(haystack, needle1, needle2, needle3)
	}
	return memchr3Generic(haystack, needle1, needle2, needle3)
}

// memchrWide processes haystack 16 bytes at a time as two interleaved
// uint64 SWAR lanes, amortizing loop overhead across twice the bytes per
// iteration of the generic path.
func memchrWide(haystack []byte, needle byte) int {
	mask := repeatLanes(needle)

	i := 0
	for ; i+16 <= len(haystack); i += 16 {
		lo := binary.LittleEndian.Uint64(haystack[i:])
		hi := binary.LittleEndian.Uint64(haystack[i+8:])

		if z := zeroLanes(lo ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		if z := zeroLanes(hi ^ mask); z != 0 {
			return i + 8 + bits.TrailingZeros64(z)/8
		}
	}

	if rest := memchrGeneric(haystack[i:], needle); rest >= 0 {
		return i + rest
	}
	return -1
}

func memchr2Wide(haystack []byte, needle1, needle2 byte) int {
	mask1 := repeatLanes(needle1)
	mask2 := repeatLanes(needle2)

	i := 0
	for ; i+16 <= len(haystack); i += 16 {
		lo := binary.LittleEndian.Uint64(haystack[i:])
		hi := binary.LittleEndian.Uint64(haystack[i+8:])

		if z := zeroLanes(lo^mask1) | zeroLanes(lo^mask2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		if z := zeroLanes(hi^mask1) | zeroLanes(hi^mask2); z != 0 {
			return i + 8 + bits.TrailingZeros64(z)/8
		}
	}

	if rest := memchr2Generic(haystack[i:], needle1, needle2); rest >= 0 {
		return i + rest
	}
	return -1
}

func memchr3Wide(haystack []byte, needle1, needle2, needle3 byte) int {
	mask1 := repeatLanes(needle1)
	mask2 := repeatLanes(needle2)
	mask3 := repeatLanes(needle3)

	i := 0
	for ; i+16 <= len(haystack); i += 16 {
		lo := binary.LittleEndian.Uint64(haystack[i:])
		hi := binary.LittleEndian.Uint64(haystack[i+8:])

		if z := zeroLanes(lo^mask1) | zeroLanes(lo^mask2) | zeroLanes(lo^mask3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		if z := zeroLanes(hi^mask1) | zeroLanes(hi^mask2) | zeroLanes(hi^mask3); z != 0 {
			return i + 8 + bits.TrailingZeros64(z)/8
		}
	}

	if rest := memchr3Generic(haystack[i:], needle1, needle2, needle3); rest >= 0 {
		return i + rest
	}
	return -1
}
