package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. It is equivalent to bytes.Index, accelerated
// by probing for a single distinctive needle byte with Memchr and verifying
// the full needle only at the candidate positions that probe reports.
func Memmem(haystack, needle []byte) int {
	n := len(needle)

	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	// Probe for the needle's last byte: endings discriminate better than
	// beginnings in text-shaped input, and the probe's fixed position pins
	// the candidate start without a second search. A candidate at offset i
	// implies the needle would start at i-(n-1) and end at i+1, so the
	// verify window never runs past the haystack.
	probe := needle[n-1]

	// Earliest offset the probe can sit at with room for the needle's
	// n-1 preceding bytes.
	from := n - 1
	for from < len(haystack) {
		i := Memchr(haystack[from:], probe)
		if i < 0 {
			return -1
		}

		start := from + i - (n - 1)
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}

		from += i + 1
	}

	return -1
}
