// Package simd provides byte-search primitives for the scanner's hot paths:
// single-byte and small multi-byte needle search (memchr family) and general
// substring search (memmem). The memchr family is pure Go SWAR (SIMD Within
// A Register): on amd64 it widens its stride when golang.org/x/sys/cpu
// reports AVX2 support, and falls back to an 8-byte-per-iteration stride
// everywhere else, so the scanner's fallthrough and stop-search loops don't
// pay a function-call-per-byte cost on long runs of non-matching input.
package simd
