// Package conv provides safe integer conversion helpers for the scanning
// toolkit.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a stream reporting a size no in-memory buffer
// could hold).
package conv

import "math"

// Int64ToInt safely converts an int64 to int.
// Panics if n < 0 or n overflows int (relevant on 32-bit platforms).
//
//go:inline
func Int64ToInt(n int64) int {
	if n < 0 || n > math.MaxInt {
		panic("integer overflow: int64 value out of int range")
	}
	return int(n)
}
