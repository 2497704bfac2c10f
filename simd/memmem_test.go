package simd

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty needle", "hello", "", 0},
		{"both empty", "", "", 0},
		{"empty haystack", "", "x", -1},
		{"needle longer than haystack", "ab", "abc", -1},
		{"single byte", "hello world", "w", 6},
		{"at start", "hello world", "hello", 0},
		{"at end", "hello world", "world", 6},
		{"whole haystack", "hello", "hello", 0},
		{"not present", "hello world", "xyz", -1},
		{"probe byte present, needle absent", "abxcbx", "abc", -1},
		{"repeated prefix", "aaaaaabaaaa", "aab", 4},
		{"overlapping candidates", "banana", "ana", 1},
		{"second candidate wins", "xx-end yy-end", "yy-end", 7},
		{"crlf delimiter", "Content-Type: text/plain\r\nContent-Length: 12\r\n", "\r\n", 24},
		{"long needle", strings.Repeat("ab", 30) + "needle-tail", strings.Repeat("ab", 5) + "needle-tail", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != tt.want {
				t.Fatalf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemmemMatchesStdlib(t *testing.T) {
	// Small alphabet so needles both hit and miss often, with plenty of
	// near-miss candidates for the probe byte.
	buf := testBuffer(2048)
	haystack := make([]byte, len(buf))
	for i, b := range buf {
		haystack[i] = 'a' + b%4
	}

	for nlen := 1; nlen <= 40; nlen++ {
		for _, at := range []int{0, 1, 17, 500, 1990} {
			if at+nlen > len(haystack) {
				continue
			}
			needle := haystack[at : at+nlen]

			want := bytes.Index(haystack, needle)
			if got := Memmem(haystack, needle); got != want {
				t.Fatalf("Memmem(needle %q from offset %d) = %d, bytes.Index = %d", needle, at, got, want)
			}
		}

		absent := append(bytes.Repeat([]byte{'a'}, nlen-1), 'z')
		if got := Memmem(haystack, absent); got != -1 {
			t.Fatalf("Memmem(%q) = %d, want -1 for a needle containing a byte outside the alphabet", absent, got)
		}
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), 1024)
	needle := []byte("consectetur")
	haystack = append(haystack, needle...)

	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Memmem(haystack, needle) < 0 {
			b.Fatal("needle not found")
		}
	}
}
