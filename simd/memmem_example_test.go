package simd_test

import (
	"fmt"

	"github.com/coregx/bytescan/simd"
)

func ExampleMemmem() {
	line := []byte(`name = "value" # trailing comment`)

	pos := simd.Memmem(line, []byte(" # "))
	if pos >= 0 {
		fmt.Printf("comment starts at %d\n", pos)
	}
	// Output: comment starts at 14
}

func ExampleMemchr() {
	line := []byte("key=value")

	pos := simd.Memchr(line, '=')
	fmt.Printf("key is %s\n", line[:pos])
	// Output: key is key
}
