package sfinxbis_test

import (
	"fmt"

	"github.com/aviklund/textdist/sfinxbis"
)

// ExampleEncode demonstrates coding a full name: one code per word,
// nobiliary particles stripped.
func ExampleEncode() {
	fmt.Println(sfinxbis.Encode("Sjöberg"))
	fmt.Println(sfinxbis.Encode("von Essen"))
	fmt.Println(sfinxbis.Encode("Sjöberg Smith"))
	// Output:
	// [#162]
	// [$85]
	// [#162 S53]
}

// ExampleEncodeMaxLen demonstrates truncated codes, handy for coarse
// blocking keys.
func ExampleEncodeMaxLen() {
	fmt.Println(sfinxbis.EncodeMaxLen("Christopher", 4))
	fmt.Println(sfinxbis.EncodeMaxLen("Christopher", 0))
	// Output:
	// [K683]
	// [K68376]
}
