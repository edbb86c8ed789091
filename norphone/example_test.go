package norphone_test

import (
	"fmt"

	"github.com/aviklund/textdist/norphone"
)

// ExampleEncode demonstrates the consonant-skeleton code and how
// spelling variants of a name collide.
func ExampleEncode() {
	fmt.Println(norphone.Encode("Hansen"))
	fmt.Println(norphone.Encode("Hanssen"))
	fmt.Println(norphone.Encode("Aagaard"))
	// Output:
	// HNSN
	// HNSN
	// ÅKRT
}
