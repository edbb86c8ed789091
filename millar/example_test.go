package millar_test

import (
	"fmt"

	"github.com/aviklund/textdist/millar"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMillar_Dist
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compare surname spellings under the default padded bigram scheme.
//	"cat" and "hat" share their tail bigrams (at, t#) but differ in the
//	head ($c/ca vs $h/ha), so four unshared bigrams contribute ln 2 each.
//
// Use case:
//
//	Ranking near-duplicate name candidates where larger scores mean more
//	divergent q-gram distributions.
//
// ExampleMillar_Dist demonstrates identity, a close pair and a disjoint pair.
func ExampleMillar_Dist() {
	cmp := millar.NewDefault()

	fmt.Printf("cat vs cat: %.4f\n", cmp.Dist("cat", "cat"))
	fmt.Printf("cat vs hat: %.4f\n", cmp.Dist("cat", "hat"))
	fmt.Printf("ATCG vs TAGC: %.4f\n", cmp.Dist("ATCG", "TAGC"))
	// Output:
	// cat vs cat: 0.0000
	// cat vs hat: 2.7726
	// ATCG vs TAGC: 6.9315
}
