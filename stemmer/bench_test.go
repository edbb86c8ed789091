package stemmer_test

import (
	"testing"

	"github.com/aviklund/textdist/stemmer"
)

var benchWords = []string{
	"relational", "conditional", "hopefulness", "singing", "agreed",
	"generate", "knightly", "caresses", "adjustment", "sky",
}

// BenchmarkPorter measures the classic stemmer over a mixed word list.
func BenchmarkPorter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		stemmer.Porter(benchWords[i%len(benchWords)])
	}
}

// BenchmarkPorter2 measures the Snowball revision over the same list.
func BenchmarkPorter2(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		stemmer.Porter2(benchWords[i%len(benchWords)])
	}
}
