package norphone_test

import (
	"testing"

	"github.com/aviklund/textdist/norphone"
)

var benchNames = []string{
	"Hansen", "Larsen", "Aagaard", "Braaten", "Sandvik", "Kristiansen",
}

// BenchmarkEncode measures single-word coding over Norwegian names.
func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		norphone.Encode(benchNames[i%len(benchNames)])
	}
}
