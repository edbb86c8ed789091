package unknownq_test

import (
	"strings"
	"testing"

	"github.com/aviklund/textdist/unknownq"
)

// benchmarkSim runs Sim on two synthetic strings of n runes each.
func benchmarkSim(b *testing.B, n int) {
	cmp := unknownq.NewDefault()
	src := strings.Repeat("abcdefghij", n/10+1)[:n]
	tar := strings.Repeat("abcdefghik", n/10+1)[:n]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cmp.Sim(src, tar)
	}
}

// BenchmarkUnknownQ_Sim100 benchmarks 100-rune inputs.
func BenchmarkUnknownQ_Sim100(b *testing.B) { benchmarkSim(b, 100) }

// BenchmarkUnknownQ_Sim10k benchmarks 10k-rune inputs.
func BenchmarkUnknownQ_Sim10k(b *testing.B) { benchmarkSim(b, 10_000) }
