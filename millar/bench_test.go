package millar_test

import (
	"strings"
	"testing"

	"github.com/aviklund/textdist/millar"
)

// benchmarkDist runs Dist on two synthetic strings of n runes each.
func benchmarkDist(b *testing.B, n int) {
	cmp := millar.NewDefault()
	src := strings.Repeat("abcdefghij", n/10+1)[:n]
	tar := strings.Repeat("abcdefghik", n/10+1)[:n]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cmp.Dist(src, tar)
	}
}

// BenchmarkMillar_Dist100 benchmarks 100-rune inputs.
func BenchmarkMillar_Dist100(b *testing.B) { benchmarkDist(b, 100) }

// BenchmarkMillar_Dist10k benchmarks 10k-rune inputs.
func BenchmarkMillar_Dist10k(b *testing.B) { benchmarkDist(b, 10_000) }
