package millar

import (
	"math"

	"github.com/aviklund/textdist/tokenizer"
)

// Millar computes the Millar distance between two strings' token
// frequency distributions. It is immutable after New and safe for
// concurrent use.
//
// Algorithm outline:
//  1. Tokenize src and tar with the shared tokenizer → mappings A, B.
//  2. alphabet = union of tokens observed in A or B.
//  3. For each token t in the alphabet, with n = A[t] + B[t] (> 0 by
//     construction):
//     aVal = A[t]·ln(A[t]/n)  (0 when A[t] == 0)
//     bVal = B[t]·ln(B[t]/n)  (0 when B[t] == 0)
//     contribution = (aVal + bVal + n·ln 2) / n
//  4. Sum contributions; a total ≤ 0 (float underflow) is clamped to 0.
//
// Each per-token term is a Jensen–Shannon-style divergence in nats and
// is non-negative by Gibbs' inequality; tiny negative round-off is
// tolerated by the final clamp rather than per-term clamps.
//
// Guarantees:
//   - Dist(a, b) ≥ 0 for all inputs.
//   - Dist(s, s) == 0 exactly; two empty strings yield an empty
//     alphabet and exactly 0.
//   - Dist(a, b) == Dist(b, a) up to float accumulation order.
//
// Complexity: O(len(src)+len(tar)) time, O(distinct tokens) memory.
type Millar struct {
	tok *tokenizer.Tokenizer
}

// New builds a Millar combinator over the given tokenization scheme.
// It fails fast with the tokenizer's sentinel errors on invalid options.
func New(opts tokenizer.Options) (*Millar, error) {
	tok, err := tokenizer.New(opts)
	if err != nil {
		return nil, err
	}

	return &Millar{tok: tok}, nil
}

// NewDefault returns a Millar combinator over the default padded
// bigram scheme. It cannot fail.
func NewDefault() *Millar {
	m, _ := New(tokenizer.DefaultOptions())

	return m
}

// Dist returns the Millar distance of src and tar. Range: [0, +∞),
// 0 meaning identical token distributions. Never fails.
func (m *Millar) Dist(src, tar string) float64 {
	srcTok := m.tok.Tokenize(src)
	tarTok := m.tok.Tokenize(tar)

	log2 := math.Log(2)
	var score float64
	for _, tok := range srcTok.Alphabet(tarTok) {
		sc, tc := srcTok[tok], tarTok[tok]
		n := float64(sc + tc)

		var srcVal, tarVal float64
		if sc > 0 {
			srcVal = float64(sc) * math.Log(float64(sc)/n)
		}
		if tc > 0 {
			tarVal = float64(tc) * math.Log(float64(tc)/n)
		}

		score += (srcVal + tarVal + n*log2) / n
	}

	if score > 0 {
		return score
	}

	return 0.0
}
