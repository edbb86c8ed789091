package millar_test

import (
	"math"
	"testing"

	"github.com/aviklund/textdist/millar"
	"github.com/aviklund/textdist/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestMillar_Identity verifies Dist(s, s) == 0 exactly: equal counts on
// both sides make every per-token contribution vanish.
func TestMillar_Identity(t *testing.T) {
	cmp := millar.NewDefault()

	for _, s := range []string{"", "a", "cat", "Niall", "ATCAACGAGT", "ééé", "aluminum"} {
		assert.Equal(t, 0.0, cmp.Dist(s, s), "Dist(%q, %q) must be exactly zero", s, s)
	}
}

// TestMillar_EmptyPair verifies two empty strings yield an empty
// alphabet and a distance of exactly 0.
func TestMillar_EmptyPair(t *testing.T) {
	cmp := millar.NewDefault()
	assert.Equal(t, 0.0, cmp.Dist("", ""))
}

// TestMillar_UnsharedTokensContributeLog2 pins the formula on pairs
// whose tokens occur at most once per side: every unshared token adds
// exactly ln 2, every token shared with equal counts adds 0.
func TestMillar_UnsharedTokensContributeLog2(t *testing.T) {
	cmp := millar.NewDefault()
	log2 := math.Log(2)

	cases := []struct {
		src, tar string
		unshared int
	}{
		{"a", "", 2},             // $a, a#
		{"cat", "hat", 4},        // $c, ca vs $h, ha; at, t# shared
		{"Niall", "Neil", 7},     // $N, l# shared out of 6+5 bigrams
		{"Nigel", "Niall", 6},    // $N, Ni, l# shared
		{"ATCG", "TAGC", 10},     // disjoint bigram sets
		{"abcd", "abef", 6},      // $a, ab shared
		{"abcd", "efgh", 10},     // disjoint
	}
	for _, tc := range cases {
		assert.InDelta(t, float64(tc.unshared)*log2, cmp.Dist(tc.src, tc.tar), eps,
			"Dist(%q, %q)", tc.src, tc.tar)
	}
}

// TestMillar_UnevenCounts checks a pair with a genuinely uneven shared
// count: "aaa" vs "aa" share the bigram "aa" with counts 2 and 1, so
// the distance is (5·ln 2 − 3·ln 3)/3.
func TestMillar_UnevenCounts(t *testing.T) {
	cmp := millar.NewDefault()

	want := (5*math.Log(2) - 3*math.Log(3)) / 3
	assert.InDelta(t, want, cmp.Dist("aaa", "aa"), eps)
}

// TestMillar_Symmetry verifies Dist(a, b) == Dist(b, a) within the
// float accumulation tolerance.
func TestMillar_Symmetry(t *testing.T) {
	cmp := millar.NewDefault()

	pairs := [][2]string{
		{"Niall", "Neil"},
		{"aluminum", "Catalan"},
		{"ATCAACGAGT", "AACGATTAG"},
		{"", "abc"},
		{"aaa", "aa"},
	}
	for _, p := range pairs {
		assert.InDelta(t, cmp.Dist(p[0], p[1]), cmp.Dist(p[1], p[0]), eps,
			"Dist must be symmetric for (%q, %q)", p[0], p[1])
	}
}

// TestMillar_NonNegative verifies the score never drops below zero.
func TestMillar_NonNegative(t *testing.T) {
	cmp := millar.NewDefault()

	pairs := [][2]string{
		{"", ""}, {"a", ""}, {"cat", "hat"}, {"Colin", "Coiln"},
		{"aaa", "aa"}, {"xyz", "xyz"}, {"ATCG", "TAGC"},
	}
	for _, p := range pairs {
		assert.GreaterOrEqual(t, cmp.Dist(p[0], p[1]), 0.0,
			"Dist(%q, %q) must be non-negative", p[0], p[1])
	}
}

// TestMillar_MonotonicSanity verifies that same-length pairs sharing
// tokens score strictly below pairs with disjoint alphabets.
func TestMillar_MonotonicSanity(t *testing.T) {
	cmp := millar.NewDefault()

	disjoint := cmp.Dist("abcd", "efgh")
	sharing := cmp.Dist("abcd", "abef")
	assert.Greater(t, disjoint, sharing,
		"disjoint alphabets must dominate token-sharing pairs of equal length")
}

// TestMillar_CustomTokenization verifies the combinator respects a
// caller-supplied scheme (word mode): equal word multisets → 0.
func TestMillar_CustomTokenization(t *testing.T) {
	cmp, err := millar.New(tokenizer.Options{Mode: tokenizer.Words})
	require.NoError(t, err)

	assert.Equal(t, 0.0, cmp.Dist("the cat sat", "sat the cat"),
		"word order must not matter in Words mode")
	assert.InDelta(t, 2*math.Log(2), cmp.Dist("the cat", "the dog"), eps)
}

// TestMillar_InvalidConfiguration verifies construction fails fast on a
// bad q and never defaults silently.
func TestMillar_InvalidConfiguration(t *testing.T) {
	opts := tokenizer.DefaultOptions()
	opts.Q = 0

	_, err := millar.New(opts)
	assert.ErrorIs(t, err, tokenizer.ErrInvalidQ)
}

// TestMillar_ConcurrentUse exercises a shared combinator from several
// goroutines; the race detector guards the immutability claim.
func TestMillar_ConcurrentUse(t *testing.T) {
	cmp := millar.NewDefault()

	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- cmp.Dist("Niall", "Neil") }()
	}
	want := cmp.Dist("Niall", "Neil")
	for i := 0; i < 8; i++ {
		assert.InDelta(t, want, <-done, eps)
	}
}
