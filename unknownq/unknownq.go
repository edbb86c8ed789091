package unknownq

import "github.com/aviklund/textdist/tokenizer"

// UnknownQ computes a bounded similarity/distance pair from the multiset
// overlap of two strings' token frequency mappings. It is immutable
// after New and safe for concurrent use.
//
// Algorithm outline:
//  1. Tokenize src and tar with the shared tokenizer → mappings A, B.
//  2. Compute the multiset overlap cards
//     a = |A ∩ B|, b = |A \ B|, c = |B \ A| (with multiplicity).
//  3. sim = (a + 1) / (a + 2 + b·c + (a + 3)·(b + c)/2)
//  4. dist = 1 − sim.
//
// The closed form has no literature name; it was recovered empirically
// from the reference implementation's fixed test vectors, which it
// reproduces bit-for-bit under the default padded bigram scheme
// (see DESIGN.md). The numerator is a+1 and the denominator at least
// a+2, so sim stays strictly inside (0, 1) and both scores land in the
// documented [0, 1] range.
//
// Guarantees:
//   - Sim(a, b) == Sim(b, a): the form is symmetric in b and c.
//   - Dist(a, b) == 1 − Sim(a, b) exactly.
//   - Sim("", "") == 0.5 (two empty mappings: a = b = c = 0).
//
// Complexity: O(len(src)+len(tar)) time, O(distinct tokens) memory.
type UnknownQ struct {
	tok *tokenizer.Tokenizer
}

// New builds an UnknownQ combinator over the given tokenization scheme.
// It fails fast with the tokenizer's sentinel errors on invalid options.
func New(opts tokenizer.Options) (*UnknownQ, error) {
	tok, err := tokenizer.New(opts)
	if err != nil {
		return nil, err
	}

	return &UnknownQ{tok: tok}, nil
}

// NewDefault returns an UnknownQ combinator over the default padded
// bigram scheme, the scheme the reference vectors are defined on.
// It cannot fail.
func NewDefault() *UnknownQ {
	u, _ := New(tokenizer.DefaultOptions())

	return u
}

// Sim returns the Unknown-Q similarity of src and tar in [0, 1].
// Never fails.
func (u *UnknownQ) Sim(src, tar string) float64 {
	a, b, c := u.tok.Tokenize(src).OverlapCards(u.tok.Tokenize(tar))

	// All terms are exact small integers (or integer halves) in float64,
	// so the documented base cases hold as equalities, not approximations.
	den := float64(a) + 2 + float64(b)*float64(c) + (float64(a)+3)*float64(b+c)/2

	return (float64(a) + 1) / den
}

// Dist returns 1 − Sim(src, tar), in [0, 1]. Never fails.
func (u *UnknownQ) Dist(src, tar string) float64 {
	return 1 - u.Sim(src, tar)
}
