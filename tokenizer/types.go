// Package tokenizer defines core types, options, and sentinel errors
// for the tokenizer subpackage of github.com/aviklund/textdist.
package tokenizer

import "errors"

// Sentinel errors for tokenizer construction.
var (
	// ErrInvalidQ indicates a q-gram width below 1 in NGrams mode.
	ErrInvalidQ = errors.New("tokenizer: q-gram width must be at least 1")
	// ErrInvalidMode indicates an unknown tokenization mode.
	ErrInvalidMode = errors.New("tokenizer: unknown tokenization mode")
)

// Mode selects the tokenization scheme: fixed-width q-grams (NGrams)
// or whitespace-delimited words (Words).
type Mode int

const (
	// NGrams emits overlapping fixed-width substrings of Q runes.
	NGrams Mode = iota
	// Words emits whitespace-delimited words; Options.Q is ignored.
	Words
)

// Options contains tunable parameters for tokenization.
//
// Both strings of a single comparison must be tokenized with the same
// Options; the combinator packages guarantee this by construction.
type Options struct {
	// Q is the q-gram width in runes. Read only in NGrams mode; Q < 1
	// is a construction error, never a silent default.
	Q int
	// Mode chooses NGrams or Words tokenization.
	Mode Mode
	// NoPadding disables the start/stop boundary markers. Without
	// padding, a non-empty string shorter than Q runes is emitted as a
	// single whole-string token.
	NoPadding bool
	// PadStart and PadEnd are the boundary runes prepended/appended
	// (Q-1 of each) before slicing q-grams. Only read when padding is on.
	PadStart rune
	PadEnd   rune
}

// DefaultOptions returns the Options used throughout the reference
// vectors: Q=2, NGrams mode, '$'/'#' boundary padding.
func DefaultOptions() Options {
	return Options{
		Q:        2,
		Mode:     NGrams,
		PadStart: '$',
		PadEnd:   '#',
	}
}

// Freq is a frequency mapping from token to occurrence count.
// Indexing an absent token yields 0, which is exactly the "missing
// token counts as zero" convention the combinators rely on.
type Freq map[string]int

// Total returns the number of token occurrences, with multiplicity.
func (f Freq) Total() int {
	var sum int
	for _, n := range f {
		sum += n
	}

	return sum
}

// Alphabet returns the set union of tokens present in f or other.
// Order is unspecified; callers must not depend on it.
func (f Freq) Alphabet(other Freq) []string {
	union := make([]string, 0, len(f)+len(other))
	for tok := range f {
		union = append(union, tok)
	}
	for tok := range other {
		if _, seen := f[tok]; !seen {
			union = append(union, tok)
		}
	}

	return union
}

// OverlapCards returns the multiset overlap cardinalities between f and
// other: a = |f ∩ other|, b = |f \ other|, c = |other \ f|, counting
// multiplicity (the intersection takes the per-token minimum count).
func (f Freq) OverlapCards(other Freq) (a, b, c int) {
	for tok, n := range f {
		m := other[tok]
		if m < n {
			a += m
			b += n - m
		} else {
			a += n
		}
	}
	for tok, m := range other {
		n := f[tok]
		if n < m {
			c += m - n
		}
	}

	return a, b, c
}
