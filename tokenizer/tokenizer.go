package tokenizer

import "strings"

// Tokenizer converts strings into Freq mappings under a fixed scheme.
// It is immutable after New and safe for concurrent use.
//
// Algorithm outline (NGrams):
//  1. Decode the input into runes (tokens are rune windows, so multi-byte
//     text tokenizes by character, not by byte).
//  2. Empty input → empty mapping.
//  3. With padding: slide width-Q windows over
//     (Q-1)·PadStart ++ runes ++ (Q-1)·PadEnd.
//     Without padding: slide over the bare runes; if the input is shorter
//     than Q, emit the whole string as a single token.
//  4. Count each window into the mapping.
//
// Words mode splits on Unicode whitespace and counts each word.
//
// Complexity: O(n·Q) time, O(distinct tokens) space.
type Tokenizer struct {
	q        int
	mode     Mode
	pad      bool
	padStart rune
	padEnd   rune
}

// New validates opts and returns an immutable Tokenizer.
//
// Errors:
//   - ErrInvalidQ    — NGrams mode with Q < 1.
//   - ErrInvalidMode — Mode is neither NGrams nor Words.
func New(opts Options) (*Tokenizer, error) {
	switch opts.Mode {
	case NGrams:
		if opts.Q < 1 {
			return nil, ErrInvalidQ
		}
	case Words:
		// Q is ignored.
	default:
		return nil, ErrInvalidMode
	}

	return &Tokenizer{
		q:        opts.Q,
		mode:     opts.Mode,
		pad:      !opts.NoPadding,
		padStart: opts.PadStart,
		padEnd:   opts.PadEnd,
	}, nil
}

// Tokenize returns the frequency mapping of s. It never fails: any
// string, including empty and non-ASCII input, produces a defined
// (possibly empty) mapping.
func (t *Tokenizer) Tokenize(s string) Freq {
	if t.mode == Words {
		words := strings.Fields(s)
		freq := make(Freq, len(words))
		for _, w := range words {
			freq[w]++
		}

		return freq
	}

	if s == "" {
		return Freq{}
	}
	runes := []rune(s)

	if !t.pad && len(runes) < t.q {
		// Whole-string fallback: too short to carve a single q-gram.
		return Freq{s: 1}
	}

	if t.pad && t.q > 1 {
		padded := make([]rune, 0, len(runes)+2*(t.q-1))
		for i := 0; i < t.q-1; i++ {
			padded = append(padded, t.padStart)
		}
		padded = append(padded, runes...)
		for i := 0; i < t.q-1; i++ {
			padded = append(padded, t.padEnd)
		}
		runes = padded
	}

	freq := make(Freq, len(runes))
	for i := 0; i+t.q <= len(runes); i++ {
		freq[string(runes[i:i+t.q])]++
	}

	return freq
}
