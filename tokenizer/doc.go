// Package tokenizer converts raw strings into token frequency mappings,
// the shared first layer of every token-based comparison in textdist.
//
// 🚀 What is a token here?
//
//	A fixed-width contiguous substring (q-gram, default width 2) or a
//	whitespace-delimited word. Tokenizing a string yields a Freq — a
//	mapping from token to occurrence count — and two such mappings are
//	what the distance combinators (millar, unknownq) consume.
//
// ✨ Key properties:
//   - rune-based windows: Unicode text tokenizes by character, not byte
//   - '$'/'#' boundary padding by default (q−1 markers on each side),
//     so word-initial and word-final characters carry positional weight
//   - optional unpadded mode with a whole-string fallback for inputs
//     shorter than q
//   - deterministic and side-effect free; Tokenizer is immutable after
//     construction and safe to share across goroutines
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/tokenizer"
//
//	tok, err := tokenizer.New(tokenizer.DefaultOptions())
//	if err != nil {
//	  // ErrInvalidQ or ErrInvalidMode — construction-time only
//	}
//	freq := tok.Tokenize("Niall")
//	// freq = {"$N":1, "Ni":1, "ia":1, "al":1, "ll":1, "l#":1}
//
// Performance: O(n·q) time per call, O(distinct tokens) memory.
package tokenizer
