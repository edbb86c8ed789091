// Package millar computes the Millar distance, an information-theoretic
// divergence between the token frequency distributions of two strings.
//
// 🚀 What is the Millar distance?
//
//	Both strings are tokenized into q-gram frequency mappings; each token
//	in the combined alphabet contributes a Jensen–Shannon-style term
//	(in nats, offset by n·ln 2 so every term is non-negative). Tokens
//	occurring with equal counts on both sides contribute exactly zero,
//	tokens unique to one side contribute ln 2 per occurrence. It is used
//	in ecology for comparing species-count samples and transfers directly
//	to comparing strings as bags of q-grams.
//
// ✨ Key properties:
//   - Dist(s, s) = 0 exactly; identical distributions are at distance 0
//   - symmetric in its two arguments
//   - unbounded above: range [0, +∞), growing with unshared token mass
//   - total over strings: no runtime error conditions, empty inputs OK
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/millar"
//
//	cmp := millar.NewDefault()
//	d := cmp.Dist("Niall", "Neil") // 7·ln 2 ≈ 4.852: seven unshared bigrams
//
// Custom tokenization goes through millar.New(tokenizer.Options{...}),
// which fails fast on invalid configuration and never mid-computation.
//
// Performance: O(len(src)+len(tar)) time per call.
package millar
