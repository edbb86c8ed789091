// Package stemmer implements the Porter and Porter2 suffix-stripping
// stemmers for English.
//
// 🚀 What lives here?
//
//	Porter   — the original five-step algorithm (Porter, 1980), gated
//	           by the measure m of the candidate stem.
//	Porter2  — the Snowball English revision: region-based (R1/R2)
//	           conditions, an exception table and short-word repair.
//
// ✨ Key properties:
//   - pure functions, deterministic and total over strings
//   - case-insensitive: output is always lowercase
//   - Porter2 subsumes Porter's behavior on most vocabulary but the
//     two disagree by design (e.g. "dying" → "dy" vs "die")
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/stemmer"
//
//	stemmer.Porter("relational")  // "relat"
//	stemmer.Porter2("hoping")     // "hope"
//
// Stemming before tokenization collapses inflected forms, which makes
// the token-based distances in millar and unknownq treat "singing" and
// "sings" as the same evidence.
//
// Performance: O(len(word)) per call, a handful of small allocations.
package stemmer
