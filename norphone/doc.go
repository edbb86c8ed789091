// Package norphone implements the Norphone phonetic algorithm for
// Norwegian names, extended with Swedish vowel handling.
//
// 🚀 What is Norphone?
//
//	A single-pass rewrite code: the initial sound is mapped through a
//	prefix table (AA→Å, GI→J, SKY→X, …), the word ending is trimmed
//	(final DT→T, final vowel+D dropped), and the body is scanned with a
//	longest-match replacement table while non-initial vowels fall away.
//	Names that sound alike in Norwegian collapse onto one code:
//	Hansen/Hanssen → HNSN, Karlsen/Carlsen → KRLSN.
//
// ✨ Key properties:
//   - consonant skeleton output, like Metaphone for Norwegian
//   - deterministic, pure, total over strings
//   - rune-aware: Å/Æ/Ø/Ä/Ö handled throughout
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/norphone"
//
//	norphone.Encode("Aagaard") // "ÅKRT"
//	norphone.Encode("Braaten") // "BRTN"
//
// Performance: O(len(word)) per call with constant tables.
package norphone
