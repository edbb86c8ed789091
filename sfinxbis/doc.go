// Package sfinxbis implements the SfinxBis phonetic algorithm, a
// Soundex-like code designed for Swedish names.
//
// 🚀 What is SfinxBis?
//
//	A twelve-step rewrite pipeline that strips nobiliary particles,
//	folds foreign letters onto Swedish orthography, codes the initial
//	sound (vowels → '$', sj-sounds → '#') and translates the remainder
//	into Soundex-style digits. Unlike Soundex it returns one code per
//	word of the input name, so "Sjöberg Smith" yields two codes.
//
// ✨ Key properties:
//   - tuned for Swedish: handles Å/Ä/Ö, sj/tj/skj clusters, H-elision
//   - multi-word aware: one code per name word, particles removed
//   - deterministic, pure, total: any input yields a defined code list
//   - NFC normalization, so composed and decomposed input agree
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/sfinxbis"
//
//	sfinxbis.Encode("Sjöberg")            // ["#162"]
//	sfinxbis.Encode("Smith")              // ["S53"]  (same as Schmidt)
//	sfinxbis.EncodeMaxLen("Christopher", 4) // ["K683"]
//
// Performance: O(len(name)) per call with small constant tables.
package sfinxbis
