// Package unknownq computes a bounded similarity/distance pair over the
// multiset overlap of two strings' q-gram frequency mappings.
//
// 🚀 What is Unknown-Q?
//
//	A counting-based similarity from the reference implementation's
//	catalogue of unnamed metrics. Its derivation is undocumented there;
//	the fixed test vectors are the specification of record, and this
//	package's closed form reproduces every one of them exactly:
//
//	  Sim("", "")       = 0.5
//	  Sim("a", "")      = 0.2
//	  Sim("abc", "")    = 0.125
//	  Sim("abc", "abc") = 0.8333333333333334
//	  Sim("Nigel", "Niall") ≈ 0.125
//
// ✨ Key properties:
//   - Sim and Dist are complements: Dist = 1 − Sim, exactly
//   - both bounded in [0, 1]; symmetric in the two arguments
//   - total over strings: empty and non-ASCII inputs are well-defined
//   - two empty strings land on 0.5 by convention, not NaN
//
// ⚙️ Usage:
//
//	import "github.com/aviklund/textdist/unknownq"
//
//	cmp := unknownq.NewDefault()
//	s := cmp.Sim("Colin", "Coiln")  // 0.125
//	d := cmp.Dist("Colin", "Coiln") // 0.875
//
// The default padded bigram scheme is the one the vectors are defined
// on; other schemes are accepted via unknownq.New(tokenizer.Options{…})
// but produce values outside the reference vector set.
//
// Performance: O(len(src)+len(tar)) time per call.
package unknownq
