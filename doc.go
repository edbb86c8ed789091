// Package textdist is a toolbox of independent, deterministic string
// algorithms — token-based distance metrics, phonetic encoders and word
// stemmers — with no I/O, no shared state and no runtime coupling between
// them.
//
// 🚀 What is textdist?
//
//	A pure-Go library that brings together:
//		• Tokenization: q-gram & whitespace-word frequency mappings
//		• Distance metrics: Millar divergence, the Unknown-Q similarity pair
//		• Phonetic encoders: SfinxBis (Swedish), Norphone (Norwegian)
//		• Stemmers: Porter, Porter2 (Snowball English)
//
// ✨ Why choose textdist?
//
//   - Deterministic – every operation is a pure function of its inputs
//   - Concurrency-safe – all configured values are immutable after construction
//   - Pure Go – no cgo, no hidden deps
//   - Faithful – combinator formulas reproduce the reference vectors exactly
//
// Everything is organized under small single-purpose subpackages:
//
//	tokenizer/ — q-gram & word tokenization into frequency mappings
//	millar/    — Millar information-theoretic divergence
//	unknownq/  — bounded similarity/distance pair over token overlap
//	sfinxbis/  — SfinxBis phonetic codes for Scandinavian names
//	norphone/  — Norphone phonetic codes
//	stemmer/   — Porter & Porter2 suffix strippers
//
// Quick taste:
//
//	cmp := unknownq.NewDefault()
//	fmt.Println(cmp.Sim("Nigel", "Niall")) // 0.125
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/aviklund/textdist
package textdist
