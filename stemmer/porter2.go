package stemmer

import "strings"

// Porter2 returns the Porter2 ("Snowball English") stem of a word.
//
// Algorithm outline:
//  1. Lowercase, strip a leading apostrophe and mark consonant-y as in
//     Porter. Words of two letters or less are returned unchanged, and
//     a small exception table (skis→ski, dying→die, sky→sky, …) short
//     circuits the rules.
//  2. Compute the R1 and R2 regions: R1 starts after the first
//     vowel-nonvowel pair (with special prefixes gener-, commun- and
//     arsen-), R2 after the first such pair inside R1.
//  3. Apply steps 0 through 5: possessive stripping, plural and
//     participle endings with stem repair, y→i, the double-suffix maps
//     gated on R1, residual suffixes gated on R2, and the final e/l
//     tidy-up.
//  4. Unmark Y back to y.
//
// Deterministic and total over strings.
func Porter2(word string) string {
	w := strings.ToLower(word)
	w = strings.TrimPrefix(w, "'")
	if len(w) <= 2 {
		return w
	}
	if stem, ok := p2Exceptions[w]; ok {
		return stem
	}

	w = markYs(w)
	r1 := p2R1Start(w)
	r2 := p2RegionStart(w, r1)

	w = p2Step0(w)
	w = p2Step1a(w)
	if p2StopWords[w] {
		return w
	}
	w = p2Step1b(w, r1)
	w = p2Step1c(w)
	w = p2Step2(w, r1)
	w = p2Step3(w, r1, r2)
	w = p2Step4(w, r2)
	w = p2Step5(w, r1, r2)

	return strings.ReplaceAll(w, "Y", "y")
}

// p2Exceptions are stemmed directly, bypassing the rules.
var p2Exceptions = map[string]string{
	"skis": "ski", "skies": "sky",
	"dying": "die", "lying": "lie", "tying": "tie",
	"idly": "idl", "gently": "gentl", "ugly": "ugli",
	"early": "earli", "only": "onli", "singly": "singl",
	"sky": "sky", "news": "news", "howe": "howe",
	"atlas": "atlas", "cosmos": "cosmos", "bias": "bias", "andes": "andes",
}

// p2StopWords end stemming right after step 1a.
var p2StopWords = map[string]bool{
	"inning": true, "outing": true, "canning": true,
	"herring": true, "earring": true,
	"proceed": true, "exceed": true, "succeed": true,
}

// isP2Vowel reports whether c is a vowel in the Porter2 sense; the
// marked consonant 'Y' is not.
func isP2Vowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}

	return false
}

// p2RegionStart returns the index after the first vowel followed by a
// non-vowel at or beyond from, or len(w) when there is none.
func p2RegionStart(w string, from int) int {
	for i := from + 1; i < len(w); i++ {
		if !isP2Vowel(w[i]) && isP2Vowel(w[i-1]) {
			return i + 1
		}
	}

	return len(w)
}

// p2R1Start returns the start of R1, honoring the special prefixes.
func p2R1Start(w string) int {
	for _, p := range []string{"gener", "commun", "arsen"} {
		if strings.HasPrefix(w, p) {
			return len(p)
		}
	}

	return p2RegionStart(w, 0)
}

// r1Region returns the R1 region of a word: everything after the first
// vowel followed by a non-vowel ("beautiful" → "iful").
func r1Region(w string) string {
	return w[p2RegionStart(w, 0):]
}

// r2Region returns the R2 region: R1 of R1 ("beautiful" → "ul").
func r2Region(w string) string {
	r1 := p2RegionStart(w, 0)

	return w[p2RegionStart(w, r1):]
}

// shortSyllable reports whether a short syllable starts at index start:
// either a vowel at the start of the word followed by a non-vowel, or a
// vowel between non-vowels whose follower is not w, x or Y.
func shortSyllable(w string, start int) bool {
	if start >= len(w) || !isP2Vowel(w[start]) {
		return false
	}
	if start == 0 {
		return len(w) >= 2 && !isP2Vowel(w[1])
	}
	if start+1 >= len(w) || isP2Vowel(w[start-1]) {
		return false
	}
	switch c := w[start+1]; {
	case isP2Vowel(c), c == 'w', c == 'x', c == 'Y':
		return false
	}

	return true
}

// endsShortSyllable reports whether the word ends in a short syllable.
func endsShortSyllable(w string) bool {
	switch {
	case len(w) >= 3:
		return shortSyllable(w, len(w)-2)
	case len(w) == 2:
		return isP2Vowel(w[0]) && !isP2Vowel(w[1])
	}

	return false
}

// p2IsShort reports whether the word is short: it ends in a short
// syllable and R1 is empty.
func p2IsShort(w string, r1 int) bool {
	return endsShortSyllable(w) && r1 >= len(w)
}

// p2Step0 strips a possessive tail: 's', 's or '.
func p2Step0(w string) string {
	switch {
	case strings.HasSuffix(w, "'s'"):
		return w[:len(w)-3]
	case strings.HasSuffix(w, "'s"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "'"):
		return w[:len(w)-1]
	}

	return w
}

// p2Step1a handles plural endings: sses→ss, ied/ies→i (or ie after a
// single letter), a bare s only when a vowel precedes the penultimate
// letter, and us/ss left alone.
func p2Step1a(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ied"), strings.HasSuffix(w, "ies"):
		if len(w) > 4 {
			return w[:len(w)-2]
		}

		return w[:len(w)-1]
	case strings.HasSuffix(w, "us"), strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		for i := 0; i < len(w)-2; i++ {
			if isP2Vowel(w[i]) {
				return w[:len(w)-1]
			}
		}
	}

	return w
}

// p2Step1b strips participle endings and repairs the exposed stem.
func p2Step1b(w string, r1 int) string {
	for _, suf := range []string{"eedly", "eed"} {
		if strings.HasSuffix(w, suf) {
			if len(w)-len(suf) >= r1 {
				return w[:len(w)-len(suf)] + "ee"
			}

			return w
		}
	}
	for _, suf := range []string{"ingly", "edly", "ing", "ed"} {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		stem := w[:len(w)-len(suf)]
		if !p2HasVowel(stem) {
			return w
		}
		switch {
		case strings.HasSuffix(stem, "at"),
			strings.HasSuffix(stem, "bl"),
			strings.HasSuffix(stem, "iz"):
			return stem + "e"
		case p2EndsDouble(stem):
			return stem[:len(stem)-1]
		case p2IsShort(stem, r1):
			return stem + "e"
		}

		return stem
	}

	return w
}

// p2HasVowel reports whether the word part contains a Porter2 vowel.
func p2HasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isP2Vowel(s[i]) {
			return true
		}
	}

	return false
}

// p2EndsDouble reports whether the word ends in one of the doubles
// bb, dd, ff, gg, mm, nn, pp, rr, tt.
func p2EndsDouble(s string) bool {
	n := len(s)
	if n < 2 || s[n-1] != s[n-2] {
		return false
	}
	switch s[n-1] {
	case 'b', 'd', 'f', 'g', 'm', 'n', 'p', 'r', 't':
		return true
	}

	return false
}

// p2Step1c rewrites a final y preceded by a non-vowel to i, unless the
// non-vowel is the first letter.
func p2Step1c(w string) string {
	n := len(w)
	if n >= 3 && (w[n-1] == 'y' || w[n-1] == 'Y') && !isP2Vowel(w[n-2]) {
		return w[:n-1] + "i"
	}

	return w
}

// p2Step2Rules map double suffixes inside R1, longest first. Empty
// replacements with the sentinel conditions ogi (after l) and li (after
// a valid li-ending) are handled inline.
var p2Step2Rules = []suffixRule{
	{"ization", "ize"}, {"ational", "ate"}, {"fulness", "ful"},
	{"ousness", "ous"}, {"iveness", "ive"},
	{"tional", "tion"}, {"biliti", "ble"}, {"lessli", "less"},
	{"ation", "ate"}, {"alism", "al"}, {"aliti", "al"},
	{"ousli", "ous"}, {"iviti", "ive"}, {"fulli", "ful"}, {"entli", "ent"},
	{"enci", "ence"}, {"anci", "ance"}, {"abli", "able"},
	{"izer", "ize"}, {"ator", "ate"}, {"alli", "al"},
}

// liEndings are the letters after which a bare -li comes off.
const liEndings = "cdeghkmnrt"

func p2Step2(w string, r1 int) string {
	for _, r := range p2Step2Rules {
		if strings.HasSuffix(w, r.from) {
			if len(w)-len(r.from) >= r1 {
				return w[:len(w)-len(r.from)] + r.to
			}

			return w
		}
	}
	switch {
	case strings.HasSuffix(w, "ogi"):
		if len(w)-3 >= r1 && strings.HasSuffix(w, "logi") {
			return w[:len(w)-1]
		}
	case strings.HasSuffix(w, "bli"):
		if len(w)-3 >= r1 {
			return w[:len(w)-1] + "e"
		}
	case strings.HasSuffix(w, "li"):
		if len(w)-2 >= r1 && len(w) >= 3 &&
			strings.ContainsRune(liEndings, rune(w[len(w)-3])) {
			return w[:len(w)-2]
		}
	}

	return w
}

var p2Step3Rules = []suffixRule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"alize", "al"}, {"icate", "ic"}, {"iciti", "ic"},
	{"ical", "ic"}, {"ness", ""},
	{"ful", ""},
}

func p2Step3(w string, r1, r2 int) string {
	// ative comes off only inside R2.
	if strings.HasSuffix(w, "ative") {
		if len(w)-5 >= r2 {
			return w[:len(w)-5]
		}

		return w
	}
	for _, r := range p2Step3Rules {
		if strings.HasSuffix(w, r.from) {
			if len(w)-len(r.from) >= r1 {
				return w[:len(w)-len(r.from)] + r.to
			}

			return w
		}
	}

	return w
}

var p2Step4Suffixes = []string{
	"ement",
	"ance", "ence", "able", "ible", "ment",
	"ant", "ent", "ism", "ate", "iti", "ous", "ive", "ize", "ion",
	"al", "er", "ic",
}

// p2Step4 removes residual suffixes inside R2; -ion only after s or t.
func p2Step4(w string, r2 int) string {
	for _, suf := range p2Step4Suffixes {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		stem := w[:len(w)-len(suf)]
		if len(stem) < r2 {
			return w
		}
		if suf == "ion" &&
			!strings.HasSuffix(stem, "s") && !strings.HasSuffix(stem, "t") {
			return w
		}

		return stem
	}

	return w
}

// p2Step5 drops a final e in R2 (or in R1 when no short syllable
// precedes it) and undoubles a final ll in R2.
func p2Step5(w string, r1, r2 int) string {
	n := len(w)
	switch {
	case n >= 1 && w[n-1] == 'e':
		if n-1 >= r2 || (n-1 >= r1 && !endsShortSyllable(w[:n-1])) {
			return w[:n-1]
		}
	case strings.HasSuffix(w, "ll") && n-1 >= r2:
		return w[:n-1]
	}

	return w
}
