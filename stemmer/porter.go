package stemmer

import "strings"

// Porter returns the Porter (1980) stem of an English word.
//
// Algorithm outline:
//  1. Lowercase and mark consonant-y: a y at the start of the word or
//     after a vowel is a consonant (marked 'Y'), otherwise a vowel.
//     The measure helpers below read that marking: lowercase y is a
//     vowel, uppercase Y a consonant.
//  2. Apply the five suffix-stripping steps of the original paper,
//     gated by the measure m (the number of vowel→consonant transitions
//     in the candidate stem).
//  3. Lowercase the marking away.
//
// Words of one or two letters are returned unchanged, as in the
// reference implementation. Deterministic and total over strings.
func Porter(word string) string {
	w := markYs(strings.ToLower(word))
	if len(w) > 2 {
		w = porterStep1a(w)
		w = porterStep1b(w)
		w = porterStep1c(w)
		w = porterStep2(w)
		w = porterStep3(w)
		w = porterStep4(w)
		w = porterStep5(w)
	}

	return strings.ToLower(w)
}

// markYs encodes the consonant/vowel role of every y in its case:
// y at position 0 or after a vowel becomes the consonant 'Y'.
func markYs(w string) string {
	b := []byte(w)
	for i := range b {
		if b[i] != 'y' {
			continue
		}
		if i == 0 || isVowel(b[i-1]) {
			b[i] = 'Y'
		}
	}

	return string(b)
}

// isVowel reports whether c is a vowel under the y-marking convention.
func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U', 'y':
		return true
	}

	return false
}

// mDegree returns the measure m of a (possibly marked) word part:
// the number of vowel-sequence → consonant-sequence transitions.
// "TR" and "TREE" have m=0, "TROUBLE" m=1, "TROUBLES" m=2.
func mDegree(s string) int {
	var m int
	prevVowel := false
	for i := 0; i < len(s); i++ {
		v := isVowel(s[i])
		if prevVowel && !v {
			m++
		}
		prevVowel = v
	}

	return m
}

// hasVowel reports whether the word part contains at least one vowel.
func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			return true
		}
	}

	return false
}

// endsDoubledCons reports whether the word part ends in a doubled
// consonant ("ADD", "DOLL"), under the y-marking convention.
func endsDoubledCons(s string) bool {
	n := len(s)

	return n >= 2 && s[n-1] == s[n-2] && !isVowel(s[n-1])
}

// endsCVC reports whether the word part ends consonant-vowel-consonant
// where the final consonant is not w, x or Y ("DAD" yes, "CRAW" no).
func endsCVC(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	if isVowel(s[n-3]) || !isVowel(s[n-2]) || isVowel(s[n-1]) {
		return false
	}
	switch s[n-1] {
	case 'w', 'x', 'W', 'X', 'Y':
		return false
	}

	return true
}

// porterStep1a handles plurals: SSES→SS, IES→I, SS→SS, S→"".
func porterStep1a(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ies"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}

	return w
}

// porterStep1b strips -eed/-ed/-ing and repairs the exposed stem.
func porterStep1b(w string) string {
	switch {
	case strings.HasSuffix(w, "eed"):
		if mDegree(w[:len(w)-3]) > 0 {
			return w[:len(w)-1]
		}

		return w
	case strings.HasSuffix(w, "ed") && hasVowel(w[:len(w)-2]):
		return porterStep1bRepair(w[:len(w)-2])
	case strings.HasSuffix(w, "ing") && hasVowel(w[:len(w)-3]):
		return porterStep1bRepair(w[:len(w)-3])
	}

	return w
}

// porterStep1bRepair restores a final e after AT/BL/IZ, undoubles a
// trailing consonant (except l, s, z) and re-es short CVC stems.
func porterStep1bRepair(w string) string {
	switch {
	case strings.HasSuffix(w, "at"), strings.HasSuffix(w, "bl"), strings.HasSuffix(w, "iz"):
		return w + "e"
	case endsDoubledCons(w):
		switch w[len(w)-1] {
		case 'l', 's', 'z':
			return w
		}

		return w[:len(w)-1]
	case mDegree(w) == 1 && endsCVC(w):
		return w + "e"
	}

	return w
}

// porterStep1c turns a final y with a vowel in the stem into i.
func porterStep1c(w string) string {
	n := len(w)
	if n > 1 && (w[n-1] == 'y' || w[n-1] == 'Y') && hasVowel(w[:n-1]) {
		return w[:n-1] + "i"
	}

	return w
}

// suffixRule is a conditional rewrite tried longest-suffix-first.
type suffixRule struct {
	from string
	to   string
}

var porterStep2Rules = []suffixRule{
	{"ization", "ize"}, {"ational", "ate"}, {"fulness", "ful"},
	{"ousness", "ous"}, {"iveness", "ive"},
	{"tional", "tion"}, {"biliti", "ble"},
	{"ation", "ate"}, {"alism", "al"}, {"aliti", "al"},
	{"ousli", "ous"}, {"iviti", "ive"}, {"entli", "ent"},
	{"enci", "ence"}, {"anci", "ance"}, {"izer", "ize"},
	{"abli", "able"}, {"alli", "al"}, {"ator", "ate"},
	{"eli", "e"},
}

var porterStep3Rules = []suffixRule{
	{"icate", "ic"}, {"ative", ""}, {"alize", "al"}, {"iciti", "ic"},
	{"ical", "ic"}, {"ness", ""},
	{"ful", ""},
}

// applyRuleM applies the first matching rule whose stem has measure
// greater than minM. A matched suffix with a failing measure ends the
// step, as in the reference implementation.
func applyRuleM(w string, rules []suffixRule, minM int) string {
	for _, r := range rules {
		if !strings.HasSuffix(w, r.from) {
			continue
		}
		stem := w[:len(w)-len(r.from)]
		if mDegree(stem) > minM {
			return stem + r.to
		}

		return w
	}

	return w
}

// porterStep2 maps double suffixes to single ones when m(stem) > 0.
func porterStep2(w string) string {
	return applyRuleM(w, porterStep2Rules, 0)
}

// porterStep3 strips -ic-, -full, -ness etc. when m(stem) > 0.
func porterStep3(w string) string {
	return applyRuleM(w, porterStep3Rules, 0)
}

var porterStep4Suffixes = []string{
	"ement",
	"ance", "ence", "able", "ible", "ment",
	"ant", "ent", "ion", "ism", "ate", "iti", "ous", "ive", "ize",
	"al", "er", "ic", "ou",
}

// porterStep4 removes residual suffixes when m(stem) > 1; -ion only
// comes off after s or t.
func porterStep4(w string) string {
	for _, suf := range porterStep4Suffixes {
		if !strings.HasSuffix(w, suf) {
			continue
		}
		stem := w[:len(w)-len(suf)]
		if suf == "ion" {
			if !strings.HasSuffix(stem, "s") && !strings.HasSuffix(stem, "t") {
				return w
			}
		}
		if mDegree(stem) > 1 {
			return stem
		}

		return w
	}

	return w
}

// porterStep5 tidies the ending: drop a final e when m > 1 (or m == 1
// without a CVC ending), and undouble a final ll when m > 1.
func porterStep5(w string) string {
	// Step 5a.
	if strings.HasSuffix(w, "e") {
		stem := w[:len(w)-1]
		m := mDegree(stem)
		if m > 1 || (m == 1 && !endsCVC(stem)) {
			w = stem
		}
	}
	// Step 5b.
	if strings.HasSuffix(w, "ll") && mDegree(w) > 1 {
		w = w[:len(w)-1]
	}

	return w
}
