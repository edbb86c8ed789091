package norphone

import "strings"

// vowels is the uppercase vowel set, extended with Swedish letters as
// in the reference implementation.
const vowels = "AEIOUYÅÆØÄÖ"

// replacement is one longest-match rewrite rule.
type replacement struct {
	from string
	to   string
}

// replacements are tried longest-first at every position; a match
// consumes len(from) runes.
var replacements = [][]replacement{
	{{"SKEI", "X"}},
	{{"SKJ", "X"}, {"KEI", "X"}},
	{
		{"CH", "K"}, {"CK", "K"}, {"GJ", "J"}, {"GH", "K"}, {"HG", "K"},
		{"HJ", "J"}, {"HL", "L"}, {"HR", "R"}, {"KJ", "X"}, {"KI", "X"},
		{"LD", "L"}, {"ND", "N"}, {"PH", "F"}, {"TH", "T"}, {"SJ", "X"},
	},
	{{"W", "V"}, {"X", "KS"}, {"Z", "S"}, {"D", "T"}, {"G", "K"}},
}

// initials code the leading sound before the main scan; the matched
// prefix is consumed.
var initials = []replacement{
	{"AA", "Å"}, {"GI", "J"}, {"SKY", "X"}, {"EI", "Æ"}, {"KY", "X"},
	{"C", "K"}, {"Ä", "Æ"}, {"Ö", "Ø"},
}

// Encode returns the Norphone code of a word.
//
// Algorithm outline, following the reference implementation:
//  1. Uppercase the word.
//  2. Code the initial sound from the prefix table (AA→Å, GI→J, …).
//  3. Trim the ending: final DT→T; a final vowel+D is dropped entirely.
//  4. Scan left to right applying the longest matching replacement
//     (lengths 4 down to 1); unmatched non-initial vowels are dropped,
//     everything else passes through.
//  5. Collapse consecutive repeated runes.
//
// Deterministic and total: any input, including empty, yields a code.
func Encode(word string) string {
	w := []rune(strings.ToUpper(word))

	var code []rune
	skip := 0
	for _, in := range initials {
		if hasPrefix(w, in.from) {
			code = append(code, []rune(in.to)...)
			skip = len([]rune(in.from))

			break
		}
	}

	if hasSuffix(w, "DT") {
		w = append(w[:len(w)-2], 'T')
	} else if len(w) >= 2 && strings.ContainsRune(vowels, w[len(w)-2]) && w[len(w)-1] == 'D' {
		// The rule set says any position; the reference implementation
		// applies it only word-finally.
		w = w[:len(w)-2]
	}

	for pos := 0; pos < len(w); pos++ {
		if skip > 0 {
			skip--

			continue
		}
		if to, n := longestMatch(w[pos:]); n > 0 {
			code = append(code, []rune(to)...)
			skip = n - 1

			continue
		}
		if pos == 0 || !strings.ContainsRune(vowels, w[pos]) {
			code = append(code, w[pos])
		}
	}

	return collapseRepeats(code)
}

// longestMatch returns the replacement for the longest rule matching a
// prefix of r, with the number of runes consumed (0 when none match).
func longestMatch(r []rune) (string, int) {
	for _, group := range replacements {
		for _, rule := range group {
			if hasPrefix(r, rule.from) {
				return rule.to, len([]rune(rule.from))
			}
		}
	}

	return "", 0
}

// hasPrefix reports whether r starts with the runes of p.
func hasPrefix(r []rune, p string) bool {
	pr := []rune(p)
	if len(r) < len(pr) {
		return false
	}
	for i := range pr {
		if r[i] != pr[i] {
			return false
		}
	}

	return true
}

// hasSuffix reports whether r ends with the runes of s.
func hasSuffix(r []rune, s string) bool {
	sr := []rune(s)
	if len(r) < len(sr) {
		return false
	}
	off := len(r) - len(sr)
	for i := range sr {
		if r[off+i] != sr[i] {
			return false
		}
	}

	return true
}

// collapseRepeats removes consecutive duplicate runes.
func collapseRepeats(r []rune) string {
	var b strings.Builder
	b.Grow(len(r))
	var prev rune = -1
	for _, c := range r {
		if c != prev {
			b.WriteRune(c)
		}
		prev = c
	}

	return b.String()
}
