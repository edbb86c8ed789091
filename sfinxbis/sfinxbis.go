package sfinxbis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Encode returns the SfinxBis codes for a name, one code per name word,
// with unlimited code length. See EncodeMaxLen.
func Encode(name string) []string {
	return EncodeMaxLen(name, -1)
}

// EncodeMaxLen returns the SfinxBis codes for a name, truncated to
// maxLength runes per code (maxLength ≤ 0 means unlimited).
//
// Pipeline, following the reference implementation step for step:
//  1. Uppercase, NFC-normalize, map 'ß' to "SS", hyphens to spaces.
//  2. Strip nobiliary particles (ordered table).
//  3. Split into words; collapse consecutive repeated runes per word.
//  4. "Swedish-ize" each word (cluster rewrites, j-glides, H-elision,
//     foreign-letter folding).
//  5. Drop runes outside the Swedish uppercase alphabet.
//  6. Code the first sound (may introduce the '$' and '#' markers).
//  7. Rewrite the tail: DT→T, X→KS, soft C→8.
//  8. Translate the tail to digits, collapse repeats, drop '9's.
//  9. Rejoin head rune + coded tail; truncate if requested.
//
// An input with no codable words yields [""], matching the reference.
func EncodeMaxLen(name string, maxLength int) []string {
	word := strings.ToUpper(name)
	word = norm.NFC.String(word)
	word = strings.ReplaceAll(word, "ß", "SS")
	word = strings.ReplaceAll(word, "-", " ")

	for _, title := range nobleTitles {
		for strings.Contains(word, title) {
			word = strings.ReplaceAll(word, title, " ")
		}
		if strings.HasPrefix(word, title[1:]) {
			word = word[len(title)-1:]
		}
	}

	words := strings.Fields(word)
	if len(words) == 0 {
		return []string{""}
	}

	codes := make([]string, 0, len(words))
	for _, w := range words {
		w = collapseRepeats(w)
		w = swedishize(w)
		w = keepAlphabet(w)
		w = codeFirstSound(w)

		head, rest := splitHead(w)
		rest = strings.ReplaceAll(rest, "DT", "T")
		rest = strings.ReplaceAll(rest, "X", "KS")
		for _, v := range softVowels {
			rest = strings.ReplaceAll(rest, "C"+string(v), "8"+string(v))
		}
		rest = translateDigits(rest)
		rest = collapseRepeats(rest)
		rest = strings.ReplaceAll(rest, "9", "")

		code := head + rest
		if maxLength > 0 {
			if r := []rune(code); len(r) > maxLength {
				code = string(r[:maxLength])
			}
		}
		codes = append(codes, code)
	}

	return codes
}

// swedishize rewrites a word onto Swedish orthography: fixed cluster
// substitutions, vowel+I/Y/Ü glides to J, H-elision before consonants,
// and foreign-letter folding.
func swedishize(w string) string {
	w = strings.ReplaceAll(w, "STIERN", "STJÄRN")
	w = strings.ReplaceAll(w, "HIE", "HJ")
	w = strings.ReplaceAll(w, "SIÖ", "SJÖ")
	w = strings.ReplaceAll(w, "SCH", "SH")
	w = strings.ReplaceAll(w, "QU", "KV")
	w = strings.ReplaceAll(w, "IO", "JO")
	w = strings.ReplaceAll(w, "PH", "F")

	for _, v := range hardVowels + softVowels {
		w = strings.ReplaceAll(w, string(v)+"Ü", string(v)+"J")
		w = strings.ReplaceAll(w, string(v)+"Y", string(v)+"J")
		w = strings.ReplaceAll(w, string(v)+"I", string(v)+"J")
	}

	if strings.ContainsRune(w, 'H') {
		w = elideH(w)
	}

	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if sub, ok := substitutions[r]; ok {
			r = sub
		}
		b.WriteRune(r)
	}
	w = b.String()

	w = strings.ReplaceAll(w, "Ð", "ETH")
	w = strings.ReplaceAll(w, "Þ", "TH")
	w = strings.ReplaceAll(w, "ß", "SS")

	return w
}

// elideH drops every H that is directly followed by a consonant,
// scanning left to right ("SCHMIDT" tail → "SMIDT").
func elideH(w string) string {
	runes := []rune(w)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == 'H' && i+1 < len(runes) && strings.ContainsRune(consonants, runes[i+1]) {
			continue
		}
		out = append(out, r)
	}

	return string(out)
}

// keepAlphabet removes every rune outside the Swedish uppercase alphabet.
func keepAlphabet(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if strings.ContainsRune(alphabet, r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// codeFirstSound rewrites the leading sound of a word. The branch order
// is significant and mirrors the reference implementation: vowels become
// '$', sj-type sounds become '#', and C/Q/G/K/X resolve by context.
func codeFirstSound(w string) string {
	r := []rune(w)
	switch {
	case startsWithAny(r, 1, hardVowels+softVowels):
		return "$" + string(r[1:])
	case hasRunePrefix(r, "DJ", "GJ", "HJ", "LJ"):
		return "J" + string(r[2:])
	case len(r) > 1 && r[0] == 'G' && strings.ContainsRune(softVowels, r[1]):
		return "J" + string(r[1:])
	case len(r) > 0 && r[0] == 'Q':
		return "K" + string(r[1:])
	case hasRunePrefix(r, "CH") && startsWithAnyAt(r, 2, softVowels+hardVowels):
		return "#" + string(r[2:])
	case len(r) > 1 && r[0] == 'C' && strings.ContainsRune(hardVowels, r[1]):
		return "K" + string(r[1:])
	case len(r) > 1 && r[0] == 'C' && strings.ContainsRune(consonants, r[1]):
		return "K" + string(r[1:])
	case len(r) > 0 && r[0] == 'X':
		return "S" + string(r[1:])
	case len(r) > 1 && r[0] == 'C' && strings.ContainsRune(softVowels, r[1]):
		return "S" + string(r[1:])
	case hasRunePrefix(r, "SKJ", "STJ", "SCH"):
		return "#" + string(r[3:])
	case hasRunePrefix(r, "SH", "KJ", "TJ", "SJ"):
		return "#" + string(r[2:])
	case hasRunePrefix(r, "SK") && startsWithAnyAt(r, 2, softVowels):
		return "#" + string(r[2:])
	case len(r) > 1 && r[0] == 'K' && strings.ContainsRune(softVowels, r[1]):
		return "#" + string(r[1:])
	}

	return w
}

// splitHead returns the first rune of w and the remainder.
func splitHead(w string) (head, rest string) {
	r := []rune(w)
	if len(r) == 0 {
		return "", ""
	}

	return string(r[0]), string(r[1:])
}

// translateDigits maps each rune through the digit table; unmapped
// runes (the '$'/'#' markers never reach here) pass through unchanged.
func translateDigits(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if d, ok := digitCode[r]; ok {
			r = d
		}
		b.WriteRune(r)
	}

	return b.String()
}

// collapseRepeats removes consecutive duplicate runes ("NIALL" → "NIAL").
func collapseRepeats(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	var prev rune = -1
	for _, r := range w {
		if r != prev {
			b.WriteRune(r)
		}
		prev = r
	}

	return b.String()
}

// startsWithAny reports whether the first rune of r (when present) is
// one of set. n is the required minimum length.
func startsWithAny(r []rune, n int, set string) bool {
	return len(r) >= n && strings.ContainsRune(set, r[0])
}

// startsWithAnyAt reports whether r has a rune at index i belonging to set.
func startsWithAnyAt(r []rune, i int, set string) bool {
	return len(r) > i && strings.ContainsRune(set, r[i])
}

// hasRunePrefix reports whether r begins with any of the given ASCII
// uppercase prefixes.
func hasRunePrefix(r []rune, prefixes ...string) bool {
	for _, p := range prefixes {
		if len(r) < len(p) {
			continue
		}
		match := true
		for i, pr := range p {
			if r[i] != pr {
				match = false

				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
