package syllable

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/smoothtext/smoothtext/translit"
)

// Turkish splits words with a right-to-left vowel/consonant heuristic.
//
// Scanning from the end of the word, every vowel closes a syllable; a single
// consonant immediately before the vowel is pulled into that syllable (the
// consonant attaches to the following vowel). Classification runs on a
// per-rune ASCII working copy so that ğ, ı, ş and friends classify correctly,
// while the emitted slices come from the original word.
type Turkish struct{}

// NewTurkish returns the heuristic syllabifier used for Turkish.
func NewTurkish() *Turkish {
	return &Turkish{}
}

// Syllabify splits word into syllables. Non-alphanumeric runes become
// single-character entries. It returns ErrInvalidToken when an alphanumeric
// rune has no one-rune ASCII transcription (the working copy would lose its
// index alignment with the word).
func (t *Turkish) Syllabify(word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}

	orig := []rune(word)
	work := make([]rune, len(orig))
	for i, r := range orig {
		if !isAlnumRune(r) {
			work[i] = ' '
			continue
		}
		a, ok := translit.FoldRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, word)
		}
		work[i] = a
	}

	var syllables []string

	previous := len(work)
	index := len(work) - 1
	for index >= 0 {
		c := work[index]

		if c == ' ' {
			syllables = append(syllables, string(orig[index]))
			index--
			previous--
			continue
		}

		if translit.IsVowel(c) {
			if index == 0 {
				syllables = append(syllables, string(orig[0:previous]))
				previous = 0
				break
			}

			if translit.IsConsonant(work[index-1]) {
				index--
			}

			syllables = append(syllables, string(orig[index:previous]))
			previous = index
		}

		index--
	}

	if previous != 0 {
		syllables = append(syllables, string(orig[0:previous]))
	}

	reverse(syllables)
	return syllables, nil
}

// Count returns the syllable count of word: the number of vowels in its
// ASCII fold, with hyphen-separated parts counted independently, and a floor
// of one for vowel-less tokens that still carry an alphanumeric rune.
func (t *Turkish) Count(word string) int {
	if word == "" {
		return 0
	}

	folded := translit.Fold(word)

	if strings.ContainsRune(folded, '-') {
		total := 0
		for _, part := range strings.Split(folded, "-") {
			total += t.Count(part)
		}
		return total
	}

	vowels := 0
	for _, c := range folded {
		if translit.IsVowel(c) {
			vowels++
		}
	}

	if vowels == 0 {
		for _, c := range folded {
			if isASCIIAlnum(c) {
				return 1
			}
		}
	}

	return vowels
}

// isAlnumRune reports whether r is a letter or digit under Unicode rules.
func isAlnumRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// reverse flips s in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// isASCIIAlnum reports whether c is an ASCII letter or digit.
func isASCIIAlnum(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
