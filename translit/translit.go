// Package translit converts Latin-script text to a plain-ASCII working form.
//
// The syllabifiers classify characters as vowels or consonants on an ASCII
// copy of the word while slicing syllables out of the original string, so the
// copy must stay index-aligned with the input. FoldRune provides that strict
// one-rune-to-one-rune mapping; Fold is the lossy whole-string variant used
// where alignment does not matter (vowel counting, statistics).
//
// Letters outside the built-in tables fall back to Unicode decomposition with
// combining marks stripped (golang.org/x/text), so é, ů, or ẽ fold without
// being enumerated. Runes with no single-ASCII transcription (ß, æ, emoji,
// non-Latin scripts) fold to '?' in Fold and are rejected by FoldRune.
//
// All functions are safe for concurrent use by multiple goroutines.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes a rune and removes its combining marks,
// e.g. "é" -> "e" + U+0301 -> "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldRune maps r to a single ASCII rune. It reports ok=false when r has no
// one-character ASCII transcription; callers treating the result as an
// index-aligned working copy must handle that case.
// ASCII input passes through unchanged.
func FoldRune(r rune) (rune, bool) {
	if r < 128 {
		return r, true
	}
	if a, ok := latinFold[r]; ok {
		return a, true
	}
	if _, ok := latinFoldMulti[r]; ok {
		return 0, false
	}
	folded, _, err := transform.String(stripMarks, string(r))
	if err == nil && len(folded) == 1 && folded[0] < 128 {
		return rune(folded[0]), true
	}
	return 0, false
}

// Fold returns the ASCII transcription of s. Multi-character transcriptions
// are expanded (ß -> "ss"), so the result may be longer than the input.
// Runes with no ASCII transcription become '?'.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if a, ok := FoldRune(r); ok {
			b.WriteRune(a)
			continue
		}
		if m, ok := latinFoldMulti[r]; ok {
			b.WriteString(m)
			continue
		}
		b.WriteByte('?')
	}

	return b.String()
}

// IsVowel reports whether the ASCII character c is a vowel.
func IsVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// IsConsonant reports whether the ASCII character c is a consonant letter.
func IsConsonant(c rune) bool {
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return false
	}
	return !IsVowel(c)
}

// CountVowels returns the number of vowel characters in the ASCII fold of s.
func CountVowels(s string) int {
	n := 0
	for _, c := range Fold(s) {
		if IsVowel(c) {
			n++
		}
	}
	return n
}

// CountConsonants returns the number of consonant characters in the ASCII
// fold of s.
func CountConsonants(s string) int {
	n := 0
	for _, c := range Fold(s) {
		if IsConsonant(c) {
			n++
		}
	}
	return n
}
