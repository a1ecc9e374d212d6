// Package syllable splits words into syllables and counts them.
//
// Each supported language family gets its own splitting strategy behind the
// Syllabifier interface:
//
//   - Turkish: a right-to-left vowel/consonant heuristic (NewTurkish).
//   - English: a pronunciation-dictionary/hyphenation hybrid (NewEnglish).
//   - German: pure hyphenation-pattern splitting (NewGerman).
//
// Every syllabifier maintains the same invariant: concatenating the returned
// syllables reproduces the input word (case-insensitively for the English
// dictionary path, which lower-cases its lookups). Decompositions that would
// break the invariant are discarded in favor of the fallback strategy.
//
// Syllabifiers hold no mutable state after construction and are safe for
// concurrent use by multiple goroutines.
package syllable

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/smoothtext/smoothtext/hyphen"
	"github.com/smoothtext/smoothtext/language"
)

// ErrInvalidToken is returned by the heuristic syllabifier when a token
// contains an alphanumeric rune with no one-character ASCII transcription,
// which would desynchronize the classification copy from the original word.
var ErrInvalidToken = errors.New("syllable: token cannot be transliterated")

// Syllabifier splits a single word into syllables and counts them.
//
// Syllabify returns the syllables of word in order. Empty input yields an
// empty result. Non-alphanumeric characters survive as their own
// single-character entries.
//
// Count returns the number of syllables in word. Empty input and tokens with
// no alphanumeric rune count as 0. Count never fails: where Syllabify would
// return an error, Count falls back to vowel counting on a lossy ASCII fold.
type Syllabifier interface {
	Syllabify(word string) ([]string, error)
	Count(word string) int
}

// Resources carries the external linguistic resources a syllabifier variant
// may need. The zero value is valid for languages that need none (Turkish).
type Resources struct {
	// Dictionary is the pronunciation lookup used by the English variant.
	Dictionary Dictionary

	// Patterns is the hyphenation table for the language family, used by
	// the English fallback path and the German splitter.
	Patterns *hyphen.Patterns
}

// New constructs the syllabifier variant for lang's family.
func New(lang language.Language, res Resources) (Syllabifier, error) {
	switch lang.Family() {
	case language.Turkish:
		return NewTurkish(), nil
	case language.English:
		if res.Patterns == nil {
			return nil, fmt.Errorf("syllable: English syllabifier requires hyphenation patterns")
		}
		return NewEnglish(res.Dictionary, res.Patterns), nil
	case language.German:
		if res.Patterns == nil {
			return nil, fmt.Errorf("syllable: German syllabifier requires hyphenation patterns")
		}
		return NewGerman(res.Patterns), nil
	default:
		return nil, fmt.Errorf("syllable: no syllabifier for %v", lang)
	}
}

// hasAlnum reports whether s contains at least one letter or digit.
func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
