package syllable

import (
	"strings"

	"github.com/smoothtext/smoothtext/hyphen"
)

// English combines a pronunciation dictionary with hyphenation patterns.
//
// The dictionary decomposition groups phonemes at every vowel-bearing symbol
// and is accepted only when the groups spell the word back (case-insensitive)
// and are no longer than the hyphenation result. In every other case — word
// absent, round-trip failure, or a longer decomposition — the hyphenation
// split wins. The comparison is deliberately one-sided: a dictionary result
// SHORTER than the hyphenation one is still accepted only through the same
// length check, never preferred outright.
type English struct {
	dict     Dictionary
	patterns *hyphen.Patterns
}

// NewEnglish returns the hybrid syllabifier used for English. dict may be
// nil, in which case every word takes the hyphenation path.
func NewEnglish(dict Dictionary, patterns *hyphen.Patterns) *English {
	return &English{dict: dict, patterns: patterns}
}

// Syllabify splits word into syllables. The error result is always nil; it
// exists to satisfy the Syllabifier contract shared with the heuristic
// variant.
func (e *English) Syllabify(word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}

	fallback := splitHyphenAware(e.patterns, word)

	phonemes, ok := e.dict[strings.ToLower(word)]
	if !ok {
		return fallback, nil
	}

	groups := phonemeGroups(phonemes)
	if len(groups) == 0 || !strings.EqualFold(strings.Join(groups, ""), word) {
		return fallback, nil
	}
	if len(groups) > countSpelled(fallback) {
		return fallback, nil
	}

	return groups, nil
}

// Count returns the number of syllables in word, or 0 for empty input and
// tokens with no alphanumeric rune.
func (e *English) Count(word string) int {
	if word == "" || !hasAlnum(word) {
		return 0
	}
	parts, _ := e.Syllabify(word)
	return countSpelled(parts)
}

// phonemeGroups strips stress digits from the phoneme symbols and groups
// them so that each group ends at a vowel-bearing symbol. A trailing run of
// consonant symbols forms its own final group.
func phonemeGroups(phonemes []string) []string {
	var groups []string
	var current strings.Builder

	for _, p := range phonemes {
		current.WriteString(stripStress(p))
		if containsVowelLetter(p) {
			groups = append(groups, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		groups = append(groups, current.String())
	}

	return groups
}

// stripStress removes ASCII digits from a phoneme symbol ("AH0" -> "AH").
func stripStress(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// containsVowelLetter reports whether the phoneme symbol carries a vowel
// letter (AEIOUY, either case).
func containsVowelLetter(p string) bool {
	for _, r := range p {
		switch r {
		case 'A', 'E', 'I', 'O', 'U', 'Y', 'a', 'e', 'i', 'o', 'u', 'y':
			return true
		}
	}
	return false
}

// splitHyphenAware pattern-splits word, treating literal hyphens as hard
// boundaries. The hyphens survive as their own single-character entries so
// that concatenating the result reproduces the word exactly.
func splitHyphenAware(patterns *hyphen.Patterns, word string) []string {
	if !strings.ContainsRune(word, '-') {
		return patterns.Split(word)
	}

	var parts []string
	for i, seg := range strings.Split(word, "-") {
		if i > 0 {
			parts = append(parts, "-")
		}
		if seg == "" {
			continue
		}
		parts = append(parts, patterns.Split(seg)...)
	}
	return parts
}

// countSpelled counts the entries that carry at least one alphanumeric rune,
// skipping separator entries such as "-".
func countSpelled(parts []string) int {
	n := 0
	for _, p := range parts {
		if hasAlnum(p) {
			n++
		}
	}
	return n
}
