package syllable

import "github.com/smoothtext/smoothtext/hyphen"

// German delegates entirely to a hyphenation pattern table: syllable
// boundaries are exactly the positions where the table inserts breaks.
type German struct {
	patterns *hyphen.Patterns
}

// NewGerman returns the hyphenation-table syllabifier used for German.
func NewGerman(patterns *hyphen.Patterns) *German {
	return &German{patterns: patterns}
}

// Syllabify splits word at its hyphenation boundaries. The error result is
// always nil; it exists to satisfy the Syllabifier contract.
func (g *German) Syllabify(word string) ([]string, error) {
	if word == "" {
		return nil, nil
	}
	return splitHyphenAware(g.patterns, word), nil
}

// Count returns the number of syllables in word, or 0 for empty input and
// tokens with no alphanumeric rune.
func (g *German) Count(word string) int {
	if word == "" || !hasAlnum(word) {
		return 0
	}
	parts, _ := g.Syllabify(word)
	return countSpelled(parts)
}
