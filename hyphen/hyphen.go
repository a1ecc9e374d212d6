// Package hyphen splits words at syllable boundaries using Liang-style
// hyphenation patterns.
//
// A pattern source is a plain-text resource: one pattern per line
// ("hy3ph", ".he2", "l1l"), '%' starts a comment, and lines beginning with
// '!' are exceptions with explicit break points ("!ta-ble"). Digits between
// letters are break priorities; after all matching patterns are merged, a
// break is inserted wherever the highest priority is odd. Breaks closer than
// MinLeft runes to the start or MinRight runes to the end of the word are
// suppressed.
//
// The bundled resources under the data package are compact subsets; callers
// with full TeX or hunspell pattern files can feed them to Compile unchanged
// after converting exceptions to the '!' form.
//
// A compiled Patterns value is immutable and safe for concurrent use.
package hyphen

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Patterns is a compiled set of hyphenation patterns and exceptions.
type Patterns struct {
	// patterns maps the letter part of a pattern (with '.' word-boundary
	// markers kept) to its priority digits. The digit slice has one entry
	// per inter-letter position, len(letters)+1 in total.
	patterns map[string][]byte

	// exceptions maps a lowercase word to its explicit break positions
	// (rune offsets into the word).
	exceptions map[string][]int

	// maxLen is the rune length of the longest pattern key, bounding the
	// substring scan.
	maxLen int

	// MinLeft and MinRight are the minimum rune counts that must remain
	// before the first and after the last break.
	MinLeft  int
	MinRight int
}

// Compile parses a pattern source. Empty and comment lines are ignored.
// Malformed pattern lines produce an error naming the line.
func Compile(src []byte) (*Patterns, error) {
	p := &Patterns{
		patterns:   make(map[string][]byte),
		exceptions: make(map[string][]int),
		MinLeft:    2,
		MinRight:   2,
	}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			word, breaks, err := parseException(line[1:])
			if err != nil {
				return nil, fmt.Errorf("hyphen: line %d: %w", lineNo, err)
			}
			p.exceptions[word] = breaks
			continue
		}

		key, digits, err := parsePattern(line)
		if err != nil {
			return nil, fmt.Errorf("hyphen: line %d: %w", lineNo, err)
		}
		p.patterns[key] = digits
		if n := len([]rune(key)); n > p.maxLen {
			p.maxLen = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hyphen: reading patterns: %w", err)
	}

	return p, nil
}

// parsePattern splits a pattern like "hy3ph" into its letter key "hyph" and
// the digit slice [0 0 3 0 0].
func parsePattern(s string) (string, []byte, error) {
	var letters []rune
	digits := []byte{0}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits[len(digits)-1] = byte(r - '0')
			continue
		}
		letters = append(letters, r)
		digits = append(digits, 0)
	}

	if len(letters) == 0 {
		return "", nil, fmt.Errorf("pattern %q has no letters", s)
	}
	return string(letters), digits, nil
}

// parseException splits an exception like "ta-ble" into the bare word and
// its break offsets.
func parseException(s string) (string, []int, error) {
	var word []rune
	var breaks []int

	for _, r := range s {
		if r == '-' {
			if len(word) == 0 {
				return "", nil, fmt.Errorf("exception %q starts with a hyphen", s)
			}
			breaks = append(breaks, len(word))
			continue
		}
		word = append(word, r)
	}

	if len(word) == 0 {
		return "", nil, fmt.Errorf("exception %q has no letters", s)
	}
	return string(word), breaks, nil
}

// Positions returns the rune offsets at which word may be hyphenated, in
// increasing order. Matching is case-insensitive; offsets refer to the
// original word. Words shorter than MinLeft+MinRight runes never split.
func (p *Patterns) Positions(word string) []int {
	if !utf8.ValidString(word) {
		return nil
	}
	runes := []rune(strings.ToLower(word))
	n := len(runes)
	if n < p.MinLeft+p.MinRight {
		return nil
	}

	if breaks, ok := p.exceptions[string(runes)]; ok {
		out := make([]int, len(breaks))
		copy(out, breaks)
		return out
	}

	// Wrap the word with boundary markers and merge the priorities of every
	// matching pattern substring.
	wrapped := make([]rune, 0, n+2)
	wrapped = append(wrapped, '.')
	wrapped = append(wrapped, runes...)
	wrapped = append(wrapped, '.')

	prio := make([]byte, len(wrapped)+1)
	for i := range wrapped {
		limit := i + p.maxLen
		if limit > len(wrapped) {
			limit = len(wrapped)
		}
		for j := i + 1; j <= limit; j++ {
			digits, ok := p.patterns[string(wrapped[i:j])]
			if !ok {
				continue
			}
			for k, d := range digits {
				if d > prio[i+k] {
					prio[i+k] = d
				}
			}
		}
	}

	var out []int
	for pos := 1; pos < n; pos++ {
		// prio index pos+1 is the inter-letter gap after runes[pos-1],
		// accounting for the leading '.' marker.
		if prio[pos+1]%2 == 0 {
			continue
		}
		if pos < p.MinLeft || n-pos < p.MinRight {
			continue
		}
		out = append(out, pos)
	}
	return out
}

// Split cuts word at its hyphenation positions and returns the parts in
// order. Concatenating the parts reproduces word exactly. Words with no
// hyphenation point come back as a single-element slice.
func (p *Patterns) Split(word string) []string {
	breaks := p.Positions(word)
	if len(breaks) == 0 {
		return []string{word}
	}

	runes := []rune(word)
	parts := make([]string, 0, len(breaks)+1)
	prev := 0
	for _, b := range breaks {
		parts = append(parts, string(runes[prev:b]))
		prev = b
	}
	parts = append(parts, string(runes[prev:]))
	return parts
}
