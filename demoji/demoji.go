// Package demoji rewrites emoji as bracketed text descriptions, so that
// emoji-bearing text can flow through word-level analysis without dropping
// information ("I love 🐈" -> "I love (cat)").
//
// Descriptions come from the emoji inventory in github.com/forPelevin/gomoji
// and are English regardless of the text's language.
package demoji

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// Replace substitutes every emoji in text with its description wrapped in
// the open and close markers. Slug hyphens become spaces: 🐈 with markers
// "(" and ")" becomes "(cat)", 🇹🇷 becomes "(flag turkey)". Text without
// emoji is returned unchanged.
func Replace(text, open, close string) string {
	found := gomoji.FindAll(text)
	if len(found) == 0 {
		return text
	}

	seen := make(map[string]bool, len(found))
	for _, e := range found {
		if seen[e.Character] {
			continue
		}
		seen[e.Character] = true

		desc := open + strings.ReplaceAll(e.Slug, "-", " ") + close
		text = strings.ReplaceAll(text, e.Character, desc)
	}
	return text
}
