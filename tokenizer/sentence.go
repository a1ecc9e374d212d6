package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Abbreviation tables, lowercase with trailing dot. Multi-part forms are
// stored whole ("e.g.", "z.b."); wordBefore walks back through interior
// dots so they match from their final dot.

var englishAbbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"st.": true, "jr.": true, "sr.": true, "vs.": true, "etc.": true,
	"e.g.": true, "i.e.": true,
	"no.": true, "fig.": true, "vol.": true, "ch.": true, "pp.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true, "dept.": true,
	"approx.": true, "est.": true, "misc.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true,
	"jul.": true, "aug.": true, "sep.": true, "sept.": true, "oct.": true,
	"nov.": true, "dec.": true,
}

var germanAbbreviations = map[string]bool{
	"dr.": true, "prof.": true, "nr.": true, "ca.": true, "bzw.": true,
	"usw.": true, "evtl.": true, "ggf.": true, "inkl.": true, "zzgl.": true,
	"vgl.": true, "bspw.": true, "sog.": true, "allg.": true,
	"z.b.": true, "d.h.": true, "u.a.": true, "o.ä.": true,
	"str.": true, "abs.": true, "abb.": true, "tab.": true,
}

var turkishAbbreviations = map[string]bool{
	"dr.": true, "prof.": true, "doç.": true, "yrd.": true, "öğr.": true,
	"av.": true, "alb.": true, "yzb.": true, "müh.": true, "uzm.": true,
	"vb.": true, "vs.": true, "örn.": true, "bkz.": true, "a.ş.": true,
	"t.c.": true, "no.": true, "sy.": true,
	"yy.": true, "km.": true, "kg.": true, "sn.": true, "dk.": true,
}

// SentenceTokens splits text into sentence-level tokens with byte offsets.
// Each returned Token has Type=Sentence. Adjacent tokens cover the entire
// input without gaps or overlaps: concatenating all Token.Text values
// reconstructs text exactly.
//
// Sentence boundaries are terminal punctuation (. ? ! and U+2026) followed
// by whitespace and an uppercase letter, or a double newline. The scanner's
// abbreviation list prevents false breaks after abbreviated words.
func (s *Scanner) SentenceTokens(text string) []Token {
	if text == "" {
		return nil
	}

	tokens := make([]Token, 0, len(text)/40+1)
	sentStart := 0 // byte offset where the current sentence begins

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// Double newline forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(text) && text[i+1] == '\n' {
			// Consume all consecutive newlines as part of the current sentence.
			j := i
			for j < len(text) && text[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{
				Text:  text[sentStart:j],
				Start: sentStart,
				End:   j,
				Type:  Sentence,
			})
			sentStart = j
			i = j
			continue
		}

		// Check for terminal punctuation: . ? !
		if r == '.' || r == '?' || r == '!' {
			// Handle ellipsis: three consecutive dots.
			if r == '.' && i+2 < len(text) && text[i+1] == '.' && text[i+2] == '.' {
				// Consume all consecutive dots (handles "..." and "....")
				j := i
				for j < len(text) && text[j] == '.' {
					j++
				}
				if followedByWhitespaceUppercase(text, j) {
					tokens = append(tokens, Token{
						Text:  text[sentStart:j],
						Start: sentStart,
						End:   j,
						Type:  Sentence,
					})
					sentStart = j
				}
				i = j
				continue
			}

			// Single dot: check for abbreviation.
			if r == '.' && s.isAbbreviation(text, i) {
				i += size
				continue
			}

			// Terminal punctuation: consume the entire cluster (e.g. "?!", "???").
			j := i + size
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if nr == '.' || nr == '?' || nr == '!' {
					j += ns
				} else {
					break
				}
			}

			if followedByWhitespaceUppercase(text, j) {
				tokens = append(tokens, Token{
					Text:  text[sentStart:j],
					Start: sentStart,
					End:   j,
					Type:  Sentence,
				})
				sentStart = j
			}
			i = j
			continue
		}

		// Unicode ellipsis U+2026.
		if r == '…' {
			j := i + size
			if followedByWhitespaceUppercase(text, j) {
				tokens = append(tokens, Token{
					Text:  text[sentStart:j],
					Start: sentStart,
					End:   j,
					Type:  Sentence,
				})
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	// Emit the final sentence if there is remaining text.
	if sentStart < len(text) {
		tokens = append(tokens, Token{
			Text:  text[sentStart:],
			Start: sentStart,
			End:   len(text),
			Type:  Sentence,
		})
	}

	return tokens
}

// followedByWhitespaceUppercase reports whether position pos in text is
// followed by at least one whitespace character and then an uppercase letter.
func followedByWhitespaceUppercase(text string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
		} else {
			return foundSpace && unicode.IsUpper(r)
		}
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos is part of
// a known abbreviation rather than a sentence-ending period.
func (s *Scanner) isAbbreviation(text string, dotPos int) bool {
	// Extract the word immediately before the dot.
	word, _ := wordBefore(text, dotPos)
	if word == "" {
		return false
	}

	candidate := s.lower(word) + "."
	if !s.abbreviations[candidate] {
		return false
	}

	// Greedy forward matching: check if the abbreviation extends further
	// into a longer listed form before confirming.
	return s.greedyAbbreviation(text, candidate, dotPos+1)
}

// greedyAbbreviation tries to extend a matched abbreviation prefix forward.
// It returns true once no further extension is possible, confirming the
// abbreviation: prefix is the match so far, pos points just past its dot;
// if the next chars form word+"." and the combined form is also listed,
// recurse past that dot.
func (s *Scanner) greedyAbbreviation(text, prefix string, pos int) bool {
	if pos >= len(text) {
		return true // abbreviation at end of input
	}

	// Read next word characters (letters only, no whitespace allowed).
	j := pos
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if unicode.IsLetter(r) {
			j += size
		} else {
			break
		}
	}

	if j == pos || j >= len(text) || text[j] != '.' {
		return true // no extension possible, current match stands
	}

	extended := prefix + s.lower(text[pos:j]) + "."
	if s.abbreviations[extended] {
		// The extended form is also listed; recurse past its dot.
		return s.greedyAbbreviation(text, extended, j+1)
	}

	return true // extension not recognized, current match stands
}

// wordBefore extracts the word immediately before byte position pos.
// A word consists of consecutive letters, walking back through interior
// dots so multi-part abbreviations ("e.g", "a.ş") come back whole.
// Returns the word text and the byte offset where the word starts, or
// ("", pos) if no word is found.
func wordBefore(text string, pos int) (string, int) {
	// Skip any dots immediately before pos.
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if r == '.' {
			i -= size
		} else {
			break
		}
	}

	end := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if unicode.IsLetter(r) {
			i -= size
			continue
		}
		// An interior dot with a letter before it belongs to the word.
		if r == '.' && i > size {
			pr, _ := utf8.DecodeLastRuneInString(text[:i-size])
			if unicode.IsLetter(pr) {
				i -= size
				continue
			}
		}
		break
	}

	if i == end {
		return "", pos
	}

	return text[i:end], i
}
