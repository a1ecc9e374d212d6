package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smoothtext/smoothtext/language"
)

// Scanner is the built-in rune state-machine tokenizer.
//
// Word, URL, and email recognition are language-independent; number grouping
// and sentence-break suppression follow the conventions of the language the
// scanner was built for. German and Turkish write 3,14 and 1.000 where
// English writes 3.14 and 1,000.
type Scanner struct {
	lang language.Language

	// decimalComma selects comma-decimal/dot-group number syntax instead of
	// the English dot-decimal/comma-group one.
	decimalComma bool

	// abbreviations maps lowercase abbreviation forms (trailing dot
	// included, "dr.", "e.g.") to true. Multi-part forms are stored
	// whole and matched from their final dot.
	abbreviations map[string]bool

	// lower folds a word for abbreviation lookup. Turkish needs the
	// İ→i / I→ı casing rules.
	lower func(string) string
}

// NewScanner builds the scanner configured for lang's family.
func NewScanner(lang language.Language) (*Scanner, error) {
	s := &Scanner{lang: lang, lower: strings.ToLower}

	switch lang.Family() {
	case language.English:
		s.abbreviations = englishAbbreviations
	case language.German:
		s.decimalComma = true
		s.abbreviations = germanAbbreviations
	case language.Turkish:
		s.decimalComma = true
		s.abbreviations = turkishAbbreviations
		s.lower = func(w string) string {
			return strings.ToLowerSpecial(unicode.TurkishCase, w)
		}
	default:
		return nil, fmt.Errorf("tokenizer: no scanner configuration for %v", lang)
	}

	return s, nil
}

// Sentencize returns the sentences of text, trimmed of surrounding
// whitespace. Empty input yields nil.
func (s *Scanner) Sentencize(text string) []string {
	tokens := s.SentenceTokens(text)
	if len(tokens) == 0 {
		return nil
	}
	sentences := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if trimmed := strings.TrimSpace(t.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Tokenize returns every non-whitespace token of text in order: words,
// numbers, punctuation, URLs, emails, and symbols.
func (s *Scanner) Tokenize(text string) []string {
	tokens := s.WordTokens(text)
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type != Space {
			out = append(out, t.Text)
		}
	}
	return out
}

// TokenizeSentences splits text into sentences and tokenizes each one.
// Sentences that contain no non-whitespace token are dropped.
func (s *Scanner) TokenizeSentences(text string) [][]string {
	sentences := s.SentenceTokens(text)
	if len(sentences) == 0 {
		return nil
	}
	out := make([][]string, 0, len(sentences))
	for _, sent := range sentences {
		if tokens := s.Tokenize(sent.Text); len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out
}

// WordTokens splits text into all tokens with metadata.
// Returns Word, Number, Punctuation, Space, Symbol, URL, and Email tokens.
// The byte offset invariant text[t.Start:t.End] == t.Text holds for every
// token, and concatenating all token texts reconstructs the original string.
//
// Rule priority (highest first):
//   - URL detection (http:// or https://)
//   - Email detection (backtrack from @)
//   - Number grouping (locale-dependent separators)
//   - Hyphen joining (single U+002D between letter/digit)
//   - Apostrophe joining (U+0027, U+2019, U+02BC between letters)
//   - Default unicode classification
func (s *Scanner) WordTokens(text string) []Token {
	if text == "" {
		return nil
	}

	tokens := make([]Token, 0, len(text)/4+1)

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// Rule 1: URL detection — check for http:// or https://
		if (r == 'h' || r == 'H') && i+7 <= len(text) {
			if end, ok := scanURL(text, i); ok {
				tokens = append(tokens, Token{Text: text[i:end], Start: i, End: end, Type: URL})
				i = end
				continue
			}
		}

		// Rule 2: Email detection — when we see @, backtrack for local part
		if r == '@' {
			if start, end, ok := scanEmail(text, i); ok {
				// If we already emitted tokens that overlap the local part, replace them.
				tokens = trimTokensForEmail(tokens, start)
				tokens = append(tokens, Token{Text: text[start:end], Start: start, End: end, Type: Email})
				i = end
				continue
			}
		}

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i, Type: Space})
			continue
		}

		// Digits: scan a number with the configured separator conventions
		if unicode.IsDigit(r) {
			tok := s.scanNumber(text, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Letters: scan a word token with possible hyphens and apostrophes
		if unicode.IsLetter(r) {
			tok := scanWord(text, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: special case consecutive hyphens so "--" stays one token
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' {
				for i < len(text) {
					nr, ns := utf8.DecodeRuneInString(text[i:])
					if nr != '-' {
						break
					}
					i += ns
				}
			}
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		// Fallback: treat unclassified runes as Symbol
		tokens = append(tokens, Token{Text: text[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
//
// With decimalComma set (German, Turkish) the group separator is the dot and
// the decimal mark the comma: 1.000.000 and 3,14. Otherwise (English) the
// roles swap: 1,000,000 and 3.14. Group separators must join groups of
// exactly three digits.
func (s *Scanner) scanNumber(text string, pos int) Token {
	group, decimal := byte(','), byte('.')
	if s.decimalComma {
		group, decimal = '.', ','
	}

	i := pos

	// Consume initial digits
	for i < len(text) && isDigitByte(text[i]) {
		i++
	}

	// Group separators: \d{1,3}(<group>\d{3})+
	for i < len(text) && text[i] == group {
		// Peek ahead: must be exactly 3 digits followed by non-digit or end
		if i+4 <= len(text) && isDigitByte(text[i+1]) && isDigitByte(text[i+2]) && isDigitByte(text[i+3]) {
			if i+4 >= len(text) || !isDigitByte(text[i+4]) {
				i += 4
				continue
			}
		}
		break
	}

	// Decimal mark: must be followed by at least one digit
	if i < len(text) && text[i] == decimal {
		if i+1 < len(text) && isDigitByte(text[i+1]) {
			i++
			for i < len(text) && isDigitByte(text[i]) {
				i++
			}
		}
	}

	return Token{Text: text[pos:i], Start: pos, End: i, Type: Number}
}

// scanURL checks if text[pos:] starts with http:// or https:// and consumes
// until whitespace or end of string. Strips a single trailing punctuation
// mark (. , ! ?) from the URL text.
func scanURL(text string, pos int) (end int, ok bool) {
	rest := text[pos:]
	prefix := ""
	if len(rest) >= 8 && (rest[0] == 'h' || rest[0] == 'H') &&
		(rest[1] == 't' || rest[1] == 'T') &&
		(rest[2] == 't' || rest[2] == 'T') &&
		(rest[3] == 'p' || rest[3] == 'P') {
		if (rest[4] == 's' || rest[4] == 'S') && rest[5] == ':' && rest[6] == '/' && rest[7] == '/' {
			prefix = "https://"
		} else if rest[4] == ':' && rest[5] == '/' && rest[6] == '/' {
			prefix = "http://"
		}
	}
	if prefix == "" {
		return 0, false
	}

	// Must have at least one character after the protocol
	if len(rest) <= len(prefix) {
		return 0, false
	}

	// Consume until whitespace or end
	end = pos + len(rest)
	for j := pos + len(prefix); j < len(text); {
		r, size := utf8.DecodeRuneInString(text[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	// Strip a single trailing punctuation: . , ! ?
	if end > pos+len(prefix) {
		last, lastSize := utf8.DecodeLastRuneInString(text[pos:end])
		if last == '.' || last == ',' || last == '!' || last == '?' {
			end -= lastSize
		}
	}

	// Validate: URL must have content after protocol
	if end <= pos+len(prefix) {
		return 0, false
	}

	return end, true
}

// scanEmail detects an email around the @ at position atPos.
// It backtracks to find the local part and scans forward for the domain.
// Returns the byte offsets [start, end) and whether a valid email was found.
func scanEmail(text string, atPos int) (start, end int, ok bool) {
	// Backtrack for local part: [a-zA-Z0-9._%+-]+
	start = atPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if isEmailLocalChar(r) {
			start -= size
		} else {
			break
		}
	}
	if start == atPos {
		return 0, 0, false
	}

	// Skip leading dots — RFC 5321 disallows dots as the first character.
	for start < atPos && text[start] == '.' {
		start++
	}
	if start == atPos {
		return 0, 0, false
	}

	// Scan forward for domain: [a-zA-Z0-9.-]+
	end = atPos + 1 // skip @
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if isEmailDomainChar(r) {
			end += size
		} else {
			break
		}
	}

	// Strip trailing dots from the domain before validation.
	// A domain like "example.com." has a trailing dot that is not part of the TLD.
	for end > atPos+1 && text[end-1] == '.' {
		end--
	}

	// Validate domain has at least one dot and a TLD of 2+ alpha chars
	domain := text[atPos+1 : end]
	lastDot := strings.LastIndex(domain, ".")
	if lastDot < 1 {
		return 0, 0, false
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 || !isAllAlpha(tld) {
		return 0, 0, false
	}

	return start, end, true
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits (e.g. "A4"), single
// hyphens (U+002D) between letters/digits, and apostrophes (U+0027,
// U+2019, U+02BC) between letters.
func scanWord(text string, pos int) Token {
	i := pos

	// Consume the initial run of letters and digits (letter-started
	// alphanumeric run). This keeps identifiers like "A4" together.
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			i += size
		} else {
			break
		}
	}

	// Try to extend with hyphens and apostrophes
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// Hyphen joining: single U+002D, preceded by letter/digit, followed by letter/digit
		if r == '-' {
			next := i + size
			if next < len(text) {
				nr, _ := utf8.DecodeRuneInString(text[next:])
				// Must not be a double hyphen, and next char must be letter/digit
				if nr == '-' {
					break
				}
				if unicode.IsLetter(nr) || unicode.IsDigit(nr) {
					i = consumeWordOrDigitRun(text, next)
					continue
				}
			}
			break
		}

		// Apostrophe joining: U+0027, U+2019, U+02BC between letters.
		// Keeps "don't" and Turkish proper-name suffixes ("İstanbul'da")
		// together as one word.
		if r == '\'' || r == '’' || r == 'ʼ' {
			next := i + size
			if next < len(text) {
				nr, _ := utf8.DecodeRuneInString(text[next:])
				if unicode.IsLetter(nr) {
					pr, _ := utf8.DecodeLastRuneInString(text[pos:i])
					if unicode.IsLetter(pr) {
						i = next
						// Consume following letters (not digits — apostrophe only joins letters)
						for i < len(text) {
							lr, ls := utf8.DecodeRuneInString(text[i:])
							if !unicode.IsLetter(lr) {
								break
							}
							i += ls
						}
						continue
					}
				}
			}
			break
		}

		break
	}

	return Token{Text: text[pos:i], Start: pos, End: i, Type: Word}
}

// trimTokensForEmail removes any tokens that overlap with the email local
// part starting at emailStart. This handles the case where we already
// emitted Word tokens for the local part before encountering the @ sign.
func trimTokensForEmail(tokens []Token, emailStart int) []Token {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if last.Start >= emailStart {
			tokens = tokens[:len(tokens)-1]
		} else if last.End > emailStart {
			// Partial overlap: trim the token
			tokens[len(tokens)-1] = Token{
				Text:  last.Text[:emailStart-last.Start],
				Start: last.Start,
				End:   emailStart,
				Type:  last.Type,
			}
			break
		} else {
			break
		}
	}
	return tokens
}

// consumeWordOrDigitRun consumes a contiguous run of letters and digits.
func consumeWordOrDigitRun(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

// isEmailLocalChar returns true for characters valid in the local part of an email.
func isEmailLocalChar(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	return r == '.' || r == '_' || r == '%' || r == '+' || r == '-'
}

// isEmailDomainChar returns true for characters valid in the domain part of an email.
func isEmailDomainChar(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	return r == '.' || r == '-'
}

// isAllAlpha returns true if every rune in s is an ASCII letter.
func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
