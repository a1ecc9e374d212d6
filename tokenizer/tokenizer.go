// Package tokenizer splits text into words, sentences, and structured
// tokens with byte offsets, for the language families the module analyzes.
//
// The package provides two API layers:
//
//   - Structured: (*Scanner).WordTokens and (*Scanner).SentenceTokens return
//     []Token with byte offsets and type metadata. The invariant
//     s[t.Start:t.End] == t.Text holds for every token, and concatenating
//     all token texts reconstructs the original string.
//
//   - Convenience: the Tokenizer interface (Sentencize, Tokenize,
//     TokenizeSentences) returns plain strings for callers that do not need
//     offsets, such as the readability formulas.
//
// Two backends implement Tokenizer: Scanner, a rune state machine with
// per-language numeric conventions and abbreviation lists, and Prose, which
// delegates to the statistical engine in github.com/jdkato/prose.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Sentence splitting does not track quote or parenthesis nesting.
//     Terminal punctuation inside quotes may cause false sentence breaks.
//   - Bare URLs without a protocol prefix (www.example.com) are not detected.
//     Only http:// and https:// prefixed URLs are recognized.
//   - The abbreviation lists are compact curated sets, not exhaustive;
//     an abbreviation outside the list followed by an uppercase word causes
//     a false sentence break.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/smoothtext/smoothtext/language"
)

// wordsPerTokenEstimate is the estimated ratio of total tokens to word
// tokens, used to pre-allocate the slice in the convenience methods.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Alphabetic word (any script), including hyphens and apostrophes
	Number                       // Digits, with locale-dependent decimal and group separators
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, CJK, mathematical symbols, etc.
	URL                          // http:// or https:// prefixed sequences
	Email                        // user@domain.tld sequences
	Sentence                     // Used only by SentenceTokens — a full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case URL:
		return "URL"
	case Email:
		return "Email"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("hello")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokenizer is the text-segmentation contract the analysis layers consume.
//
// Sentencize returns the sentences of text, trimmed of surrounding
// whitespace. Tokenize returns every non-whitespace token of text, words and
// punctuation alike. TokenizeSentences combines the two: one token slice per
// sentence.
type Tokenizer interface {
	Sentencize(text string) []string
	Tokenize(text string) []string
	TokenizeSentences(text string) [][]string
}

// Backend selects a Tokenizer implementation.
type Backend int

const (
	// BackendScanner is the built-in rune state machine. It is the default:
	// fast, allocation-light, and aware of per-language numeric conventions
	// and abbreviations.
	BackendScanner Backend = iota

	// BackendProse delegates to github.com/jdkato/prose, a statistical
	// English-trained engine. Heavier, but stronger on free-form English
	// prose.
	BackendProse
)

// String returns the canonical backend name.
func (b Backend) String() string {
	switch b {
	case BackendScanner:
		return "scanner"
	case BackendProse:
		return "prose"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend resolves a case-insensitive backend name.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scanner", "":
		return BackendScanner, nil
	case "prose":
		return BackendProse, nil
	default:
		return 0, fmt.Errorf("tokenizer: unknown backend %q", name)
	}
}

// New constructs the Tokenizer for lang using the given backend.
func New(lang language.Language, backend Backend) (Tokenizer, error) {
	switch backend {
	case BackendScanner:
		return NewScanner(lang)
	case BackendProse:
		return NewProse(lang)
	default:
		return nil, fmt.Errorf("tokenizer: unknown backend %v", backend)
	}
}
