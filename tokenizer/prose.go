package tokenizer

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/smoothtext/smoothtext/language"
)

// Prose adapts the statistical engine in github.com/jdkato/prose to the
// Tokenizer contract. Its segmentation and tokenization models are trained
// on English; other languages are accepted but get English heuristics.
type Prose struct {
	lang language.Language
}

// NewProse builds the prose-backed tokenizer for lang.
func NewProse(lang language.Language) (*Prose, error) {
	if lang.Family() == language.Unknown {
		return nil, fmt.Errorf("tokenizer: no prose configuration for %v", lang)
	}
	return &Prose{lang: lang}, nil
}

// Sentencize returns the sentences of text, trimmed of surrounding
// whitespace. Unprocessable input yields nil.
func (p *Prose) Sentencize(text string) []string {
	doc, err := p.document(text)
	if err != nil {
		return nil
	}

	sents := doc.Sentences()
	if len(sents) == 0 {
		return nil
	}
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Tokenize returns every token of text in order, words and punctuation
// alike.
func (p *Prose) Tokenize(text string) []string {
	doc, err := p.document(text)
	if err != nil {
		return nil
	}

	toks := doc.Tokens()
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out
}

// TokenizeSentences splits text into sentences and tokenizes each one.
// Sentences with no token are dropped.
func (p *Prose) TokenizeSentences(text string) [][]string {
	sentences := p.Sentencize(text)
	if len(sentences) == 0 {
		return nil
	}
	out := make([][]string, 0, len(sentences))
	for _, sent := range sentences {
		if tokens := p.Tokenize(sent); len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out
}

// document runs the prose pipeline with only segmentation and tokenization
// enabled; tagging and entity extraction are dead weight here.
func (p *Prose) document(text string) (*prose.Document, error) {
	return prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
}
