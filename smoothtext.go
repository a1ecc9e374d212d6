package smoothtext

import (
	"strings"
	"unicode"

	"github.com/smoothtext/smoothtext/demoji"
	"github.com/smoothtext/smoothtext/language"
	"github.com/smoothtext/smoothtext/readability"
	"github.com/smoothtext/smoothtext/syllable"
	"github.com/smoothtext/smoothtext/tokenizer"
	"github.com/smoothtext/smoothtext/translit"
)

// Analyzer bundles a language's tokenizer, syllabifier, and readability
// engine behind one text-analysis surface. Build one with New or
// (*Env).Analyzer.
//
// An Analyzer is immutable and safe for concurrent use by multiple
// goroutines.
type Analyzer struct {
	lang   language.Language
	tok    tokenizer.Tokenizer
	syl    syllable.Syllabifier
	engine *readability.Engine
	lower  func(string) string
}

func newAnalyzer(lang language.Language, tok tokenizer.Tokenizer, syl syllable.Syllabifier, engine *readability.Engine) *Analyzer {
	a := &Analyzer{
		lang:   lang,
		tok:    tok,
		syl:    syl,
		engine: engine,
		lower:  strings.ToLower,
	}
	if lang.Family() == language.Turkish {
		a.lower = func(s string) string {
			return strings.ToLowerSpecial(unicode.TurkishCase, s)
		}
	}
	return a
}

// Language returns the language the analyzer was built for.
func (a *Analyzer) Language() language.Language {
	return a.lang
}

// Sentencize splits text into sentences, trimmed of surrounding whitespace.
func (a *Analyzer) Sentencize(text string) []string {
	return a.tok.Sentencize(text)
}

// CountSentences returns the number of sentences in text.
func (a *Analyzer) CountSentences(text string) int {
	return len(a.tok.Sentencize(text))
}

// Tokenize splits text into tokens: words, numbers, and punctuation alike.
func (a *Analyzer) Tokenize(text string) []string {
	return a.tok.Tokenize(text)
}

// TokenizeSentences splits text into sentences and each sentence into
// tokens.
func (a *Analyzer) TokenizeSentences(text string) [][]string {
	return a.tok.TokenizeSentences(text)
}

// CountWords returns the number of word-like tokens in text: tokens that
// carry at least one letter or digit. Punctuation does not count.
func (a *Analyzer) CountWords(text string) int {
	n := 0
	for _, tok := range a.tok.Tokenize(text) {
		if hasAlnum(tok) {
			n++
		}
	}
	return n
}

// Syllabify splits a single word into syllables.
func (a *Analyzer) Syllabify(word string) ([]string, error) {
	return a.syl.Syllabify(word)
}

// SyllabifyText tokenizes text and syllabifies every token. Punctuation
// tokens come back as single-element entries. Tokens the syllabifier
// rejects come back whole.
func (a *Analyzer) SyllabifyText(text string) [][]string {
	tokens := a.tok.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	out := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		parts, err := a.syl.Syllabify(tok)
		if err != nil {
			parts = []string{tok}
		}
		out = append(out, parts)
	}
	return out
}

// CountSyllables tokenizes text and returns the total syllable count across
// all tokens.
func (a *Analyzer) CountSyllables(text string) int {
	total := 0
	for _, tok := range a.tok.Tokenize(text) {
		total += a.syl.Count(strings.TrimSpace(a.lower(tok)))
	}
	return total
}

// SyllableFrequencies maps syllable counts to the number of tokens in text
// with that count. Tokens with no syllables (bare punctuation) are skipped.
func (a *Analyzer) SyllableFrequencies(text string) map[int]int {
	frequencies := make(map[int]int)
	for _, tok := range a.tok.Tokenize(text) {
		n := a.syl.Count(strings.TrimSpace(a.lower(tok)))
		if n == 0 {
			continue
		}
		frequencies[n]++
	}
	return frequencies
}

// CountVowels returns the number of vowel characters in the ASCII fold of
// text.
func (a *Analyzer) CountVowels(text string) int {
	return translit.CountVowels(text)
}

// CountConsonants returns the number of consonant characters in the ASCII
// fold of text.
func (a *Analyzer) CountConsonants(text string) int {
	return translit.CountConsonants(text)
}

// Demojize replaces emoji with parenthesized text descriptions:
// "I love 🐈" becomes "I love (cat)". Descriptions are English for every
// analyzer language. Use the demoji package directly for custom markers.
func (a *Analyzer) Demojize(text string) string {
	return demoji.Replace(text, "(", ")")
}

// Formulas returns the readability formulas validated for the analyzer's
// language.
func (a *Analyzer) Formulas() []readability.Formula {
	return readability.FormulasFor(a.lang)
}

// Score computes the readability formula over text. A formula not validated
// for the analyzer's language logs a warning and yields 0.
func (a *Analyzer) Score(text string, formula readability.Formula) float64 {
	return a.engine.Score(text, formula)
}

// FleschReadingEase scores text with the Flesch Reading Ease formula
// (English, or German via the Amstad constants). Higher is easier; typical
// scores fall between 0 and 100.
func (a *Analyzer) FleschReadingEase(text string) float64 {
	return a.engine.Score(text, readability.FleschReadingEase)
}

// FleschKincaidGrade maps English text to a US school grade level.
func (a *Analyzer) FleschKincaidGrade(text string) float64 {
	return a.engine.Score(text, readability.FleschKincaidGrade)
}

// FleschKincaidGradeSimplified is the rounded-coefficient variant of
// FleschKincaidGrade.
func (a *Analyzer) FleschKincaidGradeSimplified(text string) float64 {
	return a.engine.Score(text, readability.FleschKincaidGradeSimplified)
}

// Atesman scores Turkish text with the Ateşman formula. Higher is easier.
func (a *Analyzer) Atesman(text string) float64 {
	return a.engine.Score(text, readability.Atesman)
}

// BezirciYilmaz scores Turkish text with the Bezirci-Yılmaz grade formula.
// Higher is harder.
func (a *Analyzer) BezirciYilmaz(text string) float64 {
	return a.engine.Score(text, readability.BezirciYilmaz)
}

// WienerSachtextformel scores German text with the default (third) variant
// of the Wiener Sachtextformel. Higher is harder.
func (a *Analyzer) WienerSachtextformel(text string) float64 {
	return a.engine.Score(text, readability.WienerSachtextformel)
}

// WienerSachtextformel1 scores German text with the first variant.
func (a *Analyzer) WienerSachtextformel1(text string) float64 {
	return a.engine.Score(text, readability.WienerSachtextformel1)
}

// WienerSachtextformel2 scores German text with the second variant.
func (a *Analyzer) WienerSachtextformel2(text string) float64 {
	return a.engine.Score(text, readability.WienerSachtextformel2)
}

// WienerSachtextformel3 scores German text with the third variant.
func (a *Analyzer) WienerSachtextformel3(text string) float64 {
	return a.engine.Score(text, readability.WienerSachtextformel3)
}

// WienerSachtextformel4 scores German text with the fourth variant.
func (a *Analyzer) WienerSachtextformel4(text string) float64 {
	return a.engine.Score(text, readability.WienerSachtextformel4)
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
