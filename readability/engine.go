package readability

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smoothtext/smoothtext/language"
	"github.com/smoothtext/smoothtext/syllable"
	"github.com/smoothtext/smoothtext/tokenizer"
)

// fleschConstants holds the per-family (base, sentence-length, word-syllable)
// coefficients of the Flesch Reading Ease family: the original English
// calibration, the Amstad one for German, and the Ateşman one for Turkish.
var fleschConstants = map[language.Language][3]float64{
	language.English: {206.835, 1.015, 84.6},
	language.German:  {180.0, 1.0, 58.5},
	language.Turkish: {198.825, 2.61, 40.175},
}

// Engine scores texts in one language using a tokenizer and a syllabifier.
type Engine struct {
	lang      language.Language
	tok       tokenizer.Tokenizer
	syl       syllable.Syllabifier
	constants [3]float64
	logger    zerolog.Logger
	lower     func(string) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's warnings through logger instead of the
// global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine builds the scoring engine for lang.
func NewEngine(lang language.Language, tok tokenizer.Tokenizer, syl syllable.Syllabifier, opts ...Option) (*Engine, error) {
	constants, ok := fleschConstants[lang.Family()]
	if !ok {
		return nil, fmt.Errorf("readability: no formula constants for %v", lang)
	}
	if tok == nil || syl == nil {
		return nil, fmt.Errorf("readability: engine for %v needs a tokenizer and a syllabifier", lang)
	}

	e := &Engine{
		lang:      lang,
		tok:       tok,
		syl:       syl,
		constants: constants,
		logger:    log.Logger,
		lower:     strings.ToLower,
	}
	if lang.Family() == language.Turkish {
		e.lower = func(s string) string {
			return strings.ToLowerSpecial(unicode.TurkishCase, s)
		}
	}

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Language returns the language the engine scores.
func (e *Engine) Language() language.Language {
	return e.lang
}

// Formulas returns the formulas the engine can apply to its language.
func (e *Engine) Formulas() []Formula {
	return FormulasFor(e.lang)
}

// Score computes formula over text. A formula that is not validated for the
// engine's language logs a warning and yields 0. Degenerate input (no
// sentence with at least one word-like token) leaves every aggregate at
// zero, so formulas collapse to their constant term; Bezirci-Yılmaz alone
// yields 0.
func (e *Engine) Score(text string, formula Formula) float64 {
	if !formula.Supports(e.lang) {
		e.logger.Warn().
			Stringer("formula", formula).
			Stringer("language", e.lang).
			Msg("readability formula does not support language")
		return 0
	}

	switch formula {
	case FleschReadingEase, Atesman:
		return e.fleschReadingEase(text)
	case FleschKincaidGrade:
		avgSyllables, avgLength := e.aggregateBasic(text)
		return 0.39*avgLength + 11.8*avgSyllables - 15.9
	case FleschKincaidGradeSimplified:
		avgSyllables, avgLength := e.aggregateBasic(text)
		return 0.4*avgLength + 12.0*avgSyllables - 16.0
	case BezirciYilmaz:
		return e.bezirciYilmaz(text)
	case WienerSachtextformel1, WienerSachtextformel2, WienerSachtextformel3, WienerSachtextformel4:
		return e.wienerSachtextformel(text, formula)
	default:
		return 0
	}
}

// fleschReadingEase also backs Ateşman: the formula shape is shared and the
// per-family constants carry the difference.
func (e *Engine) fleschReadingEase(text string) float64 {
	avgSyllables, avgLength := e.aggregateBasic(text)
	return e.constants[0] - e.constants[1]*avgLength - e.constants[2]*avgSyllables
}

func (e *Engine) bezirciYilmaz(text string) float64 {
	avgLength, numSentences, hist := e.aggregateHistogram(text)
	if numSentences == 0 {
		return 0
	}

	n := float64(numSentences)
	score := float64(hist[0])/n*0.84 +
		float64(hist[1])/n*1.5 +
		float64(hist[2])/n*3.5 +
		float64(hist[3])/n*26.25

	return math.Sqrt(avgLength * score)
}

func (e *Engine) wienerSachtextformel(text string, variant Formula) float64 {
	// SL: average sentence length in words. IW: percentage of words of six
	// or more characters. ES: percentage of monosyllabic words.
	// MS: percentage of words of three or more syllables.
	sl, iw, es, ms := e.aggregateLengths(text)

	switch variant {
	case WienerSachtextformel1:
		return 0.1935*ms + 0.1672*sl + 0.1297*iw - 0.0327*es - 0.875
	case WienerSachtextformel2:
		return 0.2007*ms + 0.1682*sl + 0.1373*iw - 2.779
	case WienerSachtextformel3:
		return 0.2963*ms + 0.1905*sl - 1.1144
	case WienerSachtextformel4:
		return 0.2744*ms + 0.2656*sl - 1.693
	default:
		return 0
	}
}

// aggregateBasic returns the average syllables per word and the average
// words per sentence. Sentences without a single word-like token are
// excluded; if none remain, both averages are 0.
func (e *Engine) aggregateBasic(text string) (avgSyllables, avgLength float64) {
	totalWords := 0
	totalSyllables := 0
	numSentences := 0

	for _, sentence := range e.tok.TokenizeSentences(text) {
		words := filterWords(sentence)
		if len(words) == 0 {
			continue
		}

		numSentences++
		totalWords += len(words)
		for _, word := range words {
			totalSyllables += e.syl.Count(word)
		}
	}

	if numSentences == 0 {
		return 0, 0
	}
	return float64(totalSyllables) / float64(totalWords),
		float64(totalWords) / float64(numSentences)
}

// aggregateHistogram returns the average sentence length, the sentence
// count, and the counts of words with 3, 4, 5, and 6-or-more syllables
// (hist[0] through hist[3]).
func (e *Engine) aggregateHistogram(text string) (avgLength float64, numSentences int, hist [4]int) {
	totalWords := 0

	for _, sentence := range e.tok.TokenizeSentences(text) {
		words := filterWords(sentence)
		if len(words) == 0 {
			continue
		}

		numSentences++
		totalWords += len(words)
		for _, word := range words {
			n := e.syl.Count(word)
			if n < 3 {
				continue
			}
			if n > 6 {
				n = 6
			}
			hist[n-3]++
		}
	}

	if numSentences == 0 {
		return 0, 0, [4]int{}
	}
	return float64(totalWords) / float64(numSentences), numSentences, hist
}

// aggregateLengths returns the average sentence length, the percentage of
// words with at least six characters, the percentage of monosyllabic words,
// and the percentage of words with at least three syllables.
func (e *Engine) aggregateLengths(text string) (avgLength, pctLong, pctMono, pctPoly float64) {
	totalWords := 0
	numSentences := 0
	numLong := 0
	numMono := 0
	numPoly := 0

	for _, sentence := range e.tok.TokenizeSentences(text) {
		words := filterWords(sentence)
		if len(words) == 0 {
			continue
		}

		numSentences++
		totalWords += len(words)

		for _, word := range words {
			word = strings.TrimSpace(e.lower(word))
			if len([]rune(word)) >= 6 {
				numLong++
			}

			switch n := e.syl.Count(word); {
			case n == 1:
				numMono++
			case n >= 3:
				numPoly++
			}
		}
	}

	if numSentences == 0 {
		return 0, 0, 0, 0
	}
	return float64(totalWords) / float64(numSentences),
		float64(numLong) / float64(totalWords) * 100,
		float64(numMono) / float64(totalWords) * 100,
		float64(numPoly) / float64(totalWords) * 100
}

// filterWords keeps the tokens that carry at least one letter or digit,
// dropping bare punctuation and symbols.
func filterWords(tokens []string) []string {
	words := tokens[:0:0]
	for _, tok := range tokens {
		if hasAlnum(tok) {
			words = append(words, tok)
		}
	}
	return words
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
